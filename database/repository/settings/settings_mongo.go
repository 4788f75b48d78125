package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"firstlighthrm/database"
	"firstlighthrm/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsDocID identifies the singleton agency settings document.
const settingsDocID = "agency"

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.Collection("settings")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetInterviewTemplate retrieves the interview slot template document.
// Callers fall back to the hard-coded default template when this fails.
func (r *MongoSettingsRepo) GetInterviewTemplate() (map[string]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var settings models.AgencySettings
	if err := r.coll.FindOne(ctx, bson.M{"id": settingsDocID}).Decode(&settings); err != nil {
		return nil, fmt.Errorf("failed to fetch agency settings: %w", err)
	}
	return settings.InterviewSlots, nil
}

// UpdateInterviewTemplate replaces the interview slot template, creating
// the settings document if it does not exist yet.
func (r *MongoSettingsRepo) UpdateInterviewTemplate(doc map[string]string) (*models.AgencySettings, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	settings := models.AgencySettings{
		ID:             settingsDocID,
		InterviewSlots: doc,
		UpdatedAt:      time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": settingsDocID}, settings, opts); err != nil {
		return nil, fmt.Errorf("failed to update agency settings: %w", err)
	}
	return &settings, nil
}
