package caregiverRepo

import (
	"context"
	"fmt"
	"time"

	"firstlighthrm/database"
	"firstlighthrm/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCaregiverRepo implements CaregiverRepository using MongoDB.
type MongoCaregiverRepo struct {
	coll *mongo.Collection
}

// NewMongoCaregiverRepo creates a new instance of CaregiverRepository using MongoDB.
func NewMongoCaregiverRepo() CaregiverRepository {
	repo := &MongoCaregiverRepo{coll: database.Collection("caregivers")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCaregiverRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a caregiver by its unique ID.
func (r *MongoCaregiverRepo) GetByID(id string) (*models.Caregiver, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var caregiver models.Caregiver
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&caregiver); err != nil {
		return nil, fmt.Errorf("failed to fetch caregiver with id %s: %w", id, err)
	}
	return &caregiver, nil
}

// GetAll retrieves all caregivers.
func (r *MongoCaregiverRepo) GetAll() ([]models.Caregiver, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caregivers: %w", err)
	}
	defer cursor.Close(ctx)

	var caregivers []models.Caregiver
	if err := cursor.All(ctx, &caregivers); err != nil {
		return nil, fmt.Errorf("failed to decode caregivers: %w", err)
	}
	return caregivers, nil
}

// Create inserts a new caregiver document.
func (r *MongoCaregiverRepo) Create(caregiver *models.Caregiver) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if caregiver.ID == "" {
		caregiver.ID = uuid.NewString()
	}
	now := time.Now()
	caregiver.CreatedAt = now
	caregiver.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, caregiver); err != nil {
		return fmt.Errorf("failed to create caregiver: %w", err)
	}
	return nil
}

// Update modifies an existing caregiver document.
func (r *MongoCaregiverRepo) Update(caregiver *models.Caregiver) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	caregiver.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": caregiver.ID}, bson.M{"$set": caregiver})
	if err != nil {
		return fmt.Errorf("failed to update caregiver with id %s: %w", caregiver.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("caregiver with id %s not found", caregiver.ID)
	}
	return nil
}

// Delete removes a caregiver document by its ID.
func (r *MongoCaregiverRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete caregiver with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("caregiver with id %s not found", id)
	}
	return nil
}

// UpdateAvailability replaces a caregiver's weekly availability grid.
func (r *MongoCaregiverRepo) UpdateAvailability(id string, grid models.WeeklyAvailabilityGrid) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"availability": grid, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for caregiver %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("caregiver with id %s not found", id)
	}
	return nil
}
