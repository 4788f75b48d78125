package interviewRepo

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

// MongoInterviewRepo implements InterviewRepository using MongoDB.
type MongoInterviewRepo struct {
	coll *mongo.Collection
}

// NewMongoInterviewRepo creates a new instance of InterviewRepository using MongoDB.
func NewMongoInterviewRepo() InterviewRepository {
	repo := &MongoInterviewRepo{coll: database.Collection("interviews")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInterviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "candidateId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByCandidateID retrieves the interview record for a candidate.
// A missing record is not an error: it returns (nil, nil).
func (r *MongoInterviewRepo) GetByCandidateID(candidateID string) (*models.Interview, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var interview models.Interview
	if err := r.coll.FindOne(ctx, bson.M{"candidateId": candidateID}).Decode(&interview); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch interview for candidate %s: %w", candidateID, err)
	}
	return &interview, nil
}

// Upsert creates or replaces the interview record for its candidate.
func (r *MongoInterviewRepo) Upsert(interview *models.Interview) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if interview.ID == "" {
		interview.ID = uuid.NewString()
	}
	now := time.Now()
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = now
	}
	interview.UpdatedAt = now

	filter := bson.M{"candidateId": interview.CandidateID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, interview, opts); err != nil {
		return fmt.Errorf("failed to upsert interview for candidate %s: %w", interview.CandidateID, err)
	}
	return nil
}

// DeleteByCandidateID removes a candidate's interview record.
func (r *MongoInterviewRepo) DeleteByCandidateID(candidateID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"candidateId": candidateID})
	if err != nil {
		return fmt.Errorf("failed to delete interview for candidate %s: %w", candidateID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("interview for candidate %s not found", candidateID)
	}
	return nil
}
