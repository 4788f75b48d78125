package candidateRepo

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

// MongoCandidateRepo implements CandidateRepository using MongoDB.
type MongoCandidateRepo struct {
	coll *mongo.Collection
}

// NewMongoCandidateRepo creates a new instance of CandidateRepository using MongoDB.
func NewMongoCandidateRepo() CandidateRepository {
	repo := &MongoCandidateRepo{coll: database.Collection("candidates")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCandidateRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a candidate by its unique ID.
func (r *MongoCandidateRepo) GetByID(id string) (*models.Candidate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var candidate models.Candidate
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&candidate); err != nil {
		return nil, fmt.Errorf("failed to fetch candidate with id %s: %w", id, err)
	}
	return &candidate, nil
}

// GetAll retrieves all candidates, newest first.
func (r *MongoCandidateRepo) GetAll() ([]models.Candidate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}
	defer cursor.Close(ctx)

	var candidates []models.Candidate
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, fmt.Errorf("failed to decode candidates: %w", err)
	}
	return candidates, nil
}

// Create inserts a new candidate document.
func (r *MongoCandidateRepo) Create(candidate *models.Candidate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}
	now := time.Now()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, candidate); err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// Update modifies an existing candidate document.
func (r *MongoCandidateRepo) Update(candidate *models.Candidate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	candidate.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": candidate.ID}, bson.M{"$set": candidate})
	if err != nil {
		return fmt.Errorf("failed to update candidate with id %s: %w", candidate.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("candidate with id %s not found", candidate.ID)
	}
	return nil
}

// Delete removes a candidate document by its ID.
func (r *MongoCandidateRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete candidate with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("candidate with id %s not found", id)
	}
	return nil
}
