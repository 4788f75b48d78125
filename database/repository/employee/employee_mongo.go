package employeeRepo

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

// MongoEmployeeRepo implements EmployeeRepository using MongoDB.
type MongoEmployeeRepo struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepo creates a new instance of EmployeeRepository using MongoDB.
func NewMongoEmployeeRepo() EmployeeRepository {
	repo := &MongoEmployeeRepo{coll: database.Collection("employees")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEmployeeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "candidateId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByCandidateID retrieves the employment record for a candidate.
// A missing record is not an error: it returns (nil, nil).
func (r *MongoEmployeeRepo) GetByCandidateID(candidateID string) (*models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var employee models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"candidateId": candidateID}).Decode(&employee); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employee for candidate %s: %w", candidateID, err)
	}
	return &employee, nil
}

// ExistsByCandidateID reports whether a candidate has an employment record.
func (r *MongoEmployeeRepo) ExistsByCandidateID(candidateID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"candidateId": candidateID})
	if err != nil {
		return false, fmt.Errorf("failed to count employees for candidate %s: %w", candidateID, err)
	}
	return count > 0, nil
}

// Create inserts a new employment document.
func (r *MongoEmployeeRepo) Create(employee *models.Employee) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, employee); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// Delete removes an employment document by its ID.
func (r *MongoEmployeeRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("employee with id %s not found", id)
	}
	return nil
}
