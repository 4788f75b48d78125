package clientRepo

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

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a new instance of ClientRepository using MongoDB.
func NewMongoClientRepo() ClientRepository {
	repo := &MongoClientRepo{coll: database.Collection("clients")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoClientRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a client by its unique ID.
func (r *MongoClientRepo) GetByID(id string) (*models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		return nil, fmt.Errorf("failed to fetch client with id %s: %w", id, err)
	}
	return &client, nil
}

// GetAll retrieves all clients.
func (r *MongoClientRepo) GetAll() ([]models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}
	return clients, nil
}

// Create inserts a new client document.
func (r *MongoClientRepo) Create(client *models.Client) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// Update modifies an existing client document.
func (r *MongoClientRepo) Update(client *models.Client) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	client.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": client.ID}, bson.M{"$set": client})
	if err != nil {
		return fmt.Errorf("failed to update client with id %s: %w", client.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("client with id %s not found", client.ID)
	}
	return nil
}

// Delete removes a client document by its ID.
func (r *MongoClientRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete client with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("client with id %s not found", id)
	}
	return nil
}
