package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoNutritionLogRepository struct {
	collection *mongo.Collection
}

func NewMongoNutritionLogRepository(db *mongo.Database) *MongoNutritionLogRepository {
	coll := db.Collection("nutrition_logs")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})

	return &MongoNutritionLogRepository{
		collection: coll,
	}
}

func (r *MongoNutritionLogRepository) Create(ctx context.Context, entry *domain.FoodLogEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create nutrition log: %w", err)
	}
	return nil
}

func (r *MongoNutritionLogRepository) ListBetween(ctx context.Context, profileID string, from, to time.Time) ([]*domain.FoodLogEntry, error) {
	filter := bson.M{
		"profile_id": profileID,
		"timestamp":  bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list nutrition logs: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []*domain.FoodLogEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode nutrition logs: %w", err)
	}
	return entries, nil
}
