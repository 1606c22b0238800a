package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoProfileRepository struct {
	collection *mongo.Collection
}

func NewMongoProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{
		collection: db.Collection("profiles"),
	}
}

func (r *MongoProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *MongoProfileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (r *MongoProfileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	profile.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"name":               profile.Name,
			"age":                profile.Age,
			"height":             profile.Height,
			"weight":             profile.Weight,
			"gender":             profile.Gender,
			"level":              profile.Level,
			"genetic_advantages": profile.GeneticAdvantages,
			"updated_at":         profile.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": profile.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
