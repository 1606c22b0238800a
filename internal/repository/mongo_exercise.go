package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoExerciseRepository struct {
	collection *mongo.Collection
}

func NewMongoExerciseRepository(db *mongo.Database) *MongoExerciseRepository {
	coll := db.Collection("exercises")

	// Create Index
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mod := mongo.IndexModel{
		Keys:    bson.M{"name": 1},
		Options: options.Index().SetUnique(true),
	}
	coll.Indexes().CreateOne(ctx, mod)

	return &MongoExerciseRepository{
		collection: coll,
	}
}

func (r *MongoExerciseRepository) Create(ctx context.Context, ex *domain.Exercise) error {
	ex.CreatedAt = time.Now().UTC()
	ex.UpdatedAt = ex.CreatedAt

	result, err := r.collection.InsertOne(ctx, ex)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateExercise
		}
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		ex.ID = oid.Hex()
	}
	return nil
}

func (r *MongoExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var ex domain.Exercise
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&ex)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, err
	}
	return &ex, nil
}

func (r *MongoExerciseRepository) GetByName(ctx context.Context, name string) (*domain.Exercise, error) {
	var ex domain.Exercise
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&ex)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, err
	}
	return &ex, nil
}

func (r *MongoExerciseRepository) List(ctx context.Context, filter domain.ExerciseFilter) ([]*domain.Exercise, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.Name), "$options": "i"}
	}
	if filter.MuscleGroup != "" {
		query["muscle_group"] = filter.MuscleGroup
	}

	opts := options.Find().SetSort(bson.D{{Key: "muscle_group", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := []*domain.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}
