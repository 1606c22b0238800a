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

type MongoWorkoutSessionRepository struct {
	collection *mongo.Collection
}

func NewMongoWorkoutSessionRepository(db *mongo.Database) *MongoWorkoutSessionRepository {
	coll := db.Collection("workout_sessions")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "workout_id", Value: 1}, {Key: "finished_at", Value: -1}}},
		{Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "finished_at", Value: -1}}},
	})

	return &MongoWorkoutSessionRepository{
		collection: coll,
	}
}

func (r *MongoWorkoutSessionRepository) Create(ctx context.Context, session *domain.WorkoutSessionRecord) error {
	session.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *MongoWorkoutSessionRepository) ListByWorkout(ctx context.Context, profileID, workoutID string, limit int) ([]*domain.WorkoutSessionRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "finished_at", Value: -1}}).
		SetLimit(int64(limit))

	filter := bson.M{"profile_id": profileID, "workout_id": workoutID}
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []*domain.WorkoutSessionRecord{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

func (r *MongoWorkoutSessionRepository) FinishedSince(ctx context.Context, profileID string, since time.Time) ([]time.Time, error) {
	opts := options.Find().SetProjection(bson.M{"finished_at": 1})
	filter := bson.M{
		"profile_id":  profileID,
		"finished_at": bson.M{"$gte": since},
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		FinishedAt time.Time `bson:"finished_at"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}

	times := make([]time.Time, len(rows))
	for i, row := range rows {
		times[i] = row.FinishedAt
	}
	return times, nil
}
