package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoWorkoutRepository struct {
	collection *mongo.Collection
}

func NewMongoWorkoutRepository(db *mongo.Database) *MongoWorkoutRepository {
	coll := db.Collection("workouts")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Newest-first listing per profile
	coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "created_at", Value: -1}},
	})

	return &MongoWorkoutRepository{
		collection: coll,
	}
}

func (r *MongoWorkoutRepository) Create(ctx context.Context, workout *domain.WorkoutRecord) error {
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now().UTC()
	}
	workout.UpdatedAt = workout.CreatedAt

	if _, err := r.collection.InsertOne(ctx, workout); err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

func (r *MongoWorkoutRepository) GetByID(ctx context.Context, profileID, id string) (*domain.WorkoutRecord, error) {
	var workout domain.WorkoutRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "profile_id": profileID}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}
	return &workout, nil
}

func (r *MongoWorkoutRepository) ListRecent(ctx context.Context, profileID string, limit int) ([]*domain.WorkoutRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"profile_id": profileID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer cursor.Close(ctx)

	workouts := []*domain.WorkoutRecord{}
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("failed to decode workouts: %w", err)
	}
	return workouts, nil
}

// CreatedSince returns creation times of the profile's workouts saved at or after since
func (r *MongoWorkoutRepository) CreatedSince(ctx context.Context, profileID string, since time.Time) ([]time.Time, error) {
	opts := options.Find().SetProjection(bson.M{"created_at": 1})
	filter := bson.M{
		"profile_id": profileID,
		"created_at": bson.M{"$gte": since},
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query workouts: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		CreatedAt time.Time `bson:"created_at"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode workouts: %w", err)
	}

	times := make([]time.Time, len(rows))
	for i, row := range rows {
		times[i] = row.CreatedAt
	}
	return times, nil
}

func (r *MongoWorkoutRepository) Update(ctx context.Context, workout *domain.WorkoutRecord) error {
	workout.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"title":            workout.Title,
			"duration_minutes": workout.DurationMinutes,
			"difficulty":       workout.Difficulty,
			"plan_data":        workout.PlanData,
			"updated_at":       workout.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": workout.ID, "profile_id": workout.ProfileID}, update)
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrWorkoutNotFound
	}
	return nil
}

func (r *MongoWorkoutRepository) Count(ctx context.Context, profileID string) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"profile_id": profileID})
	if err != nil {
		return 0, fmt.Errorf("failed to count workouts: %w", err)
	}
	return n, nil
}
