package main

import (
	"context"
	"time"

	"github.com/mansoorceksport/titan/internal/config"
	"github.com/mansoorceksport/titan/internal/repository"
	"github.com/mansoorceksport/titan/internal/service"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Loads the canonical exercise catalog into MongoDB. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB.Database)
	svc := service.NewExerciseService(repository.NewMongoExerciseRepository(db))

	created, skipped, err := svc.Seed(ctx)
	if err != nil {
		log.Fatalf("Seeding failed after %d exercises: %v", created, err)
	}
	log.Printf("Seeding complete: %d created, %d already present", created, skipped)
}
