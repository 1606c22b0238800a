// Package testutil starts throwaway infrastructure for integration tests.
package testutil

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupTestDB starts a MongoDB container and returns a database on it with a
// cleanup func. The test is skipped in -short mode or when Docker is unavailable.
func SetupTestDB(t *testing.T) (*mongo.Database, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB integration test in short mode")
	}

	ctx := context.Background()

	mongodbContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Skipf("failed to start mongo container (is Docker running?): %s", err)
	}

	endpoint, err := mongodbContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %s", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(endpoint))
	if err != nil {
		t.Fatalf("failed to connect to mongo: %v", err)
	}

	return mongoClient.Database("titan_test"), func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Warnf("failed to disconnect mongo: %v", err)
		}
		if err := mongodbContainer.Terminate(ctx); err != nil {
			log.Warnf("failed to terminate container: %v", err)
		}
	}
}

// SetupTestRedis starts an in-memory Redis and returns a client for it.
// Both are closed when the test ends.
func SetupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
