package main

import (
	"context"
	"encoding/base64"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mansoorceksport/titan/internal/config"
	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/logging"
	"github.com/mansoorceksport/titan/internal/repository"
	"github.com/mansoorceksport/titan/internal/server"
	"github.com/mansoorceksport/titan/internal/telemetry"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.Setup(logging.SetupParams{
		LogFileName:   cfg.Log.FileName,
		LogToStdout:   cfg.Log.LogToStdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.FormatJSON,
	})

	log.Println("Starting Titan API...")

	ctx := context.Background()

	// Grafana Cloud requires Basic auth with instanceId:apiToken base64 encoded
	authString := cfg.OTEL.InstanceID + ":" + cfg.OTEL.Token
	authEncoded := base64.StdEncoding.EncodeToString([]byte(authString))

	otelProvider, err := telemetry.Initialize(ctx, telemetry.Config{
		ServiceName:    cfg.OTEL.ServiceName,
		ServiceVersion: cfg.OTEL.ServiceVersion,
		Environment:    cfg.OTEL.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
		OTLPHeaders: map[string]string{
			"Authorization": "Basic " + authEncoded,
		},
		Enabled: cfg.OTEL.Enabled,
	})
	if err != nil {
		log.Warnf("Failed to initialize OpenTelemetry: %v", err)
	}
	if otelProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelProvider.Shutdown(shutdownCtx); err != nil {
				log.Warnf("OpenTelemetry shutdown: %v", err)
			}
		}()
	}

	// Connect to MongoDB with OpenTelemetry instrumentation
	ctxMongo, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoOpts := options.Client().ApplyURI(cfg.MongoDB.URI)
	if cfg.OTEL.Enabled {
		mongoOpts.SetMonitor(otelmongo.NewMonitor())
	}

	mongoClient, err := mongo.Connect(ctxMongo, mongoOpts)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Errorf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if err := mongoClient.Ping(ctxMongo, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("✓ MongoDB connected")

	mongoDB := mongoClient.Database(cfg.MongoDB.Database)

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("✓ Redis connected")

	// Plan export storage is optional
	var fileRepo domain.FileRepository
	if cfg.S3.Enabled {
		s3Repo, err := repository.NewSeaweedS3Repository(ctx, cfg.S3)
		if err != nil {
			log.Warnf("Failed to initialize S3 repository, plan export disabled: %v", err)
		} else {
			fileRepo = s3Repo
			log.Println("✓ S3 storage ready")
		}
	}

	app := server.NewApp(server.AppDependencies{
		Config:      cfg,
		MongoDB:     mongoDB,
		RedisClient: redisClient,
		FileRepo:    fileRepo,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("Shutdown: %v", err)
		}
	}()

	log.Printf("🚀 Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
