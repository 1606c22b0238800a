package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mansoorceksport/titan/internal/config"
	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/handler"
	"github.com/mansoorceksport/titan/internal/metrics"
	"github.com/mansoorceksport/titan/internal/middleware"
	"github.com/mansoorceksport/titan/internal/repository"
	"github.com/mansoorceksport/titan/internal/service"
	"github.com/mansoorceksport/titan/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client

	// Optional. When nil and an OpenRouter key is configured, an OpenRouter
	// client is created; otherwise deterministic fallbacks are served.
	Generator domain.PlanGenerator
	Coach     domain.CoachClient

	// Optional. Plan export answers 503 without it.
	FileRepo domain.FileRepository

	// Optional. Created when nil.
	Registry *prometheus.Registry
	Metrics  *metrics.Manager
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	cfg := deps.Config

	registry := deps.Registry
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	metricsManager := deps.Metrics
	if metricsManager == nil {
		metricsManager = metrics.NewManager(metrics.Namespace, metrics.Subsystem, registry)
	}

	generator, coach := deps.Generator, deps.Coach
	if cfg.AIEnabled() && (generator == nil || coach == nil) {
		openRouter := service.NewOpenRouterGenerator(
			cfg.OpenRouter.APIKey,
			cfg.OpenRouter.Model,
			cfg.OpenRouter.BaseURL,
			cfg.OpenRouter.Timeout,
		)
		if generator == nil {
			generator = openRouter
		}
		if coach == nil {
			coach = openRouter
		}
	}
	if generator == nil {
		log.Info("OpenRouter is not configured, serving deterministic plans and estimates")
	}

	// Initialize repositories
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)
	profileRepo := repository.NewCachedProfileRepository(repository.NewMongoProfileRepository(deps.MongoDB), cacheRepo)
	workoutRepo := repository.NewMongoWorkoutRepository(deps.MongoDB)
	sessionRepo := repository.NewMongoWorkoutSessionRepository(deps.MongoDB)
	nutritionRepo := repository.NewMongoNutritionLogRepository(deps.MongoDB)
	exerciseRepo := repository.NewMongoExerciseRepository(deps.MongoDB)

	// Initialize services
	planService := service.NewPlanService(generator, profileRepo, metricsManager)
	profileService := service.NewProfileService(profileRepo)
	workoutService := service.NewWorkoutService(workoutRepo, sessionRepo, deps.FileRepo, cacheRepo)
	nutritionService := service.NewNutritionService(generator, nutritionRepo, cacheRepo, metricsManager, cfg.Cache.FoodEstimateTTL)
	statsService := service.NewStatsService(workoutRepo, sessionRepo, nutritionRepo, cacheRepo, cfg.Cache.StatsTTL)
	coachService := service.NewCoachService(coach, metricsManager)
	exerciseService := service.NewExerciseService(exerciseRepo)

	// Initialize handlers
	planHandler := handler.NewPlanHandler(planService)
	profileHandler := handler.NewProfileHandler(profileService)
	nutritionHandler := handler.NewNutritionHandler(nutritionService)
	coachHandler := handler.NewCoachHandler(coachService)
	workoutHandler := handler.NewWorkoutHandler(workoutService, exerciseService, statsService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Titan API",
		BodyLimit:    int(cfg.Server.BodyLimitKB * 1024),
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Profile-ID, X-Correlation-ID",
		AllowMethods: "GET, POST, PUT, OPTIONS",
	}))
	app.Use(telemetry.FiberMiddleware())
	app.Use(middleware.RequestMetrics(metricsManager))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "titan-api",
			"ai":      generator != nil,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := app.Group("/v1")

	// Stateless planning and nutrition tools
	v1.Get("/plans/weekly", planHandler.WeeklySchedule)
	v1.Get("/plans/session", planHandler.Session)
	v1.Get("/nutrition/targets", nutritionHandler.Targets)
	v1.Post("/nutrition/estimate", nutritionHandler.Estimate)
	v1.Post("/coach/chat", coachHandler.Chat)
	v1.Get("/exercises", workoutHandler.ListExercises)
	v1.Get("/exercises/:id", workoutHandler.GetExercise)

	// Onboarding
	profiles := v1.Group("/profiles")
	profiles.Post("/", profileHandler.Create)
	profiles.Get("/:id", profileHandler.Get)
	profiles.Put("/:id", profileHandler.Update)

	// ===========================================
	// PROFILE API - /v1/me/* (requires X-Profile-ID)
	// ===========================================
	me := v1.Group("/me",
		middleware.ProfileScope(),
		middleware.IdempotencyMiddleware(deps.RedisClient, cfg.Cache.IdempotencyTTL),
	)
	me.Post("/plans/generate", planHandler.Generate)

	me.Post("/workouts", workoutHandler.Save)
	me.Get("/workouts", workoutHandler.List)
	me.Get("/workouts/:id", workoutHandler.Get)
	me.Put("/workouts/:id", workoutHandler.Update)
	me.Post("/workouts/:id/export", workoutHandler.Export)
	me.Post("/workouts/:id/sessions", workoutHandler.FinishSession)
	me.Get("/workouts/:id/sessions", workoutHandler.ListSessions)
	me.Post("/sessions/start", workoutHandler.StartSession)
	me.Post("/sessions/finish", workoutHandler.FinishStartedSession)

	me.Post("/nutrition/logs", nutritionHandler.LogFood)
	me.Get("/nutrition/today", nutritionHandler.Today)
	me.Get("/stats", workoutHandler.Stats)

	return app
}

// customErrorHandler handles errors returned by handlers and middleware
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
