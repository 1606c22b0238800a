package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/middleware"
	"github.com/mansoorceksport/titan/internal/service"
)

type WorkoutHandler struct {
	workoutService  *service.WorkoutService
	exerciseService *service.ExerciseService
	statsService    *service.StatsService
}

func NewWorkoutHandler(
	workoutService *service.WorkoutService,
	exerciseService *service.ExerciseService,
	statsService *service.StatsService,
) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService:  workoutService,
		exerciseService: exerciseService,
		statsService:    statsService,
	}
}

// --- Exercises ---

func (h *WorkoutHandler) ListExercises(c *fiber.Ctx) error {
	filter := domain.ExerciseFilter{
		Name:        c.Query("name"),
		MuscleGroup: c.Query("muscle_group"),
	}
	exs, err := h.exerciseService.List(c.UserContext(), filter)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(exs)
}

func (h *WorkoutHandler) GetExercise(c *fiber.Ctx) error {
	ex, err := h.exerciseService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(ex)
}

// --- Saved workouts ---

func (h *WorkoutHandler) Save(c *fiber.Ctx) error {
	var plan domain.WorkoutPlan
	if err := c.BodyParser(&plan); err != nil {
		return badRequest(c, "Invalid request body")
	}

	workout, err := h.workoutService.Save(c.UserContext(), middleware.ProfileID(c), plan)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (h *WorkoutHandler) List(c *fiber.Ctx) error {
	workouts, err := h.workoutService.List(c.UserContext(), middleware.ProfileID(c))
	if err != nil {
		return handleError(c, err)
	}
	if workouts == nil {
		workouts = []*domain.WorkoutRecord{}
	}
	return c.JSON(workouts)
}

func (h *WorkoutHandler) Get(c *fiber.Ctx) error {
	workout, err := h.workoutService.Get(c.UserContext(), middleware.ProfileID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(workout)
}

func (h *WorkoutHandler) Update(c *fiber.Ctx) error {
	var update service.WorkoutUpdate
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid request body")
	}

	workout, err := h.workoutService.Update(c.UserContext(), middleware.ProfileID(c), c.Params("id"), update)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(workout)
}

func (h *WorkoutHandler) Export(c *fiber.Ctx) error {
	url, err := h.workoutService.Export(c.UserContext(), middleware.ProfileID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

// --- Sessions ---

type startSessionRequest struct {
	WorkoutID string              `json:"workout_id"`
	Plan      *domain.WorkoutPlan `json:"plan"`
}

func (h *WorkoutHandler) StartSession(c *fiber.Ctx) error {
	var req startSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	session, err := h.workoutService.StartSession(c.UserContext(), middleware.ProfileID(c), req.WorkoutID, req.Plan)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *WorkoutHandler) FinishSession(c *fiber.Ctx) error {
	var req service.FinishSessionInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	record, err := h.workoutService.FinishSession(c.UserContext(), middleware.ProfileID(c), c.Params("id"), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

type finishSessionRequest struct {
	WorkoutID string `json:"workout_id"`
	service.FinishSessionInput
}

// FinishStartedSession handles POST /v1/me/sessions/finish for sessions that
// may not belong to a saved workout
func (h *WorkoutHandler) FinishStartedSession(c *fiber.Ctx) error {
	var req finishSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	record, err := h.workoutService.FinishSession(c.UserContext(), middleware.ProfileID(c), req.WorkoutID, req.FinishSessionInput)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *WorkoutHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.workoutService.ListSessions(c.UserContext(), middleware.ProfileID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if sessions == nil {
		sessions = []*domain.WorkoutSessionRecord{}
	}
	return c.JSON(sessions)
}

// --- Stats ---

func (h *WorkoutHandler) Stats(c *fiber.Ctx) error {
	loc, err := locationFromQuery(c)
	if err != nil {
		return badRequest(c, "Invalid tz")
	}

	stats, err := h.statsService.Get(c.UserContext(), middleware.ProfileID(c), loc)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stats)
}
