package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/middleware"
	"github.com/mansoorceksport/titan/internal/planner"
	"github.com/mansoorceksport/titan/internal/service"
	"github.com/mansoorceksport/titan/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// WeeklySchedule handles GET /v1/plans/weekly?split=&frequency=
func (h *PlanHandler) WeeklySchedule(c *fiber.Ctx) error {
	schedule, err := h.planService.WeeklySchedule(c.Query("split"), c.Query("frequency"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"split":         planner.ParseSplitStrategy(c.Query("split")),
		"training_days": schedule.TrainingDays(),
		"schedule":      schedule,
	})
}

// Session handles GET /v1/plans/session?focus=&duration=&difficulty=
func (h *PlanHandler) Session(c *fiber.Ctx) error {
	plan := planner.BuildSingleSessionPlan(c.Query("focus"), c.QueryInt("duration", 0), c.Query("difficulty"))
	return c.JSON(domain.Plan{Kind: domain.PlanKindSingleSession, Session: plan})
}

// Generate handles POST /v1/me/plans/generate
func (h *PlanHandler) Generate(c *fiber.Ctx) error {
	var req domain.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.planService.Generate(c.UserContext(), middleware.ProfileID(c), req)
	if err != nil {
		return handleError(c, err)
	}

	telemetry.AddSpanEvent(c, "plan.generated",
		attribute.String("titan.plan_source", string(result.Source)),
		attribute.String("titan.plan_kind", string(result.Plan.Kind)),
	)
	return c.JSON(result)
}
