package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/metabolic"
	"github.com/mansoorceksport/titan/internal/middleware"
	"github.com/mansoorceksport/titan/internal/service"
)

type NutritionHandler struct {
	nutritionService *service.NutritionService
}

func NewNutritionHandler(nutritionService *service.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

// Targets handles GET /v1/nutrition/targets. Missing or invalid values use defaults.
func (h *NutritionHandler) Targets(c *fiber.Ctx) error {
	in := metabolic.ParseBiometricInput(c.Query("age"), c.Query("weight"), c.Query("height"), c.Query("sex"), c.Query("activity"))
	return c.JSON(fiber.Map{
		"input":   in,
		"targets": metabolic.ComputeEnergyTargets(in),
	})
}

type estimateRequest struct {
	Query    string          `json:"query"`
	Language domain.Language `json:"language"`
}

// Estimate handles POST /v1/nutrition/estimate
func (h *NutritionHandler) Estimate(c *fiber.Ctx) error {
	var req estimateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	estimate, err := h.nutritionService.Estimate(c.UserContext(), req.Query, req.Language)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(estimate)
}

// LogFood handles POST /v1/me/nutrition/logs
func (h *NutritionHandler) LogFood(c *fiber.Ctx) error {
	var req service.LogFoodInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.nutritionService.LogFood(c.UserContext(), middleware.ProfileID(c), req)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// Today handles GET /v1/me/nutrition/today?tz=
func (h *NutritionHandler) Today(c *fiber.Ctx) error {
	loc, err := locationFromQuery(c)
	if err != nil {
		return badRequest(c, "Invalid tz")
	}

	daily, err := h.nutritionService.Today(c.UserContext(), middleware.ProfileID(c), loc)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(daily)
}
