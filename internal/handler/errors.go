package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/service"
	log "github.com/sirupsen/logrus"
)

// handleError writes err as {"error": "..."} with a status matching its kind
func handleError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Path()).Error("request failed")
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrSessionIncomplete):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrWorkoutNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrExerciseNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateExercise):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrExportDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// locationFromQuery reads ?tz=; empty means UTC
func locationFromQuery(c *fiber.Ctx) (*time.Location, error) {
	tz := c.Query("tz")
	if tz == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(tz)
}
