package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/service"
)

type CoachHandler struct {
	coachService *service.CoachService
}

func NewCoachHandler(coachService *service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

type chatRequest struct {
	History  []domain.ChatMessage `json:"history"`
	Message  string               `json:"message"`
	Language domain.Language      `json:"language"`
}

// Chat handles POST /v1/coach/chat
func (h *CoachHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	reply, err := h.coachService.Chat(c.UserContext(), req.History, req.Message, req.Language)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(domain.ChatMessage{Role: domain.ChatRoleModel, Text: reply, Timestamp: time.Now().UTC()})
}
