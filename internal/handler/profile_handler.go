package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Create handles POST /v1/profiles
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var profile domain.UserProfile
	if err := c.BodyParser(&profile); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.profileService.Create(c.UserContext(), &profile); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.profileService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var update domain.UserProfile
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid request body")
	}

	profile, err := h.profileService.Update(c.UserContext(), c.Params("id"), &update)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(profile)
}
