package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/titan/internal/telemetry"
)

const (
	ProfileIDHeader = "X-Profile-ID"
	ProfileIDKey    = "profileID"
)

// ProfileScope requires X-Profile-ID and stores it in the request locals
func ProfileScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID := strings.TrimSpace(c.Get(ProfileIDHeader))
		if profileID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing " + ProfileIDHeader + " header",
			})
		}

		c.Locals(ProfileIDKey, profileID)
		telemetry.SetSpanAttribute(c, "titan.profile_id", profileID)
		return c.Next()
	}
}

// ProfileID returns the profile set by ProfileScope, or "" outside of it
func ProfileID(c *fiber.Ctx) string {
	id, _ := c.Locals(ProfileIDKey).(string)
	return id
}
