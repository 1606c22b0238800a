package middleware

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const CorrelationIDHeader = "X-Correlation-ID"

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyMiddleware replays the stored response of a POST/PATCH/PUT when
// the same X-Correlation-ID is seen again within ttl. Keys are scoped to the
// profile set by ProfileScope. Only 2xx responses are stored.
func IdempotencyMiddleware(redisClient *redis.Client, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Only apply to mutating methods
		if c.Method() != fiber.MethodPost && c.Method() != fiber.MethodPatch && c.Method() != fiber.MethodPut {
			return c.Next()
		}

		correlationID := c.Get(CorrelationIDHeader)
		if correlationID == "" {
			return c.Next()
		}

		key := fmt.Sprintf("idempotency:%s:%s", ProfileID(c), correlationID)
		ctx := c.UserContext()

		if raw, err := redisClient.Get(ctx, key).Bytes(); err == nil && len(raw) > 0 {
			var cached cachedResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				c.Set("X-Idempotent-Replay", "true")
				c.Set(fiber.HeaderContentType, cached.ContentType)
				return c.Status(cached.Status).Send(cached.Body)
			}
		}

		if err := c.Next(); err != nil {
			return err
		}

		statusCode := c.Response().StatusCode()
		if statusCode < 200 || statusCode >= 300 {
			return nil
		}

		// fasthttp reuses the response buffer once the handler returns
		body := append([]byte(nil), c.Response().Body()...)
		payload, err := json.Marshal(cachedResponse{
			Status:      statusCode,
			ContentType: string(c.Response().Header.ContentType()),
			Body:        body,
		})
		if err != nil {
			return nil
		}
		if err := redisClient.Set(ctx, key, payload, ttl).Err(); err != nil {
			log.WithError(err).Warn("failed to store idempotent response")
		}
		return nil
	}
}
