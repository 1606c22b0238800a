package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/titan/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics records request count, duration and in-flight requests
func RequestMetrics(m *metrics.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.GaugeRequests.Inc()
		defer func(begin time.Time) {
			m.GaugeRequests.Dec()
			m.HistRequestDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// the error handler has not written the status yet
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		m.CounterRequests.With(prometheus.Labels{
			"method": c.Method(),
			"status": strconv.Itoa(status),
		}).Inc()

		return err
	}
}
