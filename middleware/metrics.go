package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"notes-api/telemetry"
)

// Metrics records request count, latency and in-flight requests. Requests
// are labelled by route pattern, not raw path, to keep cardinality bounded.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		telemetry.ActiveRequests.Inc()
		defer telemetry.ActiveRequests.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		telemetry.HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		telemetry.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}
