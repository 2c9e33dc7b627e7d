package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// TimerMetrics logs method, path, status and duration for every request.
func TimerMetrics(c *fiber.Ctx) error {
	startTime := time.Now()

	err := c.Next()

	duration := time.Since(startTime)
	log.Printf("[METRICS] %s %s - Status: %d - Duration: %dms (%.3fs)",
		c.Method(), c.Path(), c.Response().StatusCode(), duration.Milliseconds(), duration.Seconds())

	return err
}
