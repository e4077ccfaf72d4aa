package controllers

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SystemController serves the unauthenticated health and time endpoints.
// The request counter lives on the controller and is reset when the process
// restarts; it exists only as a liveness hint.
type SystemController struct {
	requests atomic.Int64
}

func NewSystemController() *SystemController {
	return &SystemController{}
}

func (sc *SystemController) Health(c *fiber.Ctx) error {
	n := sc.requests.Add(1)
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": fmt.Sprintf("API working. This is request %d since startup.", n),
	})
}

func (sc *SystemController) Time(c *fiber.Ctx) error {
	now := time.Now()
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   now.Format(time.RFC3339),
		"unix":   now.Unix(),
	})
}
