package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type HealthHandler struct {
	checks  map[string]Check
	timeout time.Duration
}

func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

func (h *HealthHandler) SetupRoutes(app *fiber.App) {
	app.Get("/", h.Live)
	app.Get("/healthz", h.Ready)
}

func (h *HealthHandler) Live(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Healthy!",
	})
}

// Ready runs every check and answers 503 when any of them fails.
func (h *HealthHandler) Ready(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(ctx.UserContext(), h.timeout)
	defer cancel()

	status := fiber.StatusOK
	results := fiber.Map{}
	for name, check := range h.checks {
		if err := check(c); err != nil {
			status = fiber.StatusServiceUnavailable
			results[name] = err.Error()
			continue
		}
		results[name] = "ok"
	}
	return ctx.Status(status).JSON(fiber.Map{"checks": results})
}
