package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	startedAt time.Time
}

type healthResponse struct {
	OK     bool    `json:"ok"`
	Uptime float64 `json:"uptime"`
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(healthResponse{
		OK:     true,
		Uptime: time.Since(h.startedAt).Seconds(),
	})
}
