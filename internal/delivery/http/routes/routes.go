package routes

import (
	"welltips/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	profile *handler.ProfileHandler
	tips    *handler.TipsHandler
}

func NewRegistry(profileSvc handler.ProfileService, tipSvc handler.TipService) *Registry {
	return &Registry{
		health:  handler.NewHealthHandler(),
		profile: handler.NewProfileHandler(profileSvc),
		tips:    handler.NewTipsHandler(tipSvc, profileSvc),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.profile.RegisterRoutes(api)
	r.tips.RegisterRoutes(api.Group("/tips"))
}
