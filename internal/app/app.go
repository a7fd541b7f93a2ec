package app

import (
	"fmt"
	"log"
	"strings"

	"welltips/internal/config"
	"welltips/internal/delivery/http/middleware"
	"welltips/internal/delivery/http/routes"
	"welltips/internal/infrastructure/persistence/mongodb"
	profileuc "welltips/internal/usecase/profile"
	tipsuc "welltips/internal/usecase/tips"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(container *Container) *App {
	f := fiber.New(fiber.Config{})

	registerGlobalMiddleware(f)

	userRepo := mongodb.NewUserRepository(container.Store.Users())
	profileSvc := profileuc.NewService(userRepo)
	tipSvc := tipsuc.NewService(container.GenAI)

	routes.NewRegistry(profileSvc, tipSvc).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(f *fiber.App) {
	if f == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(log.Default())
	f.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware()
	f.Use(errMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
