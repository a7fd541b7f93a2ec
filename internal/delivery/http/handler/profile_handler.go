package handler

import (
	"context"

	"welltips/internal/delivery/http/middleware"
	"welltips/internal/delivery/http/request"
	"welltips/internal/domain/user"
	"welltips/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// ProfileService is the profile/goal usecase as seen from the HTTP
// surface.
type ProfileService interface {
	CreateProfile(ctx context.Context, age int, gender, goal string) (string, error)
	SaveTip(ctx context.Context, userID, goalName string, tip user.SavedTip) (string, error)
	GetSavedTips(ctx context.Context, userID string) ([]user.Goal, error)
}

type ProfileHandler struct {
	svc ProfileService
}

type createProfileResponse struct {
	UserID string `json:"userId"`
}

func NewProfileHandler(svc ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/profile", h.Create)
}

func (h *ProfileHandler) Create(c fiber.Ctx) error {
	var req request.CreateProfile
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	}

	goal := ""
	if req.Goal != nil {
		goal = *req.Goal
	}

	userID, err := h.svc.CreateProfile(c.Context(), *req.Age, *req.Gender, goal)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(createProfileResponse{UserID: userID})
}
