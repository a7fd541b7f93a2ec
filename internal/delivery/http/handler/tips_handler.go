package handler

import (
	"context"
	"errors"

	"welltips/internal/delivery/http/middleware"
	"welltips/internal/delivery/http/request"
	"welltips/internal/domain/tips"
	"welltips/internal/domain/user"
	"welltips/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// TipService is the generation usecase as seen from the HTTP surface.
type TipService interface {
	GenerateTips(ctx context.Context, age int, gender, goal string) ([]tips.GeneratedTip, error)
	GenerateTipDetail(ctx context.Context, age int, gender, goal, tipTitle string) (tips.TipDetail, error)
}

type TipsHandler struct {
	tips    TipService
	profile ProfileService
}

type generateTipsResponse struct {
	Tips []tips.GeneratedTip `json:"tips"`
}

type saveTipResponse struct {
	OK   bool   `json:"ok"`
	Goal string `json:"goal"`
}

type savedTipsResponse struct {
	Goals []user.Goal `json:"goals"`
}

func NewTipsHandler(tipSvc TipService, profileSvc ProfileService) *TipsHandler {
	return &TipsHandler{tips: tipSvc, profile: profileSvc}
}

func (h *TipsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/generate", h.Generate)
	r.Post("/detail", h.Detail)
	r.Post("/save", h.Save)
	r.Get("/saved/:userId", h.Saved)
}

func (h *TipsHandler) Generate(c fiber.Ctx) error {
	var req request.GenerateTips
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	}

	items, err := h.tips.GenerateTips(c.Context(), *req.Age, *req.Gender, *req.Goal)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(generateTipsResponse{Tips: items})
}

func (h *TipsHandler) Detail(c fiber.Ctx) error {
	var req request.GenerateTipDetail
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	}

	detail, err := h.tips.GenerateTipDetail(c.Context(), *req.Age, *req.Gender, *req.Goal, *req.TipTitle)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(detail)
}

func (h *TipsHandler) Save(c fiber.Ctx) error {
	var req request.SaveTip
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	}

	goalName := ""
	if req.GoalName != nil {
		goalName = *req.GoalName
	}
	tip := user.SavedTip{
		Title:           *req.Tip.Title,
		IconKeyword:     *req.Tip.IconKeyword,
		ExplanationLong: *req.Tip.ExplanationLong,
		Steps:           req.Tip.Steps,
	}

	goal, err := h.profile.SaveTip(c.Context(), *req.UserID, goalName, tip)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(saveTipResponse{OK: true, Goal: goal})
}

func (h *TipsHandler) Saved(c fiber.Ctx) error {
	req := request.GetSavedTips{UserID: c.Params("userId")}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	}

	goals, err := h.profile.GetSavedTips(c.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(savedTipsResponse{Goals: goals})
}
