package handler

import (
	"errors"

	"skill-finder/internal/delivery/http/dto"
	"skill-finder/internal/delivery/http/middleware"
	"skill-finder/internal/pkg/response"
	"skill-finder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/profile/:session_id", h.Get)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	sessionID := c.Params("session_id")

	p, err := h.uc.GetProfile(c.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
		case errors.Is(err, usecase.ErrSessionNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "No conversation found for this session", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	out := dto.ProfileResponse{
		SessionID:      p.SessionID,
		TotalTurns:     p.TotalTurns,
		TotalSkills:    p.TotalSkills,
		Skills:         make([]dto.SkillStatResponse, 0, len(p.Skills)),
		SuggestedRoles: p.SuggestedRoles,
	}
	for _, s := range p.Skills {
		out.Skills = append(out.Skills, dto.SkillStatResponse{
			Name:          s.Name,
			Category:      s.Category,
			Count:         s.Count,
			AvgConfidence: s.AvgConfidence,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
