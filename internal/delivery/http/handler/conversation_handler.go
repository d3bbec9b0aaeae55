package handler

import (
	"errors"

	"skill-finder/internal/delivery/http/dto"
	"skill-finder/internal/delivery/http/middleware"
	"skill-finder/internal/pkg/response"
	"skill-finder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ConversationHandler struct {
	uc usecase.ConversationUsecase
}

func NewConversationHandler(uc usecase.ConversationUsecase) *ConversationHandler {
	return &ConversationHandler{uc: uc}
}

func (h *ConversationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/conversation/:session_id", h.List)
}

func (h *ConversationHandler) List(c fiber.Ctx) error {
	sessionID := c.Params("session_id")

	turns, err := h.uc.ListTurns(c.Context(), sessionID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.TurnResponse, 0, len(turns))
	for _, t := range turns {
		res = append(res, dto.TurnResponse{
			UserMessage: t.UserMessage,
			BotResponse: t.BotResponse,
			Skills:      dto.ToSkillResponses(t.Skills),
			CreatedAt:   t.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"session_id": sessionID,
		"turns":      res,
	})
}
