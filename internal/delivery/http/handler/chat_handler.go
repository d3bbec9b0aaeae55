package handler

import (
	"errors"

	"skill-finder/internal/delivery/http/dto"
	"skill-finder/internal/delivery/http/middleware"
	"skill-finder/internal/pkg/response"
	"skill-finder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/chat", h.Chat)
}

func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	res, err := h.uc.Chat(c.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Message must not be empty", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.ChatResponse{
		SessionID: res.SessionID,
		Reply:     res.Reply,
		Skills:    dto.ToSkillResponses(res.Skills),
		Timestamp: res.Timestamp,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
