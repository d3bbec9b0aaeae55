package handler

import (
	"errors"

	"skill-finder/internal/delivery/http/dto"
	"skill-finder/internal/delivery/http/middleware"
	"skill-finder/internal/pkg/response"
	"skill-finder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	res, err := h.uc.Match(c.Context(), req.CandidateText, req.JobDescription)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Both candidate_text and job_description are required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.MatchResponse{
		MatchScore:      res.MatchScore,
		CandidateSkills: dto.ToSkillResponses(res.CandidateSkills),
		JDSkills:        dto.ToSkillResponses(res.JDSkills),
		MatchedSkills:   res.MatchedSkills,
		MissingSkills:   res.MissingSkills,
		ExtraSkills:     res.ExtraSkills,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
