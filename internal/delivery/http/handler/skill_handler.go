package handler

import (
	"errors"

	"skill-finder/internal/delivery/http/dto"
	"skill-finder/internal/delivery/http/middleware"
	"skill-finder/internal/pkg/response"
	"skill-finder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.SkillDefinitionResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.SkillDefinitionResponse{
			ID:       it.ID,
			Name:     it.Name,
			Category: it.Category,
			Aliases:  it.Aliases,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req dto.CreateSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	created, err := h.uc.AddSkill(c.Context(), req.Name, req.Category, req.Aliases)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
		case errors.Is(err, usecase.ErrConflict):
			return middleware.NewAppError(fiber.StatusConflict, "Skill name or alias already exists", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	out := dto.SkillDefinitionResponse{
		ID:       created.ID,
		Name:     created.Name,
		Category: created.Category,
		Aliases:  created.Aliases,
	}
	return response.Success(c, fiber.StatusCreated, "Skill created successfully", out)
}
