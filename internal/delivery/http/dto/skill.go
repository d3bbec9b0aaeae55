package dto

import "github.com/google/uuid"

type CreateSkillRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Aliases  []string `json:"aliases"`
}

type SkillDefinitionResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Aliases  []string  `json:"aliases"`
}
