package dto

import "time"

type TurnResponse struct {
	UserMessage string          `json:"user_message"`
	BotResponse string          `json:"bot_response"`
	Skills      []SkillResponse `json:"skills"`
	CreatedAt   time.Time       `json:"created_at"`
}
