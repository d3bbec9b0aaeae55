package dto

type SkillStatResponse struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Count         int     `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

type ProfileResponse struct {
	SessionID      string              `json:"session_id"`
	TotalTurns     int                 `json:"total_turns"`
	TotalSkills    int                 `json:"total_skills"`
	Skills         []SkillStatResponse `json:"skills"`
	SuggestedRoles []string            `json:"suggested_roles"`
}
