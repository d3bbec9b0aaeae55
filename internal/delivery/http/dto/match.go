package dto

type MatchRequest struct {
	CandidateText  string `json:"candidate_text"`
	JobDescription string `json:"job_description"`
}

type MatchResponse struct {
	MatchScore      float64         `json:"match_score"`
	CandidateSkills []SkillResponse `json:"candidate_skills"`
	JDSkills        []SkillResponse `json:"jd_skills"`
	MatchedSkills   []string        `json:"matched_skills"`
	MissingSkills   []string        `json:"missing_skills"`
	ExtraSkills     []string        `json:"extra_skills"`
}
