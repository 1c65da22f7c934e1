package dto

import (
	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Tags []string  `json:"tags"`
}

func FromSkill(s skill.Skill) SkillResponse {
	return SkillResponse{ID: s.ID, Name: s.Name, Tags: s.Tags}
}

func FromSkills(in []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromSkill(s))
	}
	return out
}
