package dto

import (
	"time"

	"skillswap/internal/usecase"

	"github.com/google/uuid"
)

type RequestResponse struct {
	ID            uuid.UUID           `json:"id"`
	Counterpart   CounterpartResponse `json:"counterpart"`
	SkillsOffered []SkillResponse     `json:"skills_offered"`
	SkillsWanted  []SkillResponse     `json:"skills_wanted"`
	CreatedAt     time.Time           `json:"created_at"`
}

func FromRequestItem(r usecase.RequestItem) RequestResponse {
	return RequestResponse{
		ID:            r.ID,
		Counterpart:   FromCounterpart(r.Counterpart),
		SkillsOffered: FromSkills(r.SkillsOffered),
		SkillsWanted:  FromSkills(r.SkillsWanted),
		CreatedAt:     r.CreatedAt,
	}
}

func FromRequestItems(in []usecase.RequestItem) []RequestResponse {
	out := make([]RequestResponse, 0, len(in))
	for _, r := range in {
		out = append(out, FromRequestItem(r))
	}
	return out
}

type ConnectionResponse struct {
	ID            uuid.UUID           `json:"id"`
	Counterpart   CounterpartResponse `json:"counterpart"`
	SkillsOffered []SkillResponse     `json:"skills_offered"`
	SkillsWanted  []SkillResponse     `json:"skills_wanted"`
	Role          string              `json:"role"`
	CreatedAt     time.Time           `json:"created_at"`
	ApprovedAt    *time.Time          `json:"approved_at"`
}

func FromConnectionItem(c usecase.ConnectionItem) ConnectionResponse {
	return ConnectionResponse{
		ID:            c.ID,
		Counterpart:   FromCounterpart(c.Counterpart),
		SkillsOffered: FromSkills(c.SkillsOffered),
		SkillsWanted:  FromSkills(c.SkillsWanted),
		Role:          c.Role,
		CreatedAt:     c.CreatedAt,
		ApprovedAt:    c.ApprovedAt,
	}
}

func FromConnectionItems(in []usecase.ConnectionItem) []ConnectionResponse {
	out := make([]ConnectionResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromConnectionItem(c))
	}
	return out
}
