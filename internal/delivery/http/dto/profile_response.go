package dto

import (
	"time"

	"skillswap/internal/domain/user"

	"github.com/google/uuid"
)

// ProfileResponse is the owner's view of their own profile.
type ProfileResponse struct {
	UserID         uuid.UUID         `json:"user_id"`
	Name           string            `json:"name"`
	Bio            string            `json:"bio"`
	SkillsIHave    []uuid.UUID       `json:"skills_i_have"`
	SkillsIWant    []uuid.UUID       `json:"skills_i_want"`
	ContactMethods map[string]string `json:"contact_methods"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func FromProfile(p user.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:         p.UserID,
		Name:           p.Name,
		Bio:            p.Bio,
		SkillsIHave:    emptyIfNil(p.SkillsIHave),
		SkillsIWant:    emptyIfNil(p.SkillsIWant),
		ContactMethods: p.ContactMethods,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// CounterpartResponse is the projection of someone else's profile shown in
// match, request, and connection views. Contact methods ride along since
// disclosure is informational at every one of those read paths.
type CounterpartResponse struct {
	UserID         uuid.UUID         `json:"user_id"`
	Name           string            `json:"name"`
	Bio            string            `json:"bio"`
	ContactMethods map[string]string `json:"contact_methods"`
}

func FromCounterpart(p user.Profile) CounterpartResponse {
	return CounterpartResponse{
		UserID:         p.UserID,
		Name:           p.Name,
		Bio:            p.Bio,
		ContactMethods: p.ContactMethods,
	}
}

func emptyIfNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
