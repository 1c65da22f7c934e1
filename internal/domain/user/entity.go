package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is what other members see. Skill slices keep insertion order and
// hold no duplicates; every id must exist in the skill catalog.
type Profile struct {
	UserID         uuid.UUID
	Name           string
	Bio            string
	SkillsIHave    []uuid.UUID
	SkillsIWant    []uuid.UUID
	ContactMethods map[string]string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reachable reports whether at least one contact method has a value. Members
// without one are excluded from matching since a match could never be acted on.
func (p Profile) Reachable() bool {
	for _, v := range p.ContactMethods {
		if len(v) > 0 {
			return true
		}
	}
	return false
}

func (p Profile) HasSkill(id uuid.UUID) bool {
	for _, s := range p.SkillsIHave {
		if s == id {
			return true
		}
	}
	return false
}

func (p Profile) WantsSkill(id uuid.UUID) bool {
	for _, s := range p.SkillsIWant {
		if s == id {
			return true
		}
	}
	return false
}
