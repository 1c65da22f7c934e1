package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"
	"skillswap/internal/pkg/contact"

	"github.com/google/uuid"
)

type ProfileInput struct {
	Name           string
	Bio            string
	SkillsIHave    []uuid.UUID
	SkillsIWant    []uuid.UUID
	ContactMethods map[string]string
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error)
}

type Profile struct {
	profiles user.ProfileRepository
	skills   skill.Repository
}

func NewProfileUsecase(profiles user.ProfileRepository, skills skill.Repository) *Profile {
	return &Profile{profiles: profiles, skills: skills}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

// SaveProfile creates or replaces the caller's profile. Skill ids must exist
// in the catalog and appear at most once per list; the write must leave at
// least one valid contact channel.
func (u *Profile) SaveProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return user.Profile{}, ErrInvalidInput
	}

	have, ok := dedupCheck(in.SkillsIHave)
	if !ok {
		return user.Profile{}, ErrInvalidInput
	}
	want, ok := dedupCheck(in.SkillsIWant)
	if !ok {
		return user.Profile{}, ErrInvalidInput
	}

	if err := u.verifySkillsExist(ctx, have, want); err != nil {
		return user.Profile{}, err
	}

	methods := contact.Clean(in.ContactMethods)
	for ch, v := range methods {
		if !contact.KnownChannel(ch) || !contact.Valid(ch, v) {
			return user.Profile{}, ErrInvalidContactMethod
		}
	}
	if len(methods) == 0 {
		return user.Profile{}, ErrNoContactMethod
	}

	saved, err := u.profiles.UpsertProfile(ctx, user.Profile{
		UserID:         userID,
		Name:           name,
		Bio:            strings.TrimSpace(in.Bio),
		SkillsIHave:    have,
		SkillsIWant:    want,
		ContactMethods: methods,
	})
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	return saved, nil
}

func (u *Profile) verifySkillsExist(ctx context.Context, lists ...[]uuid.UUID) error {
	union := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}
	if len(union) == 0 {
		return nil
	}

	known, err := u.skills.GetByIDs(ctx, union)
	if err != nil {
		return ErrInternal
	}
	for _, id := range union {
		if _, ok := known[id]; !ok {
			return ErrSkillNotFound
		}
	}
	return nil
}

// dedupCheck rejects uuid.Nil entries and duplicates, preserving order.
func dedupCheck(ids []uuid.UUID) ([]uuid.UUID, bool) {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, false
		}
		if _, ok := seen[id]; ok {
			return nil, false
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, true
}
