package usecase

import (
	"context"
	"errors"

	"skillswap/internal/domain/matching"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"

	"github.com/google/uuid"
)

type MatchItem struct {
	Candidate       user.Profile
	SkillsICanOffer []skill.Skill
	SkillsICanGet   []skill.Skill
}

type MatchUsecase interface {
	FindMatches(ctx context.Context, viewerID uuid.UUID, search string) ([]MatchItem, error)
}

type Match struct {
	profiles user.ProfileRepository
	skills   skill.Repository
}

func NewMatchUsecase(profiles user.ProfileRepository, skills skill.Repository) *Match {
	return &Match{profiles: profiles, skills: skills}
}

// FindMatches returns every reachable member with reciprocal skill overlap
// against the viewer. The viewer and candidate list are read concurrently;
// the catalog is then resolved in one batched lookup over the union of
// referenced ids.
func (u *Match) FindMatches(ctx context.Context, viewerID uuid.UUID, search string) ([]MatchItem, error) {
	if viewerID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	type viewerRes struct {
		p   user.Profile
		err error
	}
	type listRes struct {
		ps  []user.Profile
		err error
	}

	viewerCh := make(chan viewerRes, 1)
	listCh := make(chan listRes, 1)

	go func() {
		p, err := u.profiles.GetProfile(ctx, viewerID)
		viewerCh <- viewerRes{p: p, err: err}
	}()
	go func() {
		ps, err := u.profiles.ListProfiles(ctx)
		listCh <- listRes{ps: ps, err: err}
	}()

	vr := <-viewerCh
	lr := <-listCh

	if vr.err != nil {
		if errors.Is(vr.err, user.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}
	if lr.err != nil {
		return nil, ErrInternal
	}

	catalog, err := u.resolveCatalog(ctx, vr.p, lr.ps)
	if err != nil {
		return nil, err
	}

	candidates := make([]matching.Member, 0, len(lr.ps))
	byID := make(map[uuid.UUID]user.Profile, len(lr.ps))
	for _, p := range lr.ps {
		byID[p.UserID] = p
		candidates = append(candidates, toMember(p))
	}

	found := matching.Find(toMember(vr.p), candidates, catalog, search)

	out := make([]MatchItem, 0, len(found))
	for _, m := range found {
		out = append(out, MatchItem{
			Candidate:       byID[m.CandidateID],
			SkillsICanOffer: fromEngineSkills(m.SkillsICanOffer),
			SkillsICanGet:   fromEngineSkills(m.SkillsICanGet),
		})
	}
	return out, nil
}

func (u *Match) resolveCatalog(ctx context.Context, viewer user.Profile, all []user.Profile) (map[uuid.UUID]matching.Skill, error) {
	seen := make(map[uuid.UUID]struct{})
	union := make([]uuid.UUID, 0)
	add := func(ids []uuid.UUID) {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}
	add(viewer.SkillsIHave)
	add(viewer.SkillsIWant)
	for _, p := range all {
		add(p.SkillsIHave)
		add(p.SkillsIWant)
	}

	known, err := u.skills.GetByIDs(ctx, union)
	if err != nil {
		return nil, ErrInternal
	}

	catalog := make(map[uuid.UUID]matching.Skill, len(known))
	for id, s := range known {
		catalog[id] = matching.Skill{ID: s.ID, Name: s.Name, Tags: s.Tags}
	}
	return catalog, nil
}

func toMember(p user.Profile) matching.Member {
	return matching.Member{
		ID:        p.UserID,
		Name:      p.Name,
		Have:      p.SkillsIHave,
		Want:      p.SkillsIWant,
		Reachable: p.Reachable(),
	}
}

func fromEngineSkills(in []matching.Skill) []skill.Skill {
	out := make([]skill.Skill, 0, len(in))
	for _, s := range in {
		out = append(out, skill.Skill{ID: s.ID, Name: s.Name, Tags: s.Tags})
	}
	return out
}
