package matching

import (
	"strings"

	"github.com/google/uuid"
)

// Member is the slice of a profile the engine needs. Have and Want keep the
// profile's display order.
type Member struct {
	ID        uuid.UUID
	Name      string
	Have      []uuid.UUID
	Want      []uuid.UUID
	Reachable bool
}

type Skill struct {
	ID   uuid.UUID
	Name string
	Tags []string
}

// Match pairs a candidate with the two reciprocal overlaps that make the
// match: SkillsICanOffer are viewer skills the candidate wants, SkillsICanGet
// are candidate skills the viewer wants. Both are always non-empty.
type Match struct {
	CandidateID     uuid.UUID
	SkillsICanOffer []Skill
	SkillsICanGet   []Skill
}

// Find computes the reciprocal matches for viewer over candidates. A
// candidate qualifies only when each side has something the other wants;
// one-directional overlap is not a match. Unreachable candidates (no contact
// method) and the viewer itself are excluded. Skill ids missing from catalog
// are dropped from the overlap sets, and a candidate whose overlap empties
// out that way no longer qualifies.
//
// search, when non-empty, further restricts the result to candidates whose
// name, or any overlap skill name or tag, contains the term
// case-insensitively.
//
// No output order is guaranteed beyond the order of candidates.
func Find(viewer Member, candidates []Member, catalog map[uuid.UUID]Skill, search string) []Match {
	viewerWant := idSet(viewer.Want)
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]Match, 0)
	for _, cand := range candidates {
		if cand.ID == viewer.ID {
			continue
		}
		if !cand.Reachable {
			continue
		}

		offer := overlap(viewer.Have, idSet(cand.Want), catalog)
		get := overlap(cand.Have, viewerWant, catalog)
		if len(offer) == 0 || len(get) == 0 {
			continue
		}

		if term != "" && !matchesTerm(cand.Name, offer, get, term) {
			continue
		}

		out = append(out, Match{
			CandidateID:     cand.ID,
			SkillsICanOffer: offer,
			SkillsICanGet:   get,
		})
	}

	return out
}

// overlap resolves the ids present in both ordered and wanted, keeping
// ordered's order.
func overlap(ordered []uuid.UUID, wanted map[uuid.UUID]struct{}, catalog map[uuid.UUID]Skill) []Skill {
	out := make([]Skill, 0)
	for _, id := range ordered {
		if _, ok := wanted[id]; !ok {
			continue
		}
		s, ok := catalog[id]
		if !ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesTerm(name string, offer, get []Skill, term string) bool {
	if strings.Contains(strings.ToLower(name), term) {
		return true
	}
	for _, set := range [][]Skill{offer, get} {
		for _, s := range set {
			if strings.Contains(strings.ToLower(s.Name), term) {
				return true
			}
			for _, tag := range s.Tags {
				if strings.Contains(strings.ToLower(tag), term) {
					return true
				}
			}
		}
	}
	return false
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		out[id] = struct{}{}
	}
	return out
}
