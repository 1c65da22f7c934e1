package matching

import (
	"testing"

	"github.com/google/uuid"
)

var (
	goID     = uuid.New()
	sqlID    = uuid.New()
	designID = uuid.New()
	photoID  = uuid.New()
)

func testCatalog() map[uuid.UUID]Skill {
	return map[uuid.UUID]Skill{
		goID:     {ID: goID, Name: "Go", Tags: []string{"backend", "programming"}},
		sqlID:    {ID: sqlID, Name: "SQL", Tags: []string{"databases"}},
		designID: {ID: designID, Name: "Graphic Design", Tags: []string{"creative"}},
		photoID:  {ID: photoID, Name: "Photography", Tags: []string{"creative"}},
	}
}

func TestFind_ReciprocalOverlap(t *testing.T) {
	viewer := Member{ID: uuid.New(), Name: "Ana", Have: []uuid.UUID{goID}, Want: []uuid.UUID{designID}, Reachable: true}
	cand := Member{ID: uuid.New(), Name: "Ben", Have: []uuid.UUID{designID}, Want: []uuid.UUID{goID}, Reachable: true}

	got := Find(viewer, []Member{cand}, testCatalog(), "")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	m := got[0]
	if m.CandidateID != cand.ID {
		t.Fatalf("unexpected candidate id")
	}
	if len(m.SkillsICanOffer) != 1 || m.SkillsICanOffer[0].ID != goID {
		t.Fatalf("expected offer overlap [Go], got %v", m.SkillsICanOffer)
	}
	if len(m.SkillsICanGet) != 1 || m.SkillsICanGet[0].ID != designID {
		t.Fatalf("expected get overlap [Graphic Design], got %v", m.SkillsICanGet)
	}
}

func TestFind_OneDirectionalOverlapIsNotAMatch(t *testing.T) {
	viewer := Member{ID: uuid.New(), Have: []uuid.UUID{goID}, Want: []uuid.UUID{designID}, Reachable: true}
	// Candidate wants Go but offers nothing the viewer wants.
	cand := Member{ID: uuid.New(), Have: []uuid.UUID{photoID}, Want: []uuid.UUID{goID}, Reachable: true}

	if got := Find(viewer, []Member{cand}, testCatalog(), ""); len(got) != 0 {
		t.Fatalf("expected no match, got %d", len(got))
	}
}

func TestFind_SymmetricForBothViewers(t *testing.T) {
	a := Member{ID: uuid.New(), Name: "Ana", Have: []uuid.UUID{goID, sqlID}, Want: []uuid.UUID{photoID}, Reachable: true}
	b := Member{ID: uuid.New(), Name: "Ben", Have: []uuid.UUID{photoID}, Want: []uuid.UUID{sqlID}, Reachable: true}
	catalog := testCatalog()

	fromA := Find(a, []Member{b}, catalog, "")
	fromB := Find(b, []Member{a}, catalog, "")
	if len(fromA) != 1 || len(fromB) != 1 {
		t.Fatalf("expected match from both sides, got %d and %d", len(fromA), len(fromB))
	}
	if fromA[0].SkillsICanOffer[0].ID != sqlID {
		t.Fatalf("expected Ana to offer SQL")
	}
	if fromB[0].SkillsICanGet[0].ID != sqlID {
		t.Fatalf("expected Ben to get SQL")
	}
}

func TestFind_ExcludesSelf(t *testing.T) {
	viewer := Member{ID: uuid.New(), Have: []uuid.UUID{goID}, Want: []uuid.UUID{goID}, Reachable: true}

	if got := Find(viewer, []Member{viewer}, testCatalog(), ""); len(got) != 0 {
		t.Fatalf("viewer must never match itself")
	}
}

func TestFind_ExcludesUnreachableCandidates(t *testing.T) {
	viewer := Member{ID: uuid.New(), Have: []uuid.UUID{goID}, Want: []uuid.UUID{designID}, Reachable: true}
	cand := Member{ID: uuid.New(), Have: []uuid.UUID{designID}, Want: []uuid.UUID{goID}, Reachable: false}

	if got := Find(viewer, []Member{cand}, testCatalog(), ""); len(got) != 0 {
		t.Fatalf("unreachable candidate must be excluded")
	}
}

func TestFind_DropsIDsMissingFromCatalog(t *testing.T) {
	ghost := uuid.New()
	viewer := Member{ID: uuid.New(), Have: []uuid.UUID{ghost}, Want: []uuid.UUID{designID}, Reachable: true}
	cand := Member{ID: uuid.New(), Have: []uuid.UUID{designID}, Want: []uuid.UUID{ghost}, Reachable: true}

	// The only offer overlap points at an unknown skill, so the pair no
	// longer qualifies.
	if got := Find(viewer, []Member{cand}, testCatalog(), ""); len(got) != 0 {
		t.Fatalf("overlap emptied by unknown skill must not match")
	}
}

func TestFind_SearchFiltersByNameSkillAndTag(t *testing.T) {
	viewer := Member{ID: uuid.New(), Name: "Ana", Have: []uuid.UUID{goID}, Want: []uuid.UUID{designID, photoID}, Reachable: true}
	ben := Member{ID: uuid.New(), Name: "Ben", Have: []uuid.UUID{designID}, Want: []uuid.UUID{goID}, Reachable: true}
	cara := Member{ID: uuid.New(), Name: "Cara", Have: []uuid.UUID{photoID}, Want: []uuid.UUID{goID}, Reachable: true}
	candidates := []Member{ben, cara}
	catalog := testCatalog()

	byName := Find(viewer, candidates, catalog, "BEN")
	if len(byName) != 1 || byName[0].CandidateID != ben.ID {
		t.Fatalf("expected name filter to keep only Ben")
	}

	bySkill := Find(viewer, candidates, catalog, "photo")
	if len(bySkill) != 1 || bySkill[0].CandidateID != cara.ID {
		t.Fatalf("expected skill filter to keep only Cara")
	}

	byTag := Find(viewer, candidates, catalog, "creative")
	if len(byTag) != 2 {
		t.Fatalf("expected tag filter to keep both, got %d", len(byTag))
	}

	if got := Find(viewer, candidates, catalog, "nonexistent"); len(got) != 0 {
		t.Fatalf("expected no matches for unknown term")
	}
}

func TestFind_OverlapPreservesHaveOrder(t *testing.T) {
	viewer := Member{ID: uuid.New(), Have: []uuid.UUID{sqlID, goID}, Want: []uuid.UUID{designID}, Reachable: true}
	cand := Member{ID: uuid.New(), Have: []uuid.UUID{designID}, Want: []uuid.UUID{goID, sqlID}, Reachable: true}

	got := Find(viewer, []Member{cand}, testCatalog(), "")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	offer := got[0].SkillsICanOffer
	if len(offer) != 2 || offer[0].ID != sqlID || offer[1].ID != goID {
		t.Fatalf("expected offer order to follow viewer Have order")
	}
}
