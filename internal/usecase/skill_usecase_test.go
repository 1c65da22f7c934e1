package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

type mapCache struct {
	entries map[string][]byte
	gets    int
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.gets++
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

type countingSkillRepo struct {
	*mockSkillRepo
	listCalls int
}

func (r *countingSkillRepo) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	r.listCalls++
	return r.mockSkillRepo.ListSkills(ctx)
}

func TestCatalog_ListSkills_PopulatesCache(t *testing.T) {
	guitar := skill.Skill{ID: uuid.New(), Name: "Guitar", Tags: []string{"music"}}
	repo := &countingSkillRepo{mockSkillRepo: newMockSkillRepo(guitar)}
	cache := newMapCache()
	uc := NewCatalogUsecase(repo, cache)

	first, err := uc.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(first))
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache to be populated")
	}

	second, err := uc.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != 1 || second[0].Name != "Guitar" {
		t.Fatalf("expected cached catalog, got %+v", second)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected second read to hit the cache, repo calls = %d", repo.listCalls)
	}
}

func TestCatalog_ListSkills_NilCache(t *testing.T) {
	guitar := skill.Skill{ID: uuid.New(), Name: "Guitar"}
	repo := &countingSkillRepo{mockSkillRepo: newMockSkillRepo(guitar)}
	uc := NewCatalogUsecase(repo, nil)

	for i := 0; i < 2; i++ {
		got, err := uc.ListSkills(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 skill, got %d", len(got))
		}
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected every read to reach the store without a cache")
	}
}
