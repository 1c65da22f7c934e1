package usecase

import (
	"context"
	"time"

	"skillswap/internal/domain/skill"
)

const catalogCacheKey = "skills:catalog"

// CatalogCache is the cache contract; a nil cache disables caching.
type CatalogCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
}

// Catalog serves the fixed skill reference set. The catalog only changes when
// reseeded, so a cache miss is rare and staleness is harmless.
type Catalog struct {
	repo  skill.Repository
	cache CatalogCache
}

func NewCatalogUsecase(repo skill.Repository, cache CatalogCache) *Catalog {
	return &Catalog{repo: repo, cache: cache}
}

func (c *Catalog) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	if c.cache != nil {
		var cached []skill.Skill
		if hit, err := c.cache.GetJSON(ctx, catalogCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := c.repo.ListSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if c.cache != nil {
		_ = c.cache.SetJSON(ctx, catalogCacheKey, items, 0)
	}
	return items, nil
}
