package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("skill not found")

type Skill struct {
	ID        uuid.UUID
	Name      string
	Tags      []string
	CreatedAt time.Time
}

type Repository interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (Skill, error)
	// GetByIDs is the batched lookup used by match and request views; ids
	// absent from the catalog are simply missing from the result.
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Skill, error)
}
