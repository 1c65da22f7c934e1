package connection

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("connection request not found")

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// Request is a directed skill-exchange proposal. An approved request is the
// only record of a connection between the two parties; rejection and
// withdrawal delete the row outright.
type Request struct {
	ID            uuid.UUID
	SenderID      uuid.UUID
	RecipientID   uuid.UUID
	SkillsOffered []uuid.UUID
	SkillsWanted  []uuid.UUID
	Status        Status
	CreatedAt     time.Time
	ApprovedAt    *time.Time
}

type Repository interface {
	Create(ctx context.Context, r Request) error
	GetByID(ctx context.Context, id uuid.UUID) (Request, error)
	// Approve transitions a still-pending request and stamps approved_at.
	// It reports false when the request was not pending anymore (or gone),
	// which is the only guard against a concurrent reject.
	Approve(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListBySender(ctx context.Context, senderID uuid.UUID, status Status) ([]Request, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, status Status) ([]Request, error)
	// ListInvolving returns requests with the given status where the user is
	// either sender or recipient.
	ListInvolving(ctx context.Context, userID uuid.UUID, status Status) ([]Request, error)
}
