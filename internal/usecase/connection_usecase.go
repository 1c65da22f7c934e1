package usecase

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/domain/connection"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"

	"github.com/google/uuid"
)

// ConnectionNotifier pushes lifecycle events to the affected counterpart.
// Delivery is best-effort and never fails the operation.
type ConnectionNotifier interface {
	RequestCreated(recipientID, requestID uuid.UUID)
	RequestApproved(senderID, requestID uuid.UUID)
	RequestRemoved(counterpartID, requestID uuid.UUID)
}

type CreateRequestInput struct {
	RecipientID   uuid.UUID
	SkillsOffered []uuid.UUID
	SkillsWanted  []uuid.UUID
}

type RequestItem struct {
	ID            uuid.UUID
	Counterpart   user.Profile
	SkillsOffered []skill.Skill
	SkillsWanted  []skill.Skill
	CreatedAt     time.Time
}

const (
	RoleSender    = "sender"
	RoleRecipient = "recipient"
)

type ConnectionItem struct {
	ID            uuid.UUID
	Counterpart   user.Profile
	SkillsOffered []skill.Skill
	SkillsWanted  []skill.Skill
	Role          string
	CreatedAt     time.Time
	ApprovedAt    *time.Time
}

type ConnectionUsecase interface {
	CreateRequest(ctx context.Context, senderID uuid.UUID, in CreateRequestInput) (connection.Request, error)
	Approve(ctx context.Context, requestID, actingUserID uuid.UUID) (connection.Request, error)
	Reject(ctx context.Context, requestID, actingUserID uuid.UUID) error
	Withdraw(ctx context.Context, requestID, actingUserID uuid.UUID) error
	ListIncoming(ctx context.Context, userID uuid.UUID) ([]RequestItem, error)
	ListOutgoing(ctx context.Context, userID uuid.UUID) ([]RequestItem, error)
	ListConnections(ctx context.Context, userID uuid.UUID) ([]ConnectionItem, error)
}

type Connection struct {
	requests connection.Repository
	profiles user.ProfileRepository
	skills   skill.Repository
	notifier ConnectionNotifier
	now      func() time.Time
}

func NewConnectionUsecase(
	requests connection.Repository,
	profiles user.ProfileRepository,
	skills skill.Repository,
	notifier ConnectionNotifier,
) *Connection {
	return &Connection{
		requests: requests,
		profiles: profiles,
		skills:   skills,
		notifier: notifier,
		now:      time.Now,
	}
}

// CreateRequest records a pending exchange proposal. The offered ids must
// come from the sender's own skills, the wanted ids from skills the sender
// wants and the recipient has. Duplicate pending requests between the same
// pair are allowed.
func (u *Connection) CreateRequest(ctx context.Context, senderID uuid.UUID, in CreateRequestInput) (connection.Request, error) {
	if senderID == uuid.Nil {
		return connection.Request{}, ErrUnauthorized
	}
	if in.RecipientID == uuid.Nil || in.RecipientID == senderID {
		return connection.Request{}, ErrInvalidInput
	}

	sender, err := u.getProfile(ctx, senderID)
	if err != nil {
		return connection.Request{}, err
	}
	recipient, err := u.getProfile(ctx, in.RecipientID)
	if err != nil {
		return connection.Request{}, err
	}

	offered, ok := dedupCheck(in.SkillsOffered)
	if !ok || len(offered) == 0 {
		return connection.Request{}, ErrInvalidSelection
	}
	wanted, ok := dedupCheck(in.SkillsWanted)
	if !ok || len(wanted) == 0 {
		return connection.Request{}, ErrInvalidSelection
	}

	for _, id := range offered {
		if !sender.HasSkill(id) {
			return connection.Request{}, ErrInvalidSelection
		}
	}
	for _, id := range wanted {
		if !sender.WantsSkill(id) || !recipient.HasSkill(id) {
			return connection.Request{}, ErrInvalidSelection
		}
	}

	req := connection.Request{
		ID:            uuid.New(),
		SenderID:      senderID,
		RecipientID:   in.RecipientID,
		SkillsOffered: offered,
		SkillsWanted:  wanted,
		Status:        connection.StatusPending,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return connection.Request{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.RequestCreated(req.RecipientID, req.ID)
	}

	created, err := u.requests.GetByID(ctx, req.ID)
	if err != nil {
		// The insert succeeded; return what we know.
		return req, nil
	}
	return created, nil
}

// Approve moves a pending request to approved. Only the recipient may
// approve; the conditional update in the store is the sole guard against a
// racing reject.
func (u *Connection) Approve(ctx context.Context, requestID, actingUserID uuid.UUID) (connection.Request, error) {
	req, err := u.getRequest(ctx, requestID)
	if err != nil {
		return connection.Request{}, err
	}
	if req.RecipientID != actingUserID {
		return connection.Request{}, ErrUnauthorized
	}
	if req.Status != connection.StatusPending {
		return connection.Request{}, ErrInvalidState
	}

	ok, err := u.requests.Approve(ctx, requestID, u.now().UTC())
	if err != nil {
		return connection.Request{}, ErrInternal
	}
	if !ok {
		return connection.Request{}, ErrInvalidState
	}

	if u.notifier != nil {
		u.notifier.RequestApproved(req.SenderID, req.ID)
	}

	approved, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return connection.Request{}, ErrInternal
	}
	return approved, nil
}

// Reject deletes an incoming request outright; afterwards it is
// indistinguishable from a withdrawn one.
func (u *Connection) Reject(ctx context.Context, requestID, actingUserID uuid.UUID) error {
	req, err := u.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.RecipientID != actingUserID {
		return ErrUnauthorized
	}

	if err := u.requests.Delete(ctx, requestID); err != nil {
		return ErrInternal
	}
	if u.notifier != nil {
		u.notifier.RequestRemoved(req.SenderID, req.ID)
	}
	return nil
}

// Withdraw deletes the sender's own request. Approved requests may be
// withdrawn too, which removes the connection.
func (u *Connection) Withdraw(ctx context.Context, requestID, actingUserID uuid.UUID) error {
	req, err := u.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.SenderID != actingUserID {
		return ErrUnauthorized
	}

	if err := u.requests.Delete(ctx, requestID); err != nil {
		return ErrInternal
	}
	if u.notifier != nil {
		u.notifier.RequestRemoved(req.RecipientID, req.ID)
	}
	return nil
}

func (u *Connection) ListIncoming(ctx context.Context, userID uuid.UUID) ([]RequestItem, error) {
	reqs, err := u.requests.ListByRecipient(ctx, userID, connection.StatusPending)
	if err != nil {
		return nil, ErrInternal
	}
	return u.buildRequestItems(ctx, reqs, func(r connection.Request) uuid.UUID { return r.SenderID })
}

func (u *Connection) ListOutgoing(ctx context.Context, userID uuid.UUID) ([]RequestItem, error) {
	reqs, err := u.requests.ListBySender(ctx, userID, connection.StatusPending)
	if err != nil {
		return nil, ErrInternal
	}
	return u.buildRequestItems(ctx, reqs, func(r connection.Request) uuid.UUID { return r.RecipientID })
}

func (u *Connection) ListConnections(ctx context.Context, userID uuid.UUID) ([]ConnectionItem, error) {
	reqs, err := u.requests.ListInvolving(ctx, userID, connection.StatusApproved)
	if err != nil {
		return nil, ErrInternal
	}

	catalog, err := u.resolveRequestSkills(ctx, reqs)
	if err != nil {
		return nil, err
	}

	out := make([]ConnectionItem, 0, len(reqs))
	for _, r := range reqs {
		role := RoleSender
		counterpartID := r.RecipientID
		if r.RecipientID == userID {
			role = RoleRecipient
			counterpartID = r.SenderID
		}

		counterpart, err := u.profiles.GetProfile(ctx, counterpartID)
		if err != nil {
			// Counterpart profile removed since: drop the row.
			continue
		}

		out = append(out, ConnectionItem{
			ID:            r.ID,
			Counterpart:   counterpart,
			SkillsOffered: pickSkills(catalog, r.SkillsOffered),
			SkillsWanted:  pickSkills(catalog, r.SkillsWanted),
			Role:          role,
			CreatedAt:     r.CreatedAt,
			ApprovedAt:    r.ApprovedAt,
		})
	}
	return out, nil
}

func (u *Connection) buildRequestItems(ctx context.Context, reqs []connection.Request, counterpartOf func(connection.Request) uuid.UUID) ([]RequestItem, error) {
	catalog, err := u.resolveRequestSkills(ctx, reqs)
	if err != nil {
		return nil, err
	}

	out := make([]RequestItem, 0, len(reqs))
	for _, r := range reqs {
		counterpart, err := u.profiles.GetProfile(ctx, counterpartOf(r))
		if err != nil {
			continue
		}

		out = append(out, RequestItem{
			ID:            r.ID,
			Counterpart:   counterpart,
			SkillsOffered: pickSkills(catalog, r.SkillsOffered),
			SkillsWanted:  pickSkills(catalog, r.SkillsWanted),
			CreatedAt:     r.CreatedAt,
		})
	}
	return out, nil
}

// resolveRequestSkills batches the skill lookup for a page of requests into
// one query over the union of referenced ids.
func (u *Connection) resolveRequestSkills(ctx context.Context, reqs []connection.Request) (map[uuid.UUID]skill.Skill, error) {
	seen := make(map[uuid.UUID]struct{})
	union := make([]uuid.UUID, 0)
	for _, r := range reqs {
		for _, list := range [][]uuid.UUID{r.SkillsOffered, r.SkillsWanted} {
			for _, id := range list {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				union = append(union, id)
			}
		}
	}

	catalog, err := u.skills.GetByIDs(ctx, union)
	if err != nil {
		return nil, ErrInternal
	}
	return catalog, nil
}

// pickSkills resolves ids against the catalog, silently skipping ids the
// catalog no longer knows.
func pickSkills(catalog map[uuid.UUID]skill.Skill, ids []uuid.UUID) []skill.Skill {
	out := make([]skill.Skill, 0, len(ids))
	for _, id := range ids {
		if s, ok := catalog[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (u *Connection) getProfile(ctx context.Context, id uuid.UUID) (user.Profile, error) {
	p, err := u.profiles.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Connection) getRequest(ctx context.Context, id uuid.UUID) (connection.Request, error) {
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, connection.ErrNotFound) {
			return connection.Request{}, ErrRequestNotFound
		}
		return connection.Request{}, ErrInternal
	}
	return req, nil
}
