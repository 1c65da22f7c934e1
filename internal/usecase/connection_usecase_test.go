package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillswap/internal/domain/connection"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"

	"github.com/google/uuid"
)

type mockRequestRepo struct {
	byID     map[uuid.UUID]connection.Request
	created  []connection.Request
	deleted  []uuid.UUID
	approved []uuid.UUID

	approveOK  bool
	approveErr error
}

func newMockRequestRepo(reqs ...connection.Request) *mockRequestRepo {
	m := &mockRequestRepo{byID: make(map[uuid.UUID]connection.Request), approveOK: true}
	for _, r := range reqs {
		m.byID[r.ID] = r
	}
	return m
}

func (m *mockRequestRepo) Create(_ context.Context, r connection.Request) error {
	r.CreatedAt = time.Now().UTC()
	m.byID[r.ID] = r
	m.created = append(m.created, r)
	return nil
}

func (m *mockRequestRepo) GetByID(_ context.Context, id uuid.UUID) (connection.Request, error) {
	r, ok := m.byID[id]
	if !ok {
		return connection.Request{}, connection.ErrNotFound
	}
	return r, nil
}

func (m *mockRequestRepo) Approve(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	if m.approveErr != nil {
		return false, m.approveErr
	}
	if !m.approveOK {
		return false, nil
	}
	r, ok := m.byID[id]
	if !ok || r.Status != connection.StatusPending {
		return false, nil
	}
	r.Status = connection.StatusApproved
	r.ApprovedAt = &at
	m.byID[id] = r
	m.approved = append(m.approved, id)
	return true, nil
}

func (m *mockRequestRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockRequestRepo) ListBySender(_ context.Context, senderID uuid.UUID, status connection.Status) ([]connection.Request, error) {
	return m.list(func(r connection.Request) bool { return r.SenderID == senderID && r.Status == status }), nil
}

func (m *mockRequestRepo) ListByRecipient(_ context.Context, recipientID uuid.UUID, status connection.Status) ([]connection.Request, error) {
	return m.list(func(r connection.Request) bool { return r.RecipientID == recipientID && r.Status == status }), nil
}

func (m *mockRequestRepo) ListInvolving(_ context.Context, userID uuid.UUID, status connection.Status) ([]connection.Request, error) {
	return m.list(func(r connection.Request) bool {
		return (r.SenderID == userID || r.RecipientID == userID) && r.Status == status
	}), nil
}

func (m *mockRequestRepo) list(keep func(connection.Request) bool) []connection.Request {
	out := make([]connection.Request, 0)
	for _, r := range m.byID {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

type mockProfileRepo struct {
	profiles map[uuid.UUID]user.Profile
}

func newMockProfileRepo(profiles ...user.Profile) *mockProfileRepo {
	m := &mockProfileRepo{profiles: make(map[uuid.UUID]user.Profile)}
	for _, p := range profiles {
		m.profiles[p.UserID] = p
	}
	return m
}

func (m *mockProfileRepo) GetProfile(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) UpsertProfile(_ context.Context, p user.Profile) (user.Profile, error) {
	m.profiles[p.UserID] = p
	return p, nil
}

func (m *mockProfileRepo) ListProfiles(_ context.Context) ([]user.Profile, error) {
	out := make([]user.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, p)
	}
	return out, nil
}

type mockSkillRepo struct {
	skills map[uuid.UUID]skill.Skill
}

func newMockSkillRepo(skills ...skill.Skill) *mockSkillRepo {
	m := &mockSkillRepo{skills: make(map[uuid.UUID]skill.Skill)}
	for _, s := range skills {
		m.skills[s.ID] = s
	}
	return m
}

func (m *mockSkillRepo) ListSkills(context.Context) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0, len(m.skills))
	for _, s := range m.skills {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSkillRepo) GetByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	s, ok := m.skills[id]
	if !ok {
		return skill.Skill{}, skill.ErrNotFound
	}
	return s, nil
}

func (m *mockSkillRepo) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]skill.Skill, error) {
	out := make(map[uuid.UUID]skill.Skill, len(ids))
	for _, id := range ids {
		if s, ok := m.skills[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

type notifierEvent struct {
	kind      string
	userID    uuid.UUID
	requestID uuid.UUID
}

type mockNotifier struct {
	events []notifierEvent
}

func (m *mockNotifier) RequestCreated(recipientID, requestID uuid.UUID) {
	m.events = append(m.events, notifierEvent{"created", recipientID, requestID})
}

func (m *mockNotifier) RequestApproved(senderID, requestID uuid.UUID) {
	m.events = append(m.events, notifierEvent{"approved", senderID, requestID})
}

func (m *mockNotifier) RequestRemoved(counterpartID, requestID uuid.UUID) {
	m.events = append(m.events, notifierEvent{"removed", counterpartID, requestID})
}

func connectionFixture() (sender, recipient user.Profile, skills []skill.Skill) {
	guitar := skill.Skill{ID: uuid.New(), Name: "Guitar"}
	spanish := skill.Skill{ID: uuid.New(), Name: "Spanish"}

	sender = user.Profile{
		UserID:         uuid.New(),
		Name:           "Ana",
		SkillsIHave:    []uuid.UUID{guitar.ID},
		SkillsIWant:    []uuid.UUID{spanish.ID},
		ContactMethods: map[string]string{"email": "ana@example.com"},
	}
	recipient = user.Profile{
		UserID:         uuid.New(),
		Name:           "Ben",
		SkillsIHave:    []uuid.UUID{spanish.ID},
		SkillsIWant:    []uuid.UUID{guitar.ID},
		ContactMethods: map[string]string{"email": "ben@example.com"},
	}
	return sender, recipient, []skill.Skill{guitar, spanish}
}

func TestConnection_CreateRequest_Success(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	repo := newMockRequestRepo()
	notifier := &mockNotifier{}
	uc := NewConnectionUsecase(repo, newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), notifier)

	req, err := uc.CreateRequest(context.Background(), sender.UserID, CreateRequestInput{
		RecipientID:   recipient.UserID,
		SkillsOffered: []uuid.UUID{skills[0].ID},
		SkillsWanted:  []uuid.UUID{skills[1].ID},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if req.Status != connection.StatusPending {
		t.Fatalf("expected pending status, got %s", req.Status)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created request, got %d", len(repo.created))
	}
	if len(notifier.events) != 1 || notifier.events[0].kind != "created" || notifier.events[0].userID != recipient.UserID {
		t.Fatalf("expected created notification for recipient, got %+v", notifier.events)
	}
}

func TestConnection_CreateRequest_SelfRequest(t *testing.T) {
	sender, _, skills := connectionFixture()
	uc := NewConnectionUsecase(newMockRequestRepo(), newMockProfileRepo(sender), newMockSkillRepo(skills...), nil)

	_, err := uc.CreateRequest(context.Background(), sender.UserID, CreateRequestInput{
		RecipientID:   sender.UserID,
		SkillsOffered: []uuid.UUID{skills[0].ID},
		SkillsWanted:  []uuid.UUID{skills[1].ID},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConnection_CreateRequest_InvalidSelections(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	guitarID, spanishID := skills[0].ID, skills[1].ID
	stranger := uuid.New()

	cases := []struct {
		name    string
		offered []uuid.UUID
		wanted  []uuid.UUID
	}{
		{"empty offered", nil, []uuid.UUID{spanishID}},
		{"empty wanted", []uuid.UUID{guitarID}, nil},
		{"offered not owned by sender", []uuid.UUID{spanishID}, []uuid.UUID{spanishID}},
		{"wanted not wanted by sender", []uuid.UUID{guitarID}, []uuid.UUID{guitarID}},
		{"wanted not held by recipient", []uuid.UUID{guitarID}, []uuid.UUID{stranger}},
		{"duplicate offered ids", []uuid.UUID{guitarID, guitarID}, []uuid.UUID{spanishID}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewConnectionUsecase(newMockRequestRepo(), newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), nil)
			_, err := uc.CreateRequest(context.Background(), sender.UserID, CreateRequestInput{
				RecipientID:   recipient.UserID,
				SkillsOffered: tc.offered,
				SkillsWanted:  tc.wanted,
			})
			if !errors.Is(err, ErrInvalidSelection) {
				t.Fatalf("expected ErrInvalidSelection, got %v", err)
			}
		})
	}
}

func TestConnection_CreateRequest_MissingProfile(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	// Only the sender's profile exists.
	uc := NewConnectionUsecase(newMockRequestRepo(), newMockProfileRepo(sender), newMockSkillRepo(skills...), nil)

	_, err := uc.CreateRequest(context.Background(), sender.UserID, CreateRequestInput{
		RecipientID:   recipient.UserID,
		SkillsOffered: []uuid.UUID{skills[0].ID},
		SkillsWanted:  []uuid.UUID{skills[1].ID},
	})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestConnection_Approve_Success(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	req := connection.Request{
		ID:            uuid.New(),
		SenderID:      sender.UserID,
		RecipientID:   recipient.UserID,
		SkillsOffered: []uuid.UUID{skills[0].ID},
		SkillsWanted:  []uuid.UUID{skills[1].ID},
		Status:        connection.StatusPending,
	}
	repo := newMockRequestRepo(req)
	notifier := &mockNotifier{}
	uc := NewConnectionUsecase(repo, newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), notifier)

	approved, err := uc.Approve(context.Background(), req.ID, recipient.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if approved.Status != connection.StatusApproved {
		t.Fatalf("expected approved status, got %s", approved.Status)
	}
	if approved.ApprovedAt == nil {
		t.Fatalf("expected approved_at to be set")
	}
	if len(notifier.events) != 1 || notifier.events[0].kind != "approved" || notifier.events[0].userID != sender.UserID {
		t.Fatalf("expected approved notification for sender, got %+v", notifier.events)
	}
}

func TestConnection_Approve_OnlyRecipient(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	req := connection.Request{
		ID:          uuid.New(),
		SenderID:    sender.UserID,
		RecipientID: recipient.UserID,
		Status:      connection.StatusPending,
	}
	uc := NewConnectionUsecase(newMockRequestRepo(req), newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), nil)

	if _, err := uc.Approve(context.Background(), req.ID, sender.UserID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for sender approving, got %v", err)
	}
	if _, err := uc.Approve(context.Background(), req.ID, uuid.New()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for third party, got %v", err)
	}
}

func TestConnection_Approve_NotPending(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	at := time.Now().UTC()
	req := connection.Request{
		ID:          uuid.New(),
		SenderID:    sender.UserID,
		RecipientID: recipient.UserID,
		Status:      connection.StatusApproved,
		ApprovedAt:  &at,
	}
	uc := NewConnectionUsecase(newMockRequestRepo(req), newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), nil)

	if _, err := uc.Approve(context.Background(), req.ID, recipient.UserID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestConnection_Approve_LostRace(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	req := connection.Request{
		ID:          uuid.New(),
		SenderID:    sender.UserID,
		RecipientID: recipient.UserID,
		Status:      connection.StatusPending,
	}
	repo := newMockRequestRepo(req)
	// The conditional update reports no rows touched, as when a reject
	// lands between the read and the update.
	repo.approveOK = false
	uc := NewConnectionUsecase(repo, newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), nil)

	if _, err := uc.Approve(context.Background(), req.ID, recipient.UserID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on lost race, got %v", err)
	}
}

func TestConnection_Reject_DeletesAndNotifiesSender(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	req := connection.Request{
		ID:          uuid.New(),
		SenderID:    sender.UserID,
		RecipientID: recipient.UserID,
		Status:      connection.StatusPending,
	}
	repo := newMockRequestRepo(req)
	notifier := &mockNotifier{}
	uc := NewConnectionUsecase(repo, newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), notifier)

	if err := uc.Reject(context.Background(), req.ID, recipient.UserID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != req.ID {
		t.Fatalf("expected request to be deleted")
	}
	if _, err := repo.GetByID(context.Background(), req.ID); !errors.Is(err, connection.ErrNotFound) {
		t.Fatalf("expected request gone after reject")
	}
	if len(notifier.events) != 1 || notifier.events[0].kind != "removed" || notifier.events[0].userID != sender.UserID {
		t.Fatalf("expected removed notification for sender, got %+v", notifier.events)
	}
}

func TestConnection_Reject_OnlyRecipient(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	req := connection.Request{
		ID:          uuid.New(),
		SenderID:    sender.UserID,
		RecipientID: recipient.UserID,
		Status:      connection.StatusPending,
	}
	uc := NewConnectionUsecase(newMockRequestRepo(req), newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), nil)

	if err := uc.Reject(context.Background(), req.ID, sender.UserID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestConnection_Withdraw_OnlySender(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	req := connection.Request{
		ID:          uuid.New(),
		SenderID:    sender.UserID,
		RecipientID: recipient.UserID,
		Status:      connection.StatusPending,
	}
	repo := newMockRequestRepo(req)
	notifier := &mockNotifier{}
	uc := NewConnectionUsecase(repo, newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), notifier)

	if err := uc.Withdraw(context.Background(), req.ID, recipient.UserID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for recipient withdrawing, got %v", err)
	}
	if err := uc.Withdraw(context.Background(), req.ID, sender.UserID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(notifier.events) != 1 || notifier.events[0].userID != recipient.UserID {
		t.Fatalf("expected removed notification for recipient, got %+v", notifier.events)
	}
}

func TestConnection_Withdraw_ApprovedRequest(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	at := time.Now().UTC()
	req := connection.Request{
		ID:          uuid.New(),
		SenderID:    sender.UserID,
		RecipientID: recipient.UserID,
		Status:      connection.StatusApproved,
		ApprovedAt:  &at,
	}
	repo := newMockRequestRepo(req)
	uc := NewConnectionUsecase(repo, newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), nil)

	// Withdrawing an approved request removes the connection itself.
	if err := uc.Withdraw(context.Background(), req.ID, sender.UserID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, err := uc.ListConnections(context.Background(), sender.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no connections after withdraw, got %d", len(got))
	}
}

func TestConnection_OperationsOnMissingRequest(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	uc := NewConnectionUsecase(newMockRequestRepo(), newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), nil)
	missing := uuid.New()

	if _, err := uc.Approve(context.Background(), missing, recipient.UserID); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound on approve, got %v", err)
	}
	if err := uc.Reject(context.Background(), missing, recipient.UserID); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound on reject, got %v", err)
	}
	if err := uc.Withdraw(context.Background(), missing, sender.UserID); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound on withdraw, got %v", err)
	}
}

func TestConnection_ListIncomingAndOutgoing(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	req := connection.Request{
		ID:            uuid.New(),
		SenderID:      sender.UserID,
		RecipientID:   recipient.UserID,
		SkillsOffered: []uuid.UUID{skills[0].ID},
		SkillsWanted:  []uuid.UUID{skills[1].ID},
		Status:        connection.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	uc := NewConnectionUsecase(newMockRequestRepo(req), newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), nil)

	incoming, err := uc.ListIncoming(context.Background(), recipient.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(incoming) != 1 {
		t.Fatalf("expected 1 incoming request, got %d", len(incoming))
	}
	if incoming[0].Counterpart.UserID != sender.UserID {
		t.Fatalf("incoming counterpart must be the sender")
	}
	if len(incoming[0].SkillsOffered) != 1 || incoming[0].SkillsOffered[0].Name != "Guitar" {
		t.Fatalf("expected resolved offered skills, got %+v", incoming[0].SkillsOffered)
	}

	outgoing, err := uc.ListOutgoing(context.Background(), sender.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(outgoing) != 1 {
		t.Fatalf("expected 1 outgoing request, got %d", len(outgoing))
	}
	if outgoing[0].Counterpart.UserID != recipient.UserID {
		t.Fatalf("outgoing counterpart must be the recipient")
	}

	if got, _ := uc.ListIncoming(context.Background(), sender.UserID); len(got) != 0 {
		t.Fatalf("sender must not see the request as incoming")
	}
}

func TestConnection_ListRequests_DropsDanglingCounterpart(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	req := connection.Request{
		ID:          uuid.New(),
		SenderID:    sender.UserID,
		RecipientID: recipient.UserID,
		Status:      connection.StatusPending,
	}
	// Sender profile no longer exists.
	uc := NewConnectionUsecase(newMockRequestRepo(req), newMockProfileRepo(recipient), newMockSkillRepo(skills...), nil)

	incoming, err := uc.ListIncoming(context.Background(), recipient.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(incoming) != 0 {
		t.Fatalf("expected dangling row to be dropped, got %d", len(incoming))
	}
}

func TestConnection_ListConnections_RolesAndCounterparts(t *testing.T) {
	sender, recipient, skills := connectionFixture()
	at := time.Now().UTC()
	req := connection.Request{
		ID:            uuid.New(),
		SenderID:      sender.UserID,
		RecipientID:   recipient.UserID,
		SkillsOffered: []uuid.UUID{skills[0].ID},
		SkillsWanted:  []uuid.UUID{skills[1].ID},
		Status:        connection.StatusApproved,
		CreatedAt:     at,
		ApprovedAt:    &at,
	}
	uc := NewConnectionUsecase(newMockRequestRepo(req), newMockProfileRepo(sender, recipient), newMockSkillRepo(skills...), nil)

	fromSender, err := uc.ListConnections(context.Background(), sender.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fromSender) != 1 {
		t.Fatalf("expected 1 connection for sender, got %d", len(fromSender))
	}
	if fromSender[0].Role != RoleSender || fromSender[0].Counterpart.UserID != recipient.UserID {
		t.Fatalf("unexpected sender view: role=%s counterpart=%s", fromSender[0].Role, fromSender[0].Counterpart.UserID)
	}

	fromRecipient, err := uc.ListConnections(context.Background(), recipient.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fromRecipient) != 1 {
		t.Fatalf("expected 1 connection for recipient, got %d", len(fromRecipient))
	}
	if fromRecipient[0].Role != RoleRecipient || fromRecipient[0].Counterpart.UserID != sender.UserID {
		t.Fatalf("unexpected recipient view: role=%s counterpart=%s", fromRecipient[0].Role, fromRecipient[0].Counterpart.UserID)
	}
	if fromRecipient[0].ApprovedAt == nil {
		t.Fatalf("expected approved_at on connection")
	}
}
