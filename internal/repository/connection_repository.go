package repository

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/database"
	"skillswap/internal/domain/connection"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresConnectionRepository struct {
	db database.DB
}

func NewPostgresConnectionRepository(db database.DB) *PostgresConnectionRepository {
	return &PostgresConnectionRepository{db: db}
}

const requestColumns = `id, sender_id, recipient_id, skills_offered, skills_wanted, status, created_at, approved_at`

func (r *PostgresConnectionRepository) Create(ctx context.Context, req connection.Request) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO connection_requests (id, sender_id, recipient_id, skills_offered, skills_wanted, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID, req.SenderID, req.RecipientID, req.SkillsOffered, req.SkillsWanted, req.Status,
	)
	return err
}

func (r *PostgresConnectionRepository) GetByID(ctx context.Context, id uuid.UUID) (connection.Request, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM connection_requests WHERE id = $1`,
		id,
	)
	return scanRequest(row)
}

func (r *PostgresConnectionRepository) Approve(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE connection_requests SET status = $1, approved_at = $2 WHERE id = $3 AND status = $4`,
		connection.StatusApproved, at, id, connection.StatusPending,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresConnectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM connection_requests WHERE id = $1`, id)
	return err
}

func (r *PostgresConnectionRepository) ListBySender(ctx context.Context, senderID uuid.UUID, status connection.Status) ([]connection.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+requestColumns+` FROM connection_requests WHERE sender_id = $1 AND status = $2`,
		senderID, status,
	)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

func (r *PostgresConnectionRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, status connection.Status) ([]connection.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+requestColumns+` FROM connection_requests WHERE recipient_id = $1 AND status = $2`,
		recipientID, status,
	)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

func (r *PostgresConnectionRepository) ListInvolving(ctx context.Context, userID uuid.UUID, status connection.Status) ([]connection.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+requestColumns+` FROM connection_requests
		 WHERE (sender_id = $1 OR recipient_id = $1) AND status = $2`,
		userID, status,
	)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

func collectRequests(rows database.Rows) ([]connection.Request, error) {
	defer rows.Close()

	out := make([]connection.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanRequest(row database.Row) (connection.Request, error) {
	var req connection.Request
	err := row.Scan(
		&req.ID, &req.SenderID, &req.RecipientID,
		&req.SkillsOffered, &req.SkillsWanted,
		&req.Status, &req.CreatedAt, &req.ApprovedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return connection.Request{}, connection.ErrNotFound
		}
		return connection.Request{}, err
	}
	return req, nil
}
