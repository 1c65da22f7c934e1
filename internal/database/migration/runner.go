package migration

import (
	"context"
	"errors"
	"fmt"

	"skillswap/internal/database"
)

const advisoryLockKey = 581230447

type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Migrations is the ordered, append-only schema history. Never edit an
// applied entry; add a new version instead.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id uuid PRIMARY KEY,
			email text NOT NULL UNIQUE,
			password_hash text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 2,
		Name:    "create_skills",
		SQL: `CREATE TABLE IF NOT EXISTS skills (
			id uuid PRIMARY KEY,
			name text NOT NULL UNIQUE,
			tags text[] NOT NULL DEFAULT '{}',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 3,
		Name:    "create_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS profiles (
			user_id uuid PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			name text NOT NULL,
			bio text NOT NULL DEFAULT '',
			skills_i_have uuid[] NOT NULL DEFAULT '{}',
			skills_i_want uuid[] NOT NULL DEFAULT '{}',
			contact_methods jsonb NOT NULL DEFAULT '{}'::jsonb,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 4,
		Name:    "create_connection_requests",
		SQL: `CREATE TABLE IF NOT EXISTS connection_requests (
			id uuid PRIMARY KEY,
			sender_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			recipient_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			skills_offered uuid[] NOT NULL,
			skills_wanted uuid[] NOT NULL,
			status text NOT NULL DEFAULT 'pending',
			created_at timestamptz NOT NULL DEFAULT now(),
			approved_at timestamptz,
			CHECK (sender_id <> recipient_id),
			CHECK (status IN ('pending', 'approved'))
		)`,
	},
	{
		Version: 5,
		Name:    "index_connection_requests_parties",
		SQL: `CREATE INDEX IF NOT EXISTS idx_connection_requests_sender
			ON connection_requests (sender_id, status)`,
	},
	{
		Version: 6,
		Name:    "index_connection_requests_recipient",
		SQL: `CREATE INDEX IF NOT EXISTS idx_connection_requests_recipient
			ON connection_requests (recipient_id, status)`,
	},
}

type Runner struct {
	Migrations []Migration
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	migs := r.Migrations
	if migs == nil {
		migs = Migrations
	}
	if len(migs) == 0 {
		return nil
	}

	if err := ensureSchemaMigrations(ctx, db); err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	defer func() {
		_, _ = db.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, advisoryLockKey)
	}()

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migs {
		if applied[m.Version] {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

func ensureSchemaMigrations(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version integer PRIMARY KEY,
		name text NOT NULL,
		applied_at timestamptz NOT NULL DEFAULT now()
	)`)
	return err
}

func appliedVersions(ctx context.Context, db database.DB) (map[int]bool, error) {
	rows, err := db.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out[v] = true
	}
	return out, rows.Err()
}

func apply(ctx context.Context, db database.DB, m Migration) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
		m.Version, m.Name,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
