package repository

import (
	"context"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `user_id, name, bio, skills_i_have, skills_i_want, contact_methods, created_at, updated_at`

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) UpsertProfile(ctx context.Context, p user.Profile) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (user_id, name, bio, skills_i_have, skills_i_want, contact_methods)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			bio = EXCLUDED.bio,
			skills_i_have = EXCLUDED.skills_i_have,
			skills_i_want = EXCLUDED.skills_i_want,
			contact_methods = EXCLUDED.contact_methods,
			updated_at = now()
		 RETURNING `+profileColumns,
		p.UserID, p.Name, p.Bio, p.SkillsIHave, p.SkillsIWant, p.ContactMethods,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) ListProfiles(ctx context.Context) ([]user.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profiles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProfile(row database.Row) (user.Profile, error) {
	var p user.Profile
	err := row.Scan(
		&p.UserID, &p.Name, &p.Bio,
		&p.SkillsIHave, &p.SkillsIWant, &p.ContactMethods,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}
