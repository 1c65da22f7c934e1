package seeder

import (
	"context"
	"fmt"
	"strings"

	"skillswap/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoProfilesSeeder provisions a handful of demo accounts so matching has
// something to show on a fresh install. All demo accounts share one password.
type DemoProfilesSeeder struct{}

func (DemoProfilesSeeder) Name() string { return "demo_profiles" }

const demoPassword = "skillswap-demo"

type demoProfile struct {
	Email          string
	Name           string
	Bio            string
	SkillsIHave    []string
	SkillsIWant    []string
	ContactMethods map[string]string
}

var demoProfiles = []demoProfile{
	{
		Email:       "alex.chen@example.com",
		Name:        "Alex Chen",
		Bio:         "Full-stack developer passionate about teaching and learning new technologies.",
		SkillsIHave: []string{"Web Development", "Mobile Development", "UI/UX Design"},
		SkillsIWant: []string{"Graphic Design", "Digital Marketing", "Public Speaking"},
		ContactMethods: map[string]string{
			"email":   "alex.chen@example.com",
			"discord": "alexchen#1234",
			"twitter": "@alexchen",
		},
	},
	{
		Email:       "sarah.j@example.com",
		Name:        "Sarah Johnson",
		Bio:         "Graphic designer with a love for creative expression and teaching design principles.",
		SkillsIHave: []string{"Graphic Design", "UI/UX Design", "Animation"},
		SkillsIWant: []string{"Web Development", "Digital Marketing", "Content Writing"},
		ContactMethods: map[string]string{
			"email":     "sarah.j@example.com",
			"instagram": "@sarahjdesigns",
			"discord":   "sarahj#5678",
		},
	},
	{
		Email:       "mike.rod@example.com",
		Name:        "Michael Rodriguez",
		Bio:         "Digital marketing specialist who enjoys helping others grow their online presence.",
		SkillsIHave: []string{"Digital Marketing", "Content Writing", "Public Speaking"},
		SkillsIWant: []string{"Web Development", "Data Analysis", "Project Management"},
		ContactMethods: map[string]string{
			"email":   "mike.rod@example.com",
			"phone":   "+15551234567",
			"twitter": "@mikerod",
		},
	},
	{
		Email:       "emma.w@example.com",
		Name:        "Emma Wilson",
		Bio:         "Language teacher with a passion for cultural exchange and communication.",
		SkillsIHave: []string{"Language Teaching", "Public Speaking", "Content Writing"},
		SkillsIWant: []string{"Web Development", "Digital Marketing", "Graphic Design"},
		ContactMethods: map[string]string{
			"email":     "emma.w@example.com",
			"instagram": "@emmawilson",
			"discord":   "emmaw#9012",
		},
	},
	{
		Email:       "david.kim@example.com",
		Name:        "David Kim",
		Bio:         "Data scientist interested in teaching data analysis and machine learning.",
		SkillsIHave: []string{"Data Analysis", "Machine Learning", "Project Management"},
		SkillsIWant: []string{"UI/UX Design", "Public Speaking", "Content Writing"},
		ContactMethods: map[string]string{
			"email":   "david.kim@example.com",
			"twitter": "@davidkim",
			"discord": "davidk#3456",
		},
	},
	{
		Email:       "lisa.m@example.com",
		Name:        "Lisa Martinez",
		Bio:         "Professional photographer and video editor with a creative eye.",
		SkillsIHave: []string{"Photography", "Video Editing", "Graphic Design"},
		SkillsIWant: []string{"Web Development", "Digital Marketing", "Content Writing"},
		ContactMethods: map[string]string{
			"email":     "lisa.m@example.com",
			"instagram": "@lisamartinezphoto",
			"discord":   "lisam#7890",
		},
	},
}

func (DemoProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	skillIDs, err := skillIDsByName(ctx, db)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range demoProfiles {
		have, err := resolveSkills(skillIDs, p.SkillsIHave)
		if err != nil {
			return err
		}
		want, err := resolveSkills(skillIDs, p.SkillsIWant)
		if err != nil {
			return err
		}

		userID := uuid.New()
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
			userID, p.Email, string(hash),
		)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Account already seeded.
			continue
		}

		_, err = tx.Exec(
			ctx,
			`INSERT INTO profiles (user_id, name, bio, skills_i_have, skills_i_want, contact_methods)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (user_id) DO NOTHING`,
			userID, p.Name, p.Bio, have, want, p.ContactMethods,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func skillIDsByName(ctx context.Context, db database.DB) (map[string]uuid.UUID, error) {
	rows, err := db.Query(ctx, `SELECT id, name FROM skills`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]uuid.UUID)
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[strings.ToLower(name)] = id
	}
	return out, rows.Err()
}

func resolveSkills(byName map[string]uuid.UUID, names []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(names))
	for _, n := range names {
		id, ok := byName[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown skill %q", n)
		}
		out = append(out, id)
	}
	return out, nil
}
