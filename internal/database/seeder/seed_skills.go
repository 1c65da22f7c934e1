package seeder

import (
	"context"
	"fmt"

	"skillswap/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

// The fixed catalog. Seeding is idempotent; names are the conflict key.
var catalogSkills = []struct {
	Name string
	Tags []string
}{
	{Name: "Web Development", Tags: []string{"programming", "frontend", "backend", "tech"}},
	{Name: "Mobile Development", Tags: []string{"programming", "ios", "android", "tech"}},
	{Name: "Graphic Design", Tags: []string{"design", "visual", "creative"}},
	{Name: "UI/UX Design", Tags: []string{"design", "product", "usability"}},
	{Name: "Digital Marketing", Tags: []string{"marketing", "social media", "seo"}},
	{Name: "Content Writing", Tags: []string{"writing", "copywriting", "creative"}},
	{Name: "Video Editing", Tags: []string{"video", "media", "creative"}},
	{Name: "Photography", Tags: []string{"photo", "camera", "creative"}},
	{Name: "Music Production", Tags: []string{"music", "audio", "creative"}},
	{Name: "Language Teaching", Tags: []string{"language", "teaching", "education"}},
	{Name: "Cooking", Tags: []string{"food", "culinary", "lifestyle"}},
	{Name: "Fitness Training", Tags: []string{"fitness", "health", "coaching"}},
	{Name: "Public Speaking", Tags: []string{"speaking", "presentation", "communication"}},
	{Name: "Project Management", Tags: []string{"management", "planning", "business"}},
	{Name: "Data Analysis", Tags: []string{"data", "analytics", "tech"}},
	{Name: "Machine Learning", Tags: []string{"ai", "data", "tech"}},
	{Name: "Blockchain Development", Tags: []string{"blockchain", "crypto", "tech"}},
	{Name: "Game Development", Tags: []string{"games", "programming", "tech"}},
	{Name: "3D Modeling", Tags: []string{"3d", "modeling", "creative"}},
	{Name: "Animation", Tags: []string{"animation", "motion", "creative"}},
}

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range catalogSkills {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, tags) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Tags,
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
