package main

import (
	"context"
	"flag"
	"log"
	"time"

	"skillswap/internal/app"
	"skillswap/internal/config"
	"skillswap/internal/database/migration"
	"skillswap/internal/database/seeder"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and skip seed data")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := (migration.Runner{}).Run(ctx, c.DB); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("migrations applied")

	if *migrateOnly {
		return
	}

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, c.DB); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("seed data loaded")
}
