package main

import (
	"context"
	"log"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/seeders"
)

func main() {
	cfg := config.New()
	ctx := context.Background()

	pool, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := seeders.Run(ctx, pool); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
