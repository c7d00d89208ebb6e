package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var teamNames = []string{"Mechanics", "Electrical Team", "IT Support"}

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range teamNames {
		_, err := findOrCreate(ctx, db,
			"SELECT id FROM maintenance_teams WHERE name = $1",
			"INSERT INTO maintenance_teams (name) VALUES ($1) RETURNING id",
			[]interface{}{name},
			[]interface{}{name},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func teamID(ctx context.Context, db *pgxpool.Pool, name string) (uint64, error) {
	var id uint64
	err := db.QueryRow(ctx, "SELECT id FROM maintenance_teams WHERE name = $1", name).Scan(&id)
	return id, err
}
