package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var categoryNames = []string{"CNC Machines", "Computers", "Vehicles"}

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range categoryNames {
		_, err := findOrCreate(ctx, db,
			"SELECT id FROM equipment_categories WHERE name = $1",
			"INSERT INTO equipment_categories (name) VALUES ($1) RETURNING id",
			[]interface{}{name},
			[]interface{}{name},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func categoryID(ctx context.Context, db *pgxpool.Pool, name string) (uint64, error) {
	var id uint64
	err := db.QueryRow(ctx, "SELECT id FROM equipment_categories WHERE name = $1", name).Scan(&id)
	return id, err
}
