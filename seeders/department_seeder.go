package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var departmentNames = []string{"Production", "IT", "Maintenance"}

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range departmentNames {
		_, err := findOrCreate(ctx, db,
			"SELECT id FROM departments WHERE name = $1",
			"INSERT INTO departments (name) VALUES ($1) RETURNING id",
			[]interface{}{name},
			[]interface{}{name},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func departmentID(ctx context.Context, db *pgxpool.Pool, name string) (uint64, error) {
	var id uint64
	err := db.QueryRow(ctx, "SELECT id FROM departments WHERE name = $1", name).Scan(&id)
	return id, err
}
