package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Run executes every seeder in dependency order. Each seeder is idempotent:
// rows are looked up by their natural key first and existing rows are reused,
// so Run can be executed against a non-empty database.
func Run(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("Seeding database...")

	steps := []struct {
		name string
		fn   func(context.Context, *pgxpool.Pool) error
	}{
		{"departments", seedDepartments},
		{"employees", seedEmployees},
		{"maintenance teams", seedTeams},
		{"technicians", seedTechnicians},
		{"equipment categories", seedCategories},
		{"equipment", seedEquipment},
		{"maintenance requests", seedRequests},
	}

	for _, step := range steps {
		log.Printf("  - %s", step.name)
		if err := step.fn(ctx, db); err != nil {
			return fmt.Errorf("seeding %s: %w", step.name, err)
		}
	}

	log.Println("Seeding completed.")
	log.Println("Test accounts:")
	log.Println("  admin@gearguard.com / admin123")
	log.Println("  manager@gearguard.com / manager123")
	log.Println("  user@gearguard.com / user123")
	log.Println("  tech@gearguard.com / tech123")
	return nil
}

// findOrCreate inserts a row when the lookup query returns nothing and
// returns the row id either way.
func findOrCreate(ctx context.Context, db *pgxpool.Pool, lookupSQL string, insertSQL string, lookupArgs []interface{}, insertArgs []interface{}) (uint64, error) {
	var id uint64
	err := db.QueryRow(ctx, lookupSQL, lookupArgs...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err := db.QueryRow(ctx, insertSQL, insertArgs...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
