package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var technicianSeeds = []struct {
	employeeEmail string
	team          string
}{
	{"tech@gearguard.com", "Mechanics"},
	{"electrician@gearguard.com", "Electrical Team"},
}

func seedTechnicians(ctx context.Context, db *pgxpool.Pool) error {
	for _, seed := range technicianSeeds {
		empID, err := employeeID(ctx, db, seed.employeeEmail)
		if err != nil {
			return err
		}

		var existing uint64
		err = db.QueryRow(ctx, "SELECT id FROM technicians WHERE employee_id = $1", empID).Scan(&existing)
		if err == nil {
			continue
		}

		tmID, err := teamID(ctx, db, seed.team)
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx,
			"INSERT INTO technicians (employee_id, maintenance_team_id) VALUES ($1, $2)",
			empID, tmID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func technicianID(ctx context.Context, db *pgxpool.Pool, employeeEmail string) (uint64, error) {
	var id uint64
	err := db.QueryRow(ctx,
		`SELECT t.id FROM technicians t
		 JOIN employees e ON e.id = t.employee_id
		 WHERE e.email = $1`,
		employeeEmail,
	).Scan(&id)
	return id, err
}
