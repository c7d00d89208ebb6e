package seeders

import (
	"context"

	"gearguard/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

type employeeSeed struct {
	name       string
	email      string
	password   string
	role       string
	department string
}

var employeeSeeds = []employeeSeed{
	{"Admin User", "admin@gearguard.com", "admin123", "ADMIN", "Maintenance"},
	{"John Manager", "manager@gearguard.com", "manager123", "MANAGER", "Production"},
	{"Jane User", "user@gearguard.com", "user123", "USER", "Production"},
	{"Mike Technician", "tech@gearguard.com", "tech123", "TECHNICIAN", "Maintenance"},
	{"Sarah Electrician", "electrician@gearguard.com", "tech123", "TECHNICIAN", "Maintenance"},
}

func seedEmployees(ctx context.Context, db *pgxpool.Pool) error {
	for _, seed := range employeeSeeds {
		var existing uint64
		err := db.QueryRow(ctx, "SELECT id FROM employees WHERE email = $1", seed.email).Scan(&existing)
		if err == nil {
			continue
		}

		deptID, err := departmentID(ctx, db, seed.department)
		if err != nil {
			return err
		}

		hash, err := utils.HashPassword(seed.password)
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx,
			`INSERT INTO employees (name, email, password, role, department_id)
			 VALUES ($1, $2, $3, $4, $5)`,
			seed.name, seed.email, hash, seed.role, deptID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func employeeID(ctx context.Context, db *pgxpool.Pool, email string) (uint64, error) {
	var id uint64
	err := db.QueryRow(ctx, "SELECT id FROM employees WHERE email = $1", email).Scan(&id)
	return id, err
}
