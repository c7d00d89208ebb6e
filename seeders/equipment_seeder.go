package seeders

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type equipmentSeed struct {
	name             string
	serialNumber     string
	category         string
	department       string
	team             string
	defaultTechEmail string
	assignedEmpEmail string
	location         string
	purchaseDate     string
	warrantyExpiry   string
}

var equipmentSeeds = []equipmentSeed{
	{
		name:             "CNC Mill 001",
		serialNumber:     "CNC-001-2023",
		category:         "CNC Machines",
		department:       "Production",
		team:             "Mechanics",
		defaultTechEmail: "tech@gearguard.com",
		location:         "Shop Floor - Bay A",
		purchaseDate:     "2023-01-15",
		warrantyExpiry:   "2026-01-15",
	},
	{
		name:             "Laptop - Jane",
		serialNumber:     "DELL-LAP-2024-001",
		category:         "Computers",
		department:       "Production",
		team:             "IT Support",
		assignedEmpEmail: "user@gearguard.com",
		location:         "Office Building - Floor 2",
		purchaseDate:     "2024-03-10",
		warrantyExpiry:   "2027-03-10",
	},
	{
		name:             "Forklift 05",
		serialNumber:     "FLT-005-2022",
		category:         "Vehicles",
		department:       "Production",
		team:             "Mechanics",
		defaultTechEmail: "tech@gearguard.com",
		location:         "Warehouse - Loading Dock",
		purchaseDate:     "2022-06-20",
	},
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	for _, seed := range equipmentSeeds {
		var existing uint64
		err := db.QueryRow(ctx, "SELECT id FROM equipment WHERE serial_number = $1", seed.serialNumber).Scan(&existing)
		if err == nil {
			continue
		}

		catID, err := categoryID(ctx, db, seed.category)
		if err != nil {
			return err
		}
		deptID, err := departmentID(ctx, db, seed.department)
		if err != nil {
			return err
		}
		tmID, err := teamID(ctx, db, seed.team)
		if err != nil {
			return err
		}

		var defaultTechID *uint64
		if seed.defaultTechEmail != "" {
			id, err := technicianID(ctx, db, seed.defaultTechEmail)
			if err != nil {
				return err
			}
			defaultTechID = &id
		}

		var assignedEmpID *uint64
		if seed.assignedEmpEmail != "" {
			id, err := employeeID(ctx, db, seed.assignedEmpEmail)
			if err != nil {
				return err
			}
			assignedEmpID = &id
		}

		purchase, err := time.Parse("2006-01-02", seed.purchaseDate)
		if err != nil {
			return err
		}
		var warranty *time.Time
		if seed.warrantyExpiry != "" {
			parsed, err := time.Parse("2006-01-02", seed.warrantyExpiry)
			if err != nil {
				return err
			}
			warranty = &parsed
		}

		_, err = db.Exec(ctx,
			`INSERT INTO equipment
			   (name, serial_number, category_id, department_id, maintenance_team_id,
			    default_technician_id, assigned_employee_id, location, purchase_date,
			    warranty_expiry_date, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'ACTIVE')`,
			seed.name, seed.serialNumber, catID, deptID, tmID,
			defaultTechID, assignedEmpID, seed.location, purchase, warranty,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func equipmentBySerial(ctx context.Context, db *pgxpool.Pool, serial string) (id, catID, tmID uint64, err error) {
	err = db.QueryRow(ctx,
		"SELECT id, category_id, maintenance_team_id FROM equipment WHERE serial_number = $1",
		serial,
	).Scan(&id, &catID, &tmID)
	return id, catID, tmID, err
}
