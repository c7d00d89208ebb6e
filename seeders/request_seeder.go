package seeders

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type requestSeed struct {
	subject         string
	description     string
	equipmentSerial string
	requestType     string
	stage           string
	requesterEmail  string
	assigneeEmail   string
	scheduledIn     *time.Duration
	completed       bool
	durationHours   *float64
}

func durationPtr(d time.Duration) *time.Duration { return &d }
func floatPtr(f float64) *float64                { return &f }

var requestSeeds = []requestSeed{
	{
		subject:         "CNC spindle vibration",
		description:     "Excessive vibration during operation",
		equipmentSerial: "CNC-001-2023",
		requestType:     "CORRECTIVE",
		stage:           "IN_PROGRESS",
		requesterEmail:  "manager@gearguard.com",
		assigneeEmail:   "tech@gearguard.com",
		scheduledIn:     durationPtr(0),
	},
	{
		subject:         "Quarterly CNC maintenance",
		description:     "Routine preventive maintenance",
		equipmentSerial: "CNC-001-2023",
		requestType:     "PREVENTIVE",
		stage:           "ASSIGNED",
		requesterEmail:  "admin@gearguard.com",
		assigneeEmail:   "tech@gearguard.com",
		scheduledIn:     durationPtr(7 * 24 * time.Hour),
	},
	{
		subject:         "Laptop overheating",
		description:     "Laptop shuts down randomly due to heat",
		equipmentSerial: "DELL-LAP-2024-001",
		requestType:     "CORRECTIVE",
		stage:           "NEW",
		requesterEmail:  "user@gearguard.com",
	},
	{
		subject:         "Forklift brake inspection",
		description:     "Preventive brake inspection",
		equipmentSerial: "FLT-005-2022",
		requestType:     "PREVENTIVE",
		stage:           "REPAIRED",
		requesterEmail:  "manager@gearguard.com",
		assigneeEmail:   "tech@gearguard.com",
		completed:       true,
		durationHours:   floatPtr(2.5),
	},
}

func seedRequests(ctx context.Context, db *pgxpool.Pool) error {
	for _, seed := range requestSeeds {
		var existing uint64
		err := db.QueryRow(ctx, "SELECT id FROM maintenance_requests WHERE subject = $1", seed.subject).Scan(&existing)
		if err == nil {
			continue
		}

		equipID, catID, tmID, err := equipmentBySerial(ctx, db, seed.equipmentSerial)
		if err != nil {
			return err
		}
		requesterID, err := employeeID(ctx, db, seed.requesterEmail)
		if err != nil {
			return err
		}

		var assigneeID *uint64
		if seed.assigneeEmail != "" {
			id, err := technicianID(ctx, db, seed.assigneeEmail)
			if err != nil {
				return err
			}
			assigneeID = &id
		}

		var scheduledDate *time.Time
		if seed.scheduledIn != nil {
			t := time.Now().Add(*seed.scheduledIn)
			scheduledDate = &t
		}
		var completedDate *time.Time
		if seed.completed {
			t := time.Now()
			completedDate = &t
		}

		_, err = db.Exec(ctx,
			`INSERT INTO maintenance_requests
			   (subject, description, equipment_id, equipment_category_id, maintenance_team_id,
			    request_type, stage, requested_by_id, assigned_to_id, scheduled_date,
			    completed_date, duration_hours)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			seed.subject, seed.description, equipID, catID, tmID,
			seed.requestType, seed.stage, requesterID, assigneeID, scheduledDate,
			completedDate, seed.durationHours,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
