package entities

import "time"

// Technician is a one-to-one extension of an Employee linking it to a
// maintenance team.
type Technician struct {
	ID                uint64    `json:"id"`
	EmployeeID        uint64    `json:"employeeId"`
	MaintenanceTeamID uint64    `json:"maintenanceTeamId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	Employee        *Employee        `json:"employee,omitempty"`
	MaintenanceTeam *MaintenanceTeam `json:"maintenanceTeam,omitempty"`
}
