package entities

import (
	"time"

	"gearguard/internal/lifecycle"

	"github.com/aarondl/null/v8"
)

// EquipmentRef is the abbreviated equipment shape embedded into a request
// detail view.
type EquipmentRef struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serialNumber"`
	Location     null.String `json:"location"`
}

// EmployeeRef is the abbreviated employee shape embedded into a request
// detail view.
type EmployeeRef struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TechnicianRef names the technician a request is assigned to.
type TechnicianRef struct {
	ID            uint64 `json:"id"`
	EmployeeName  string `json:"employeeName"`
	EmployeeEmail string `json:"employeeEmail"`
}

type MaintenanceRequest struct {
	ID                  uint64                `json:"id"`
	Subject             string                `json:"subject"`
	Description         null.String           `json:"description"`
	EquipmentID         uint64                `json:"equipmentId"`
	EquipmentCategoryID uint64                `json:"equipmentCategoryId"`
	MaintenanceTeamID   uint64                `json:"maintenanceTeamId"`
	RequestType         lifecycle.RequestType `json:"requestType"`
	Stage               lifecycle.Stage       `json:"stage"`
	RequestedByID       uint64                `json:"requestedById"`
	AssignedToID        *uint64               `json:"assignedToId"`
	ScheduledDate       null.Time             `json:"scheduledDate"`
	CompletedDate       null.Time             `json:"completedDate"`
	DurationHours       null.Float64          `json:"durationHours"`
	CreatedAt           time.Time             `json:"createdAt"`
	UpdatedAt           time.Time             `json:"updatedAt"`

	Equipment         *EquipmentRef      `json:"equipment,omitempty"`
	EquipmentCategory *EquipmentCategory `json:"equipmentCategory,omitempty"`
	MaintenanceTeam   *MaintenanceTeam   `json:"maintenanceTeam,omitempty"`
	RequestedBy       *EmployeeRef       `json:"requestedBy,omitempty"`
	AssignedTo        *TechnicianRef     `json:"assignedTo,omitempty"`
}
