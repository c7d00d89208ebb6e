package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID                  uint64          `json:"id"`
	Name                string          `json:"name"`
	SerialNumber        string          `json:"serialNumber"`
	CategoryID          uint64          `json:"categoryId"`
	DepartmentID        uint64          `json:"departmentId"`
	MaintenanceTeamID   uint64          `json:"maintenanceTeamId"`
	DefaultTechnicianID *uint64         `json:"defaultTechnicianId"`
	AssignedEmployeeID  *uint64         `json:"assignedEmployeeId"`
	Location            null.String     `json:"location"`
	PurchaseDate        null.Time       `json:"purchaseDate"`
	WarrantyExpiryDate  null.Time       `json:"warrantyExpiryDate"`
	Status              EquipmentStatus `json:"status"`
	Notes               null.String     `json:"notes"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`

	Category          *EquipmentCategory `json:"category,omitempty"`
	Department        *Department        `json:"department,omitempty"`
	MaintenanceTeam   *MaintenanceTeam   `json:"maintenanceTeam,omitempty"`
	DefaultTechnician *Technician        `json:"defaultTechnician,omitempty"`
	AssignedEmployee  *Employee          `json:"assignedEmployee,omitempty"`
}
