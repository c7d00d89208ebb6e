package dto

type CreateEquipmentDTO struct {
	Name                string  `json:"name" validate:"required,min=2"`
	SerialNumber        string  `json:"serialNumber" validate:"required,min=2"`
	CategoryID          uint64  `json:"categoryId" validate:"required,gt=0"`
	DepartmentID        uint64  `json:"departmentId" validate:"required,gt=0"`
	MaintenanceTeamID   uint64  `json:"maintenanceTeamId" validate:"required,gt=0"`
	DefaultTechnicianID *uint64 `json:"defaultTechnicianId" validate:"omitempty,gt=0"`
	AssignedEmployeeID  *uint64 `json:"assignedEmployeeId" validate:"omitempty,gt=0"`
	Location            string  `json:"location" validate:"required,min=2"`
	PurchaseDate        string  `json:"purchaseDate" validate:"required"`
	WarrantyExpiryDate  string  `json:"warrantyExpiryDate" validate:"required"`
	Notes               *string `json:"notes"`
}

// UpdateEquipmentDTO replaces the record field-by-field: no merge or patch
// semantics, matching the edit form which always submits the full record.
type UpdateEquipmentDTO struct {
	Name               string  `json:"name" validate:"required"`
	SerialNumber       string  `json:"serialNumber" validate:"required"`
	Location           *string `json:"location"`
	PurchaseDate       *string `json:"purchaseDate"`
	WarrantyExpiryDate *string `json:"warrantyExpiryDate"`
	Status             string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE MAINTENANCE RETIRED"`
	Notes              *string `json:"notes"`
}
