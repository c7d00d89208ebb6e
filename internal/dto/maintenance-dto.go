package dto

type CreateMaintenanceRequestDTO struct {
	Subject       string   `json:"subject" validate:"required,min=2"`
	Description   *string  `json:"description"`
	EquipmentID   uint64   `json:"equipmentId" validate:"required,gt=0"`
	RequestType   string   `json:"requestType" validate:"required,oneof=CORRECTIVE PREVENTIVE PREDICTIVE"`
	AssignedToID  *uint64  `json:"assignedToId" validate:"omitempty,gt=0"`
	ScheduledDate *string  `json:"scheduledDate"`
	DurationHours *float64 `json:"durationHours" validate:"omitempty,gt=0"`
}

type UpdateMaintenanceRequestDTO struct {
	Subject       string   `json:"subject" validate:"required,min=2"`
	Description   *string  `json:"description"`
	RequestType   string   `json:"requestType" validate:"required,oneof=CORRECTIVE PREVENTIVE PREDICTIVE"`
	Stage         string   `json:"stage" validate:"required,oneof=NEW ASSIGNED IN_PROGRESS REPAIRED SCRAPPED"`
	AssignedToID  *uint64  `json:"assignedToId"`
	ScheduledDate *string  `json:"scheduledDate"`
	CompletedDate *string  `json:"completedDate"`
	DurationHours *float64 `json:"durationHours" validate:"omitempty,gt=0"`
}
