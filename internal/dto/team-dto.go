package dto

type CreateMaintenanceTeamDTO struct {
	Name string `json:"name" validate:"required,min=1"`
}

type UpdateMaintenanceTeamDTO struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}
