package dto

type CreateDepartmentDTO struct {
	Name string `json:"name" validate:"required,min=1"`
}

type UpdateDepartmentDTO struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}
