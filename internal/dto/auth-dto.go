package dto

import "gearguard/pkg/service"

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupDTO struct {
	Name         string  `json:"name" validate:"required,min=2"`
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=6"`
	DepartmentID *uint64 `json:"departmentId" validate:"omitempty,gt=0"`
}

type SignupResponseDTO struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	DepartmentID *uint64 `json:"departmentId"`
}

type AuthResponseDTO struct {
	User        service.Identity `json:"user"`
	AccessToken string           `json:"accessToken"`
	ExpiresIn   int64            `json:"expiresIn"`
}
