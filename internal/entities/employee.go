package entities

import "time"

type Employee struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Role         Role      `json:"role"`
	DepartmentID *uint64   `json:"departmentId"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Populated by repositories that join the related rows.
	Department *Department `json:"department,omitempty"`
	Technician *Technician `json:"technician,omitempty"`
}
