package dto

import (
	"ucentric_backend/internals/constants"
	helper "ucentric_backend/internals/helpers"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin superadmin"`
}

// Normalize mengisi default role "user".
func (r *CreateUserRequest) Normalize() {
	r.Role = constants.NormalizeRole(r.Role)
	if r.Role == "" {
		r.Role = constants.RoleUser
	}
}

// UpdateUserRequest: partial. Email diterima tapi diabaikan (immutable setelah dibuat).
type UpdateUserRequest struct {
	ID       string  `json:"id" validate:"omitempty,uuid"`
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin superadmin"`
	Image    *string `json:"image" validate:"omitempty,url"`
}

var Messages = helper.Messages{
	"name.required":     "Name must be at least 2 characters",
	"name.min":          "Name must be at least 2 characters",
	"email.required":    "Invalid email address",
	"email.email":       "Invalid email address",
	"password.required": "Password must be at least 6 characters",
	"password.min":      "Password must be at least 6 characters",
	"role.oneof":        "Role must be one of user, admin, superadmin",
}
