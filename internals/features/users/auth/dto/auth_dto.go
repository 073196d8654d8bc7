package dto

import (
	"time"

	userModel "ucentric_backend/internals/features/users/users/model"
	helper "ucentric_backend/internals/helpers"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresAt   time.Time            `json:"expires_at"`
	User        *userModel.UserModel `json:"user"`
}

var Messages = helper.Messages{
	"email.required":    "Email is required",
	"email.email":       "Invalid email address",
	"password.required": "Password is required",
}
