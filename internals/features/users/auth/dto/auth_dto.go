package dto

import (
	profileDTO "altroway_backend/internals/features/users/profiles/dto"
)

// SignUpRequest: {email, password, ...profile fields}.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
	profileDTO.ProfileFields
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
