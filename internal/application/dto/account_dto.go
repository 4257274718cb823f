package dto

import "time"

// SignUpRequest entrada para registro (password en texto, se hashea en use case).
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUser identidad de sesión que viaja en las respuestas de auth.
type SessionUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// AuthResponse salida de signup/login: token de sesión + identidad.
type AuthResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// ProfileResponse salida del documento de perfil.
type ProfileResponse struct {
	UID            string    `json:"uid"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	EducationLevel string    `json:"education_level"`
	Bio            string    `json:"bio"`
	ProfileImage   string    `json:"profile_image"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateProfileRequest merge parcial del perfil: campos ausentes no se tocan.
type UpdateProfileRequest struct {
	FullName       *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	EducationLevel *string `json:"education_level" validate:"omitempty,max=100"`
	Bio            *string `json:"bio" validate:"omitempty,max=500"`
	ProfileImage   *string `json:"profile_image" validate:"omitempty,max=500"`
}
