package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "user logged in successfully"
	MessageSuccessGetUser  = "user retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetUser  = "failed to retrieve user"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
)

type (
	RegisterRequest struct {
		Name               string    `json:"name" validate:"required,min=2"`
		Email              string    `json:"email" validate:"required,email"`
		Password           string    `json:"password" validate:"required,min=8"`
		Role               string    `json:"role" validate:"required,oneof=donor volunteer ngo"`
		Phone              string    `json:"phone" validate:"omitempty"`
		Location           *Location `json:"location" validate:"omitempty"`
		OrganizationName   string    `json:"organization_name" validate:"required_if=Role ngo"`
		RegistrationNumber string    `json:"registration_number" validate:"omitempty"`
		VehicleType        string    `json:"vehicle_type" validate:"omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		Phone     string    `json:"phone,omitempty"`
		Location  *Location `json:"location,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
