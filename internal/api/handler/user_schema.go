package handler

import "time"

// --- Request types ---

type addressRequest struct {
	Street  string `json:"street"  validate:"required,notblank"`
	Number  string `json:"number"  validate:"required,notblank"`
	City    string `json:"city"    validate:"required,notblank"`
	ZipCode string `json:"zipCode" validate:"required,notblank"`
}

type registerUserRequest struct {
	Name     string          `json:"name"     validate:"required,notblank"`
	Email    string          `json:"email"    validate:"required,notblank,email"`
	Login    string          `json:"login"    validate:"required,notblank"`
	Password string          `json:"password" validate:"required,notblank,min=6,max=72"`
	UserType string          `json:"userType" validate:"required,oneof=CLIENT RESTAURANT_OWNER"`
	Address  *addressRequest `json:"address"`
}

type updateUserRequest struct {
	Name    string          `json:"name"  validate:"required,notblank"`
	Email   string          `json:"email" validate:"required,notblank,email"`
	Login   string          `json:"login" validate:"required,notblank"`
	Address *addressRequest `json:"address"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,notblank"`
	NewPassword     string `json:"newPassword"     validate:"required,notblank,min=6,max=72"`
}

type loginRequest struct {
	Login    string `json:"login"    validate:"required,notblank"`
	Password string `json:"password" validate:"required,notblank"`
}

// --- Response types ---
// Kept apart from ports types so the JSON contract does not follow service changes.

type addressResponse struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type userResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Login          string           `json:"login"`
	UserType       string           `json:"userType"`
	LastModifiedAt time.Time        `json:"lastModifiedAt"`
	Address        *addressResponse `json:"address"`
}

type loginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
