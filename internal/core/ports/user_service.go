package ports

import (
	"context"
	"time"
)

// AddressInput holds a physical address. A nil *AddressInput means "no address".
type AddressInput struct {
	Street  string
	Number  string
	City    string
	ZipCode string
}

// RegisterUserInput carries everything needed to create a user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Login    string
	Password string
	UserType string
	Address  *AddressInput
}

// UpdateUserInput carries the profile fields. Password and user type are
// deliberately absent; they are never changed through this path.
type UpdateUserInput struct {
	Name    string
	Email   string
	Login   string
	Address *AddressInput
}

// ChangePasswordInput requires proof of the current password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// UserResponse is the outward view of a user. It has no password field.
type UserResponse struct {
	ID             string
	Name           string
	Email          string
	Login          string
	UserType       string
	LastModifiedAt time.Time
	Address        *AddressInput
}

// UserService defines the user lifecycle use cases.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*UserResponse, error)
	FindByName(ctx context.Context, fragment string) ([]UserResponse, error)
	UpdateProfile(ctx context.Context, id string, input UpdateUserInput) (*UserResponse, error)
	ChangePassword(ctx context.Context, id string, input ChangePasswordInput) error
	Delete(ctx context.Context, id string) error
}
