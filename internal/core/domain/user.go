package domain

import (
	"errors"
	"time"
)

// UserType is the closed set of user kinds stored in the single users collection.
type UserType string

const (
	UserTypeClient          UserType = "CLIENT"
	UserTypeRestaurantOwner UserType = "RESTAURANT_OWNER"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidPassword    = errors.New("current password is incorrect")
	ErrInvalidUserType    = errors.New("invalid user type")
)

// ParseUserType resolves an external kind tag into a UserType.
func ParseUserType(s string) (UserType, error) {
	switch UserType(s) {
	case UserTypeClient:
		return UserTypeClient, nil
	case UserTypeRestaurantOwner:
		return UserTypeRestaurantOwner, nil
	default:
		return "", ErrInvalidUserType
	}
}

// Address is embedded in the user record. A user either has all four
// fields or no address at all.
type Address struct {
	Street  string `bson:"street"`
	Number  string `bson:"number"`
	City    string `bson:"city"`
	ZipCode string `bson:"zip_code"`
}

// User is the persisted identity of a client or restaurant owner.
// PasswordHash never leaves the core; responses are built by the mapper.
type User struct {
	ID             string
	Name           string
	Email          string
	Login          string
	PasswordHash   string
	Type           UserType
	Address        *Address
	LastModifiedAt time.Time
}

// Clone returns a deep copy so stores never share mutable state with callers.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Address != nil {
		addr := *u.Address
		c.Address = &addr
	}
	return &c
}
