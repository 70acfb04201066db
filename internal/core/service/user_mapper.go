package service

import (
	"fmt"

	"github.com/techchallenge/user-service/internal/core/domain"
	"github.com/techchallenge/user-service/internal/core/ports"
)

// UserMapper converts between service inputs, domain users and responses.
// It is the only place where a plaintext password turns into a hash.
type UserMapper struct {
	hasher ports.PasswordHasher
}

func NewUserMapper(hasher ports.PasswordHasher) *UserMapper {
	return &UserMapper{hasher: hasher}
}

// ToUser builds a new domain user from a registration. ID and LastModifiedAt
// are left for the store and the directory to fill in.
func (m *UserMapper) ToUser(in ports.RegisterUserInput) (*domain.User, error) {
	userType, err := domain.ParseUserType(in.UserType)
	if err != nil {
		return nil, err
	}

	hash, err := m.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Login:        in.Login,
		PasswordHash: hash,
		Type:         userType,
		Address:      toAddress(in.Address),
	}, nil
}

// ToResponse never copies PasswordHash.
func (m *UserMapper) ToResponse(u *domain.User) *ports.UserResponse {
	if u == nil {
		return nil
	}
	return &ports.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Login:          u.Login,
		UserType:       userTypeTag(u.Type),
		LastModifiedAt: u.LastModifiedAt,
		Address:        toAddressInput(u.Address),
	}
}

func userTypeTag(t domain.UserType) string {
	switch t {
	case domain.UserTypeClient:
		return string(domain.UserTypeClient)
	case domain.UserTypeRestaurantOwner:
		return string(domain.UserTypeRestaurantOwner)
	default:
		return ""
	}
}

func toAddress(a *ports.AddressInput) *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{
		Street:  a.Street,
		Number:  a.Number,
		City:    a.City,
		ZipCode: a.ZipCode,
	}
}

func toAddressInput(a *domain.Address) *ports.AddressInput {
	if a == nil {
		return nil
	}
	return &ports.AddressInput{
		Street:  a.Street,
		Number:  a.Number,
		City:    a.City,
		ZipCode: a.ZipCode,
	}
}
