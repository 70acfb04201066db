package ports

import (
	"context"

	"github.com/techchallenge/user-service/internal/core/domain"
)

// UserRepository is the persistence boundary for user records. Implementations
// own email uniqueness: Insert and Update return domain.ErrEmailAlreadyExists
// when another record already holds the email, whatever the caller checked before.
type UserRepository interface {
	// Insert assigns an ID to user, persists it and returns the ID.
	Insert(ctx context.Context, user *domain.User) (string, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	// SearchByName returns users whose name contains fragment, ignoring case.
	SearchByName(ctx context.Context, fragment string) ([]*domain.User, error)
	// Update replaces the stored record with the same ID.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}
