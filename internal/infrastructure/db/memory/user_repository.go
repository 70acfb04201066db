// Package memory implements the user store in process memory. A single
// RWMutex serializes writes, so the email index is checked and updated
// atomically with the record itself.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/techchallenge/user-service/internal/core/domain"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]string // email -> id
	order   []string          // insertion order, for deterministic search results
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Insert(_ context.Context, user *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return "", domain.ErrEmailAlreadyExists
	}

	stored := user.Clone()
	stored.ID = uuid.NewString()
	r.byID[stored.ID] = stored
	r.byEmail[stored.Email] = stored.ID
	r.order = append(r.order, stored.ID)
	return stored.ID, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return r.byID[id].Clone(), nil
}

// FindByLogin returns the earliest registered user with login; logins are
// not unique.
func (r *UserRepository) FindByLogin(_ context.Context, login string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.byID[id]; u.Login == login {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) SearchByName(_ context.Context, fragment string) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(fragment)
	out := make([]*domain.User, 0)
	for _, id := range r.order {
		u := r.byID[id]
		if strings.Contains(strings.ToLower(u.Name), needle) {
			out = append(out, u.Clone())
		}
	}
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if owner, taken := r.byEmail[user.Email]; taken && owner != user.ID {
		return domain.ErrEmailAlreadyExists
	}

	delete(r.byEmail, current.Email)
	r.byEmail[user.Email] = user.ID
	r.byID[user.ID] = user.Clone()
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}

	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *UserRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}
