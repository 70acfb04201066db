package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/techchallenge/user-service/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu     sync.Mutex
	byID   map[string]*domain.User
	order  []string
	nextID int

	insertErr error // if set, Insert returns this error
	findErr   error // if set, every Find* returns this error
	updates   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.insertErr != nil {
		return "", r.insertErr
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return "", domain.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	id := fmt.Sprintf("u-%d", r.nextID)
	c := u.Clone()
	c.ID = id
	r.byID[id] = c
	r.order = append(r.order, id)
	return id, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.findFirst(func(u *domain.User) bool { return u.Email == email })
}

func (r *stubUserRepo) FindByLogin(_ context.Context, login string) (*domain.User, error) {
	return r.findFirst(func(u *domain.User) bool { return u.Login == login })
}

func (r *stubUserRepo) findFirst(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, id := range r.order {
		if u := r.byID[id]; match(u) {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) SearchByName(_ context.Context, fragment string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.User, 0)
	for _, id := range r.order {
		u := r.byID[id]
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(fragment)) {
			out = append(out, u.Clone())
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, existing := range r.byID {
		if id != u.ID && existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.byID[u.ID] = u.Clone()
	r.updates++
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubUserRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	return ok, nil
}

func (r *stubUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// ---------------------------------------------------------------------------
// Stub hasher: reversible, so tests can assert on stored hashes
// ---------------------------------------------------------------------------

type stubHasher struct {
	hashErr error
}

func (h stubHasher) Hash(plaintext string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	if plaintext == "" {
		return "", errors.New("empty password")
	}
	return "hashed:" + plaintext, nil
}

func (h stubHasher) Verify(plaintext, hash string) bool {
	return hash == "hashed:"+plaintext
}

// ---------------------------------------------------------------------------
// Stub email locker
// ---------------------------------------------------------------------------

type stubLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	acquired []string
	released []string
}

func newStubLocker() *stubLocker {
	return &stubLocker{held: make(map[string]bool)}
}

func (l *stubLocker) Acquire(_ context.Context, email string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held[email] {
		return nil, domain.ErrEmailAlreadyExists
	}
	l.held[email] = true
	l.acquired = append(l.acquired, email)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, email)
		l.released = append(l.released, email)
	}, nil
}
