package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/techchallenge/user-service/internal/core/domain"
	"github.com/techchallenge/user-service/internal/core/ports"
	"github.com/techchallenge/user-service/internal/pkg/metrics"
)

// UserService orchestrates the user lifecycle on top of the repository.
type UserService struct {
	repo   ports.UserRepository
	mapper *UserMapper
	hasher ports.PasswordHasher
	locker ports.EmailLocker
	now    func() time.Time
	logger zerolog.Logger
}

// Option customises a UserService.
type Option func(*UserService)

// WithEmailLocker serializes writes on the same email across instances.
func WithEmailLocker(l ports.EmailLocker) Option {
	return func(s *UserService) { s.locker = l }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *UserService) { s.now = now }
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger, opts ...Option) *UserService {
	s := &UserService{
		repo:   repo,
		mapper: NewUserMapper(hasher),
		hasher: hasher,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user after checking that the email is free. The store's
// own uniqueness guard still decides races the pre-check cannot see.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*ports.UserResponse, error) {
	release, err := s.acquireEmail(ctx, input.Email)
	if err != nil {
		return nil, s.conflict(err, "register")
	}
	defer release()

	if err := s.ensureEmailFree(ctx, input.Email, ""); err != nil {
		return nil, s.conflict(err, "register")
	}

	user, err := s.mapper.ToUser(input)
	if err != nil {
		return nil, err
	}
	user.LastModifiedAt = s.stamp(time.Time{})

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, s.conflict(err, "register")
	}
	user.ID = id

	metrics.UsersRegisteredTotal.WithLabelValues(string(user.Type)).Inc()
	s.logger.Info().Str("user_id", id).Str("user_type", string(user.Type)).Msg("user registered")

	return s.mapper.ToResponse(user), nil
}

// FindByName returns every user whose name contains fragment, ignoring case.
// An empty fragment matches everyone.
func (s *UserService) FindByName(ctx context.Context, fragment string) ([]ports.UserResponse, error) {
	users, err := s.repo.SearchByName(ctx, fragment)
	if err != nil {
		return nil, err
	}

	out := make([]ports.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *s.mapper.ToResponse(u))
	}
	return out, nil
}

// UpdateProfile overwrites name, email, login and address. Password hash and
// user type are carried over untouched.
func (s *UserService) UpdateProfile(ctx context.Context, id string, input ports.UpdateUserInput) (*ports.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != user.Email {
		release, err := s.acquireEmail(ctx, input.Email)
		if err != nil {
			return nil, s.conflict(err, "update")
		}
		defer release()

		if err := s.ensureEmailFree(ctx, input.Email, user.ID); err != nil {
			return nil, s.conflict(err, "update")
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Login = input.Login
	user.Address = toAddress(input.Address)
	user.LastModifiedAt = s.stamp(user.LastModifiedAt)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, s.conflict(err, "update")
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user profile updated")
	return s.mapper.ToResponse(user), nil
}

// ChangePassword replaces the hash only when the current password verifies.
func (s *UserService) ChangePassword(ctx context.Context, id string, input ports.ChangePasswordInput) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
		metrics.PasswordChangesTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return domain.ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.LastModifiedAt = s.stamp(user.LastModifiedAt)

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	metrics.PasswordChangesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}

// Delete removes the user permanently.
func (s *UserService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// ensureEmailFree fails with ErrEmailAlreadyExists when a user other than
// ownerID already holds email.
func (s *UserService) ensureEmailFree(ctx context.Context, email, ownerID string) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != ownerID:
		return domain.ErrEmailAlreadyExists
	default:
		return nil
	}
}

func (s *UserService) acquireEmail(ctx context.Context, email string) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}
	return s.locker.Acquire(ctx, email)
}

// conflict records email conflicts in metrics and passes err through unchanged.
func (s *UserService) conflict(err error, operation string) error {
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		metrics.EmailConflictsTotal.WithLabelValues(operation).Inc()
		s.logger.Debug().Str("operation", operation).Msg("email already registered")
	}
	return err
}

// stamp returns a modification time strictly after prev. Millisecond
// precision matches what the Mongo store can round-trip.
func (s *UserService) stamp(prev time.Time) time.Time {
	now := s.now().UTC().Truncate(time.Millisecond)
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	return now
}
