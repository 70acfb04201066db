package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/techchallenge/user-service/internal/core/domain"
	"github.com/techchallenge/user-service/internal/core/ports"
	"github.com/techchallenge/user-service/internal/pkg/metrics"
)

// LoginService validates login/password pairs. It has no side effects on
// users and issues no session or token.
type LoginService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger

	// dummyHash is verified against when the login is unknown so both
	// rejection paths cost one hash comparison.
	dummyHash string
}

func NewLoginService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *LoginService {
	dummy, err := hasher.Hash("unknown-login-placeholder")
	if err != nil {
		logger.Warn().Err(err).Msg("dummy hash unavailable; unknown logins are rejected without a comparison")
	}
	return &LoginService{repo: repo, hasher: hasher, logger: logger, dummyHash: dummy}
}

// ValidateLogin returns domain.ErrInvalidCredentials both for an unknown login
// and for a wrong password so callers cannot tell which one failed.
func (s *LoginService) ValidateLogin(ctx context.Context, login, password string) error {
	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return s.reject(login)
		}
		return err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return s.reject(login)
	}

	metrics.LoginValidationsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return nil
}

func (s *LoginService) reject(login string) error {
	metrics.LoginValidationsTotal.WithLabelValues(metrics.ResultFailure).Inc()
	s.logger.Debug().Str("login", login).Msg("login rejected")
	return domain.ErrInvalidCredentials
}
