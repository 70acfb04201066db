package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/techchallenge/user-service/internal/core/domain"
	"github.com/techchallenge/user-service/internal/core/ports"
)

func TestValidateLogin(t *testing.T) {
	repo := newStubUserRepo()
	users := newTestUserService(repo)
	created := mustRegister(t, users, janeInput())
	login := NewLoginService(repo, stubHasher{}, zerolog.Nop())

	if err := login.ValidateLogin(context.Background(), "jane1", "secret1"); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}

	wrongPassword := login.ValidateLogin(context.Background(), "jane1", "wrong")
	unknownLogin := login.ValidateLogin(context.Background(), "ghost", "x")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) || !errors.Is(unknownLogin, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v / %v", wrongPassword, unknownLogin)
	}
	if wrongPassword.Error() != unknownLogin.Error() {
		t.Fatalf("failures must be indistinguishable: %q vs %q", wrongPassword, unknownLogin)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if !stored.LastModifiedAt.Equal(created.LastModifiedAt) || repo.updates != 0 {
		t.Fatal("login validation must not mutate the user")
	}
}

func TestValidateLogin_AfterPasswordChange(t *testing.T) {
	repo := newStubUserRepo()
	users := newTestUserService(repo)
	created := mustRegister(t, users, janeInput())
	login := NewLoginService(repo, stubHasher{}, zerolog.Nop())

	if err := users.ChangePassword(context.Background(), created.ID, ports.ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "newpass1"}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if err := login.ValidateLogin(context.Background(), "jane1", "newpass1"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
	if err := login.ValidateLogin(context.Background(), "jane1", "secret1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password accepted: %v", err)
	}
}

func TestValidateLogin_StoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	boom := errors.New("store down")
	repo.findErr = boom
	login := NewLoginService(repo, stubHasher{}, zerolog.Nop())

	if err := login.ValidateLogin(context.Background(), "jane1", "secret1"); !errors.Is(err, boom) {
		t.Fatalf("infrastructure errors must not be masked, got %v", err)
	}
}

type countingHasher struct {
	stubHasher
	verified []string // hashes passed to Verify
}

func (h *countingHasher) Verify(plaintext, hash string) bool {
	h.verified = append(h.verified, hash)
	return h.stubHasher.Verify(plaintext, hash)
}

func TestValidateLogin_UnknownLoginStillCompares(t *testing.T) {
	repo := newStubUserRepo()
	mustRegister(t, newTestUserService(repo), janeInput())
	hasher := &countingHasher{}
	login := NewLoginService(repo, hasher, zerolog.Nop())

	if err := login.ValidateLogin(context.Background(), "ghost", "secret1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := login.ValidateLogin(context.Background(), "jane1", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if len(hasher.verified) != 2 {
		t.Fatalf("both rejections must run one comparison, got %d", len(hasher.verified))
	}
	if hasher.verified[0] == "" || hasher.verified[0] == hasher.verified[1] {
		t.Fatalf("unknown login must compare against the placeholder hash, got %q", hasher.verified)
	}
}
