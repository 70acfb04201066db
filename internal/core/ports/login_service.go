package ports

import "context"

// LoginService checks credentials without creating any session state.
type LoginService interface {
	ValidateLogin(ctx context.Context, login, password string) error
}
