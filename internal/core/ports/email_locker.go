package ports

import "context"

// EmailLocker reserves an email address for the duration of a registration or
// profile update so that instances sharing a store serialize on the same email.
// Acquire returns domain.ErrEmailAlreadyExists when another request holds it.
type EmailLocker interface {
	Acquire(ctx context.Context, email string) (release func(), err error)
}
