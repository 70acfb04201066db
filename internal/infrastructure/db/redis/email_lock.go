package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/techchallenge/user-service/internal/core/domain"
)

const (
	defaultLockTTL = 10 * time.Second
	releaseTimeout = 2 * time.Second
)

// releaseScript deletes the key only while it still carries our token, so an
// expired lock taken over by another request is never removed by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// EmailLock reserves an email across service instances.
// Key format: user:email-lock:<lowercased email>
type EmailLock struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewEmailLock(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *EmailLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &EmailLock{client: client, ttl: ttl, logger: logger}
}

// Acquire takes the lock for email or fails with domain.ErrEmailAlreadyExists
// when another request already holds it. The returned release is safe to call
// more than once.
func (l *EmailLock) Acquire(ctx context.Context, email string) (func(), error) {
	key := l.key(email)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("email lock: %w", err)
	}
	if !ok {
		return nil, domain.ErrEmailAlreadyExists
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true

		relCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := releaseScript.Run(relCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warn().Err(err).Str("key", key).Msg("email lock release failed; it will expire")
		}
	}, nil
}

func (l *EmailLock) key(email string) string {
	return "user:email-lock:" + strings.ToLower(email)
}
