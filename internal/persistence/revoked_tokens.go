package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked_token:"

// RevokedTokens keeps logged-out tokens in Redis for the remainder of their
// lifetime. Redis being unavailable degrades to the stateless JWT behavior
// of the original system: the cookie is cleared, the token stays verifiable.
type RevokedTokens struct {
	client *redis.Client
}

// NewRevokedTokens wraps the Redis handle. A nil client is accepted and
// turns every operation into a no-op.
func NewRevokedTokens(client *redis.Client) *RevokedTokens {
	return &RevokedTokens{client: client}
}

// Revoke marks the token as invalid until it would have expired anyway.
func (r *RevokedTokens) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if r == nil || r.client == nil || ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err()
}

// IsRevoked reports whether the token was logged out. Lookup failures count
// as not revoked.
func (r *RevokedTokens) IsRevoked(ctx context.Context, token string) bool {
	if r == nil || r.client == nil {
		return false
	}
	exists, err := r.client.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false
	}
	return exists > 0
}
