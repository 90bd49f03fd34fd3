// Package cache keeps profiles in redis for identity resolution.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// ErrMiss is returned when the key is absent or expired. It wraps
// domain.ErrNotFound.
var ErrMiss = fmt.Errorf("cache miss: %w", domain.ErrNotFound)

// NewClient creates a redis client from config.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// ProfileCache stores profiles as JSON under "<prefix>profile:<id>".
type ProfileCache struct {
	c      *redis.Client
	prefix string
	ttl    time.Duration
}

// NewProfileCache creates a cache over c.
func NewProfileCache(c *redis.Client, prefix string, ttl time.Duration) *ProfileCache {
	return &ProfileCache{c: c, prefix: prefix, ttl: ttl}
}

type cachedProfile struct {
	ID        uuid.UUID            `json:"id"`
	Email     string               `json:"email"`
	FullName  *string              `json:"full_name,omitempty"`
	AvatarURL *string              `json:"avatar_url,omitempty"`
	Status    domain.ProfileStatus `json:"status"`
	Role      domain.Role          `json:"role"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func (c *ProfileCache) key(id uuid.UUID) string {
	return c.prefix + "profile:" + id.String()
}

// Get returns the cached profile or ErrMiss.
func (c *ProfileCache) Get(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	val, err := c.c.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Profile{}, ErrMiss
		}
		return domain.Profile{}, fmt.Errorf("redis get profile: %w", err)
	}

	var cp cachedProfile
	if err := json.Unmarshal(val, &cp); err != nil {
		return domain.Profile{}, fmt.Errorf("decode cached profile: %w", err)
	}
	return domain.Profile(cp), nil
}

// Set stores p for the configured TTL.
func (c *ProfileCache) Set(ctx context.Context, p domain.Profile) error {
	data, err := json.Marshal(cachedProfile(p))
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := c.c.Set(ctx, c.key(p.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set profile: %w", err)
	}
	return nil
}

// Invalidate drops the cached profile. Missing keys are not an error.
func (c *ProfileCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.c.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("redis del profile: %w", err)
	}
	return nil
}

// Ping checks the connection.
func (c *ProfileCache) Ping(ctx context.Context) error {
	return c.c.Ping(ctx).Err()
}

// Disabled stands in when no redis address is configured. Every read misses.
type Disabled struct{}

// Get always returns ErrMiss.
func (Disabled) Get(context.Context, uuid.UUID) (domain.Profile, error) {
	return domain.Profile{}, ErrMiss
}

// Set is a no-op.
func (Disabled) Set(context.Context, domain.Profile) error { return nil }

// Invalidate is a no-op.
func (Disabled) Invalidate(context.Context, uuid.UUID) error { return nil }
