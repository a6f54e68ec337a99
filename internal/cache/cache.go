// Package cache holds read-through caching for catalog lookups. The store
// stays authoritative; a cache failure only costs a query.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
)

type Cache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// DeletePrefix drops every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// Nop never stores anything. It is used when no cache is configured.
type Nop struct{}

func (Nop) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (Nop) Set(context.Context, string, string) error         { return nil }
func (Nop) DeletePrefix(context.Context, string) error        { return nil }

// Remember returns the cached JSON value of key, or calls load and caches
// its result. Cache errors are logged and treated as misses.
func Remember[T any](ctx context.Context, c Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if raw, ok, err := c.Get(ctx, key); err != nil {
		slog.Warn("cache get failed", "key", key, "error", err)
	} else if ok {
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return v, nil
		}
		slog.Warn("cache entry undecodable", "key", key)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if b, err := json.Marshal(v); err == nil {
		if err := c.Set(ctx, key, string(b)); err != nil {
			slog.Warn("cache set failed", "key", key, "error", err)
		}
	}
	return v, nil
}

// Invalidate drops prefix, logging instead of failing.
func Invalidate(ctx context.Context, c Cache, prefix string) {
	if err := c.DeletePrefix(ctx, prefix); err != nil {
		slog.Warn("cache invalidate failed", "prefix", prefix, "error", err)
	}
}
