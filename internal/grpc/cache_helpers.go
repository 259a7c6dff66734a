package grpc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

const (
	defaultFetchTimeout = 15 * time.Second
	defaultSetTimeout   = 5 * time.Second

	refreshSuffix = ":refresh"
)

// FlightGroup deduplicates fetches per key and keeps a generation per key.
// Invalidate bumps the generation, and a background write is dropped when
// the generation it started under is no longer current. The zero value is
// ready to use.
type FlightGroup struct {
	singleflight.Group

	mu   sync.RWMutex
	gens map[string]uint64
}

func (g *FlightGroup) generation(key string) uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.gens[key]
}

// setIfCurrent holds the read lock across the write so an Invalidate waits
// for it and its Delete runs afterwards.
func (g *FlightGroup) setIfCurrent(ctx context.Context, c Cacher, key string, gen uint64, value any, ttl time.Duration) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.gens[key] != gen {
		return false, nil
	}
	return true, c.Set(ctx, key, value, ttl)
}

func (g *FlightGroup) bump(keys ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gens == nil {
		g.gens = make(map[string]uint64)
	}
	for _, k := range keys {
		g.gens[k]++
		g.Forget(k)
		g.Forget(k + refreshSuffix)
	}
}

// addTTLJitter spreads expirations by up to 15s either way.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	jitter := time.Duration(rand.Intn(30)-15) * time.Second
	if ttl+jitter <= 0 {
		return ttl
	}
	return ttl + jitter
}

func triggerBackgroundRefresh[T any](
	c Cacher,
	sf *FlightGroup,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) {
	go func() {
		time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)

		_, _, _ = sf.Do(key+refreshSuffix, func() (any, error) {
			gen := sf.generation(key)

			ctx, cancel := context.WithTimeout(context.Background(), defaultFetchTimeout)
			defer cancel()

			value, err := fn(ctx)
			if err != nil {
				logger.Warn("background refresh failed",
					zap.String("key", key),
					zap.Error(err))
				return nil, err
			}

			setCtx, cancelSet := context.WithTimeout(context.Background(), defaultSetTimeout)
			defer cancelSet()

			ttlWithJitter := addTTLJitter(ttl)
			stored, err := sf.setIfCurrent(setCtx, c, key, gen, value, ttlWithJitter)
			switch {
			case err != nil:
				logger.Warn("failed to update cache in background",
					zap.String("key", key),
					zap.Error(err))
			case !stored:
				logger.Debug("background refresh dropped after invalidation", zap.String("key", key))
			default:
				logger.Debug("cache refreshed in background",
					zap.String("key", key),
					zap.Duration("ttl", ttlWithJitter))
			}

			return value, nil
		})
	}()
}

func fetchAndCacheInBackground[T any](
	ctx context.Context,
	c Cacher,
	sf *FlightGroup,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T

	gen := sf.generation(key)
	value, err := fn(ctx)
	if err != nil {
		logger.Debug("fetch failed", zap.String("key", key), zap.Error(err))
		return zero, err
	}

	go func(v T) {
		setCtx, cancel := context.WithTimeout(context.Background(), defaultSetTimeout)
		defer cancel()

		ttlWithJitter := addTTLJitter(ttl)
		stored, err := sf.setIfCurrent(setCtx, c, key, gen, v, ttlWithJitter)
		switch {
		case err != nil:
			logger.Warn("failed to set cache on miss", zap.String("key", key), zap.Error(err))
		case !stored:
			logger.Debug("miss result dropped after invalidation", zap.String("key", key))
		default:
			logger.Debug("cache populated on miss", zap.String("key", key))
		}
	}(value)

	return value, nil
}

// FindAndCache implements read-through caching with singleflight and refresh-ahead logic.
// Failed fetches are never cached.
func FindAndCache[T any](
	ctx context.Context,
	c Cacher,
	sf *FlightGroup,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T
	if logger == nil {
		logger = zap.NewNop()
	}

	var cached T
	err := c.Get(ctx, key, &cached)
	switch {
	case err == nil:
		logger.Debug("cache hit", zap.String("key", key))
		triggerBackgroundRefresh(c, sf, key, ttl, logger, fn)
		return cached, nil

	case errors.Is(err, redis.Nil):
		logger.Debug("cache miss", zap.String("key", key))

	default:
		logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	v, err, shared := sf.Do(key, func() (any, error) {
		return fetchAndCacheInBackground(ctx, c, sf, key, ttl, logger, fn)
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if shared {
		logger.Debug("singleflight shared result", zap.String("key", key))
	}

	return value, nil
}

// Invalidate drops keys from the cache and forgets any in-flight fetch for
// them, so the next read goes to storage. Fetches already running when it is
// called never write their result back.
func Invalidate(ctx context.Context, c Cacher, sf *FlightGroup, logger *zap.Logger, keys ...string) {
	sf.bump(keys...)

	delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultSetTimeout)
	defer cancel()

	if err := c.Delete(delCtx, keys...); err != nil {
		logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
		return
	}
	logger.Debug("cache invalidated", zap.Strings("keys", keys))
}
