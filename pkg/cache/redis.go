package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Lookup outcomes reported to a LookupRecorder.
const (
	LookupHit   = "hit"
	LookupMiss  = "miss"
	LookupError = "error"
)

// LookupRecorder receives the outcome of every Get.
type LookupRecorder interface {
	CacheLookup(result string)
}

type Cache struct {
	client   *redis.Client
	prefix   string
	recorder LookupRecorder
}

type Options struct {
	Address  string
	Password string
	DB       int
	Prefix   string
	Recorder LookupRecorder
}

type Option func(*Options)

func WithAddress(addr string) Option {
	return func(o *Options) {
		o.Address = addr
	}
}

func WithPassword(pass string) Option {
	return func(o *Options) {
		o.Password = pass
	}
}

func WithDB(db int) Option {
	return func(o *Options) {
		o.DB = db
	}
}

// WithPrefix namespaces every key, so several deployments can share one redis.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

func WithRecorder(r LookupRecorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

func New(ctx context.Context, opts ...Option) (*Cache, error) {
	options := &Options{
		Address: "localhost:6379",
		Prefix:  "meca:",
	}

	for _, opt := range opts {
		opt(options)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     options.Address,
		Password: options.Password,
		DB:       options.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", options.Address, err)
	}

	return &Cache{client: client, prefix: options.Prefix, recorder: options.Recorder}, nil
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

func (c *Cache) record(result string) {
	if c.recorder != nil {
		c.recorder.CacheLookup(result)
	}
}

// Get decodes the JSON value stored under key into dest. A missing key
// returns redis.Nil.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		c.record(LookupMiss)
		return err
	case err != nil:
		c.record(LookupError)
		return err
	}

	if err := json.Unmarshal(val, dest); err != nil {
		c.record(LookupError)
		return fmt.Errorf("decode cached %q: %w", key, err)
	}
	c.record(LookupHit)
	return nil
}

func (c *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return c.client.Set(ctx, c.key(key), data, expiration).Err()
}

// Delete removes keys; missing keys are ignored.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	return c.client.Del(ctx, full...).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
