package provider

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/experiments/feature"
)

// RedisConfig describes the connection to a Redis-backed definition store.
// Fields can be populated from environment variables via
// github.com/caarlos0/env.
type RedisConfig struct {
	ConnectionURL  string        `env:"EXPERIMENTS_REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL should be in the format "redis://:password@localhost:6379/0".
	Key            string        `env:"EXPERIMENTS_REDIS_KEY" envDefault:"experiments:features"`     // Key is the hash holding one definition document per feature.
	ConnectTimeout time.Duration `env:"EXPERIMENTS_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // ConnectTimeout bounds the whole connection attempt.
	RetryAttempts  uint64        `env:"EXPERIMENTS_REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts is the number of ping retries while connecting.
	RetryInterval  time.Duration `env:"EXPERIMENTS_REDIS_RETRY_INTERVAL" envDefault:"5s"`            // RetryInterval is the constant backoff between ping retries.
}

// LoadRedisConfig parses RedisConfig from environment variables.
func LoadRedisConfig() (RedisConfig, error) {
	var cfg RedisConfig
	if err := env.Parse(&cfg); err != nil {
		return RedisConfig{}, err
	}
	return cfg, nil
}

// ConnectRedis establishes a Redis connection with retrying pings, bounded
// by the configured connect timeout.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	client := redis.NewClient(opts)
	backoff := retry.WithMaxRetries(cfg.RetryAttempts, retry.NewConstant(cfg.RetryInterval))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisNotReady, err)
	}
	return client, nil
}

// Redis loads feature definitions from a Redis hash: one field per feature,
// each value a YAML or JSON definition document. A field that fails to
// decode is skipped so one bad definition cannot take down the rest. Wrap
// with Cached to avoid a round trip per evaluation.
type Redis struct {
	name   string
	client *redis.Client
	key    string
	log    *slog.Logger
}

// RedisOption configures a Redis provider.
type RedisOption func(*Redis)

// WithRedisKey overrides the hash key holding the definitions.
func WithRedisKey(key string) RedisOption {
	return func(r *Redis) {
		if key != "" {
			r.key = key
		}
	}
}

// WithRedisLogger sets the logger for decode diagnostics.
func WithRedisLogger(log *slog.Logger) RedisOption {
	return func(r *Redis) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRedis creates a provider reading definitions from the given client.
func NewRedis(name string, client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{
		name:   name,
		client: client,
		key:    "experiments:features",
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements feature.Provider.
func (r *Redis) Name() string { return r.name }

// GetFeatures implements feature.Provider.
func (r *Redis) GetFeatures(ctx context.Context) ([]feature.Feature, error) {
	docs, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, errors.Join(ErrReadDefinitions, err)
	}

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	features := make([]feature.Feature, 0, len(docs))
	for _, name := range names {
		var def Definition
		if err := yaml.Unmarshal([]byte(docs[name]), &def); err != nil {
			r.log.Warn("skipping malformed feature definition",
				slog.String("provider", r.name),
				slog.String("feature", name),
				slog.Any("error", err))
			continue
		}
		features = append(features, decodeFeature(r.name, name, def, r.log))
	}
	return features, nil
}
