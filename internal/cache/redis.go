package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/dshills/primes/internal/filter"
)

// DefaultRedisKey is the sorted set used when no key is configured.
const DefaultRedisKey = "primes:cache"

const (
	redisConnectRetries = 3
	redisRetryBase      = 200 * time.Millisecond
)

// RedisStore keeps the primes in a Redis sorted set scored by value.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore wraps an existing client. If key is empty, DefaultRedisKey
// is used.
func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// DialRedis connects to addr and verifies the connection, retrying with
// backoff before giving up.
func DialRedis(ctx context.Context, addr, password string, db int, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	err := retryWithBackoff(ctx, redisConnectRetries, redisRetryBase, func() error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return NewRedisStore(client, key), nil
}

// Location returns the redis key.
func (s *RedisStore) Location() string {
	return "redis:" + s.key
}

// Load reads every member of the sorted set. A missing key yields an empty
// result.
func (s *RedisStore) Load(ctx context.Context) ([]uint64, error) {
	members, err := s.client.ZRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, &InitializationError{Location: s.Location(), Err: err}
	}
	primes := make([]uint64, 0, len(members))
	for _, m := range members {
		v, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			return nil, &InitializationError{Location: s.Location(), Err: fmt.Errorf("member %q: %w", m, err)}
		}
		if !filter.PossiblyPrime(v) {
			return nil, &InitializationError{Location: s.Location(), Err: fmt.Errorf("member %d is not prime", v)}
		}
		primes = append(primes, v)
	}
	return primes, nil
}

// Save replaces the sorted set in a single MULTI/EXEC transaction.
func (s *RedisStore) Save(ctx context.Context, primes []uint64) error {
	members := make([]redis.Z, len(primes))
	for i, p := range primes {
		members[i] = redis.Z{Score: float64(p), Member: strconv.FormatUint(p, 10)}
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(members) > 0 {
			pipe.ZAdd(ctx, s.key, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("writing redis key %s: %w", s.key, err)
	}
	logrus.WithFields(logrus.Fields{"store": s.Location(), "primes": len(primes)}).Debug("redis cache written")
	return nil
}

// Clear deletes the sorted set.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("deleting redis key %s: %w", s.key, err)
	}
	return nil
}

// Close releases the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
