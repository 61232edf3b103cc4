package security

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix    = "acquisitions:ratelimit:"
	redisLimitTimeout = 250 * time.Millisecond
)

// RedisLimiter shares the sliding window across replicas with one sorted set per key.
// Members are unique per hit and scored by their unix-millisecond timestamp.
// Redis failures are logged and the request is allowed.
type RedisLimiter struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
	now     func() time.Time
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{
		client:  client,
		prefix:  redisKeyPrefix,
		timeout: redisLimitTimeout,
		now:     time.Now,
	}
}

// DialRedis connects and pings within 2s.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 {
		return true, nil
	}
	if window <= 0 {
		window = time.Minute
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	now := l.now().UnixMilli()
	redisKey := l.prefix + key
	member := uuid.NewString()

	var card *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, redisKey, "-inf", strconv.FormatInt(now-window.Milliseconds(), 10))
		pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now), Member: member})
		card = pipe.ZCard(ctx, redisKey)
		pipe.PExpire(ctx, redisKey, window)
		return nil
	})
	if err != nil {
		slog.Error("[Security] Redis limiter error, allowing request", "op", "pipeline", "error", err)
		return true, nil
	}

	if card.Val() <= int64(limit) {
		return true, nil
	}

	// Denied hits do not occupy the window.
	if err := l.client.ZRem(ctx, redisKey, member).Err(); err != nil {
		slog.Warn("[Security] Redis limiter cleanup failed", "op", "zrem", "error", err)
	}
	return false, nil
}

func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
