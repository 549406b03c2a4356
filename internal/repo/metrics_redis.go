package repo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	providerSetKey     = "catalog:providers"
	providerStatPrefix = "catalog:provider:"
)

// RedisMetricsRepository keeps provider counters in Redis so several instances share them.
type RedisMetricsRepository struct {
	rdb *redis.Client
}

func NewRedisMetricsRepository(rdb *redis.Client) *RedisMetricsRepository {
	return &RedisMetricsRepository{rdb: rdb}
}

// Record implements MetricsRepository.
func (r *RedisMetricsRepository) Record(ctx context.Context, provider string, outcome Outcome, cause error) error {
	key := providerStatPrefix + provider

	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, providerSetKey, provider)
		switch outcome {
		case OutcomeOK:
			pipe.HIncrBy(ctx, key, "ok", 1)
		case OutcomeMiss:
			pipe.HIncrBy(ctx, key, "misses", 1)
		case OutcomeFailure:
			pipe.HIncrBy(ctx, key, "failures", 1)
			if cause != nil {
				pipe.HSet(ctx, key, "last_error", cause.Error())
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record provider outcome: %w", err)
	}
	return nil
}

// ProviderStats implements MetricsRepository.
func (r *RedisMetricsRepository) ProviderStats(ctx context.Context) ([]ProviderStats, error) {
	names, err := r.rdb.SMembers(ctx, providerSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	out := make([]ProviderStats, 0, len(names))
	for _, name := range names {
		fields, err := r.rdb.HGetAll(ctx, providerStatPrefix+name).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read stats for %s: %w", name, err)
		}
		out = append(out, ProviderStats{
			Provider:  name,
			OK:        parseCounter(fields["ok"]),
			Misses:    parseCounter(fields["misses"]),
			Failures:  parseCounter(fields["failures"]),
			LastError: fields["last_error"],
		})
	}
	sortStats(out)
	return out, nil
}

func parseCounter(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
