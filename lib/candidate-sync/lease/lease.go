package synclease

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Аренда на время синхронизации отклика: не более одной одновременной
// синхронизации на отклик. TTL страхует от зависшего держателя.

const (
	keyPrefix  = "ats-sync:lease:"
	DefaultTTL = 10 * time.Minute
)

type Provider interface {
	Acquire(ctx context.Context, applicationID string) (bool, error)
	Release(ctx context.Context, applicationID string) error
}

var Instance Provider

func NewInstance(rdb *redis.Client) {
	Instance = &impl{
		rdb: rdb,
		ttl: DefaultTTL,
	}
}

type impl struct {
	rdb *redis.Client
	ttl time.Duration
}

func (i impl) Acquire(ctx context.Context, applicationID string) (bool, error) {
	set, err := i.rdb.SetNX(ctx, keyPrefix+applicationID, 1, i.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "ошибка получения аренды синхронизации")
	}
	return set, nil
}

func (i impl) Release(ctx context.Context, applicationID string) error {
	err := i.rdb.Del(ctx, keyPrefix+applicationID).Err()
	if err != nil {
		return errors.Wrap(err, "ошибка освобождения аренды синхронизации")
	}
	return nil
}
