package initializers

import (
	"context"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"ats-sync-backend/config"
	synclease "ats-sync-backend/lib/candidate-sync/lease"
)

func InitRedis() {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.WithError(err).Error("Redis соединение не удалось")
	}
	synclease.NewInstance(rdb)
}
