package database

import (
	"context"
	"time"

	"eldercare_booking/config"
	"eldercare_booking/logger"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis mở kết nối Redis cho bộ đếm mã đơn, ping thử trước khi trả về
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
		DB:       config.ConfigInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect redis")
	}
	logger.Success("Connection Opened to Redis")
	return client, nil
}
