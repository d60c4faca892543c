package store

import (
	"context"
	"fmt"
	"time"

	"eldercare_booking/model"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormSequenceCounter struct {
	db *gorm.DB
}

// NewGormSequenceCounter dùng upsert của postgres để tăng bộ đếm theo ngày trong một câu lệnh
func NewGormSequenceCounter(db *gorm.DB) SequenceCounter {
	return &gormSequenceCounter{db: db}
}

func (c *gormSequenceCounter) Next(ctx context.Context, day string) (int64, error) {
	seq := model.OrderSequence{Day: day, Value: 1}
	err := c.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "day"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value":      gorm.Expr("order_sequences.value + 1"),
				"updated_at": time.Now(),
			}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "value"}}},
	).Create(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq.Value, nil
}

type redisSequenceCounter struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSequenceCounter(client *redis.Client) SequenceCounter {
	return &redisSequenceCounter{client: client, ttl: 48 * time.Hour}
}

func (c *redisSequenceCounter) Next(ctx context.Context, day string) (int64, error) {
	var incr *redis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr, _ = queueSequence(ctx, pipe, day, c.ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// queueSequence đưa INCR và EXPIRE vào cùng một MULTI để khóa luôn có hạn
func queueSequence(ctx context.Context, pipe redis.Pipeliner, day string, ttl time.Duration) (*redis.IntCmd, *redis.BoolCmd) {
	key := fmt.Sprintf("order_seq:%s", day)
	return pipe.Incr(ctx, key), pipe.Expire(ctx, key, ttl)
}
