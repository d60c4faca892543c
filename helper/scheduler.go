package helper

import (
	"context"
	"time"

	"eldercare_booking/config"
	"eldercare_booking/logger"

	"github.com/go-co-op/gocron/v2"
)

// PurgeFunc xóa bản ghi hết hạn, trả về số bản ghi đã xóa
type PurgeFunc func(ctx context.Context) (int64, error)

func PurgeExpiredOTPs(purge PurgeFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := purge(ctx)
	if err != nil {
		logger.Error("[CRON] Lỗi khi xóa OTP hết hạn", err)
		return
	}
	if n > 0 {
		logger.Printf("[CRON] Đã xóa %d OTP hết hạn", n)
	}
}

// StartOTPCleanupScheduler chạy mỗi phút, thay cho TTL index của document store
func StartOTPCleanupScheduler(purge PurgeFunc) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(config.BusinessLocation),
	)
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(PurgeExpiredOTPs, purge),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	logger.Success("OTP cleanup scheduler started (every 1m)")
	return s, nil
}
