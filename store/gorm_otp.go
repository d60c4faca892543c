package store

import (
	"context"
	"errors"
	"time"

	"eldercare_booking/model"

	"gorm.io/gorm"
)

type gormOTPStore struct {
	db *gorm.DB
}

func NewGormOTPStore(db *gorm.DB) OTPStore {
	return &gormOTPStore{db: db}
}

func (s *gormOTPStore) Create(ctx context.Context, otp *model.OTP) error {
	return s.db.WithContext(ctx).Create(otp).Error
}

func (s *gormOTPStore) DeleteByEmail(ctx context.Context, email string, purpose model.OTPPurpose) error {
	return s.db.WithContext(ctx).
		Where("email = ? AND type = ?", email, purpose).
		Delete(&model.OTP{}).Error
}

func (s *gormOTPStore) FindActive(ctx context.Context, email, code string, purpose model.OTPPurpose, verified bool, now time.Time) (*model.OTP, error) {
	var otp model.OTP
	if err := s.db.WithContext(ctx).
		Where("email = ? AND otp = ? AND type = ? AND verified = ? AND expires_at > ?", email, code, purpose, verified, now).
		First(&otp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &otp, nil
}

func (s *gormOTPStore) MarkVerified(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&model.OTP{}).Where("id = ?", id).Update("verified", true).Error
}

func (s *gormOTPStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.OTP{}, id).Error
}

func (s *gormOTPStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.OTP{})
	return result.RowsAffected, result.Error
}
