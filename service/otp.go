package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"eldercare_booking/constants"
	"eldercare_booking/helper"
	"eldercare_booking/logger"
	"eldercare_booking/model"
	"eldercare_booking/store"

	"github.com/pkg/errors"
)

// Mailer gửi mã OTP qua email
type Mailer interface {
	SendOTP(to, code, purpose string, minutes int) error
}

var ErrEmailDelivery = errors.New("otp email delivery failed")

type OTPService struct {
	otps   store.OTPStore
	auth   *AuthService
	mailer Mailer
	ttl    time.Duration
	now    func() time.Time
}

func NewOTPService(otps store.OTPStore, auth *AuthService, mailer Mailer) *OTPService {
	return &OTPService{
		otps:   otps,
		auth:   auth,
		mailer: mailer,
		ttl:    constants.OTP_TTL_MINUTES * time.Minute,
		now:    time.Now,
	}
}

func (s *OTPService) WithClock(now func() time.Time) *OTPService {
	s.now = now
	return s
}

// GenerateOTP mã 6 chữ số, sinh từ crypto/rand
func GenerateOTP() (string, error) {
	digits := make([]byte, constants.OTP_LENGTH)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

func (s *OTPService) SendRegister(ctx context.Context, email string) error {
	email = helper.NormalizeEmail(email)
	registered, err := s.auth.EmailRegistered(ctx, email)
	if err != nil {
		return err
	}
	if registered {
		return invalid("email", constants.EMAIL_USED)
	}
	return s.issue(ctx, email, model.OTPPurposeRegister)
}

func (s *OTPService) SendReset(ctx context.Context, email string) error {
	email = helper.NormalizeEmail(email)
	registered, err := s.auth.EmailRegistered(ctx, email)
	if err != nil {
		return err
	}
	if !registered {
		return ErrNotFound
	}
	return s.issue(ctx, email, model.OTPPurposeResetPassword)
}

// issue xóa các OTP cũ cùng email và mục đích rồi tạo mã mới; gửi mail lỗi thì xóa luôn mã vừa tạo
func (s *OTPService) issue(ctx context.Context, email string, purpose model.OTPPurpose) error {
	if err := s.otps.DeleteByEmail(ctx, email, purpose); err != nil {
		return errors.Wrap(err, "delete old otps")
	}
	code, err := GenerateOTP()
	if err != nil {
		return errors.Wrap(err, "generate otp")
	}
	otp := &model.OTP{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.otps.Create(ctx, otp); err != nil {
		return errors.Wrap(err, "create otp")
	}
	if err := s.mailer.SendOTP(email, code, string(purpose), constants.OTP_TTL_MINUTES); err != nil {
		if delErr := s.otps.Delete(ctx, otp.ID); delErr != nil {
			logger.Error("Không xóa được OTP sau khi gửi email lỗi", delErr)
		}
		return errors.Wrap(ErrEmailDelivery, err.Error())
	}
	return nil
}

func (s *OTPService) Verify(ctx context.Context, input *model.VerifyOTPInput) error {
	if err := checkStruct(input); err != nil {
		return err
	}
	otp, err := s.otps.FindActive(ctx, helper.NormalizeEmail(input.Email), input.OTP, input.Type, false, s.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidOTP
		}
		return errors.Wrap(err, "find otp")
	}
	return errors.Wrap(s.otps.MarkVerified(ctx, otp.ID), "mark otp verified")
}

// ResetPassword cần OTP đặt lại mật khẩu đã xác thực và còn hạn, OTP bị xóa sau khi dùng
func (s *OTPService) ResetPassword(ctx context.Context, input *model.ResetPasswordInput) error {
	if err := checkStruct(input); err != nil {
		return err
	}
	email := helper.NormalizeEmail(input.Email)
	otp, err := s.otps.FindActive(ctx, email, input.OTP, model.OTPPurposeResetPassword, true, s.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidOTP
		}
		return errors.Wrap(err, "find verified otp")
	}
	if err := s.auth.ResetPassword(ctx, email, input.NewPassword); err != nil {
		return err
	}
	return errors.Wrap(s.otps.Delete(ctx, otp.ID), "consume otp")
}

// PurgeExpired thay cho TTL index của document store
func (s *OTPService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.otps.PurgeExpired(ctx, s.now())
}
