package model

import "time"

type OTPPurpose string

const (
	OTPPurposeRegister      OTPPurpose = "register"
	OTPPurposeResetPassword OTPPurpose = "reset-password"
)

type OTP struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"size:255;not null;index:idx_otp_email_type" json:"email"`
	Code      string     `gorm:"column:otp;size:6;not null" json:"-"`
	Purpose   OTPPurpose `gorm:"column:type;size:20;not null;index:idx_otp_email_type" json:"type"`
	Verified  bool       `gorm:"not null;default:false" json:"verified"`
	ExpiresAt time.Time  `gorm:"not null;index" json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (o *OTP) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

type SendOTPInput struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPInput struct {
	Email string     `json:"email" validate:"required,email"`
	OTP   string     `json:"otp" validate:"required,len=6,numeric"`
	Type  OTPPurpose `json:"type" validate:"required,oneof=register reset-password"`
}

type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
