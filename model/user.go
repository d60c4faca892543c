package model

import "time"

type User struct {
	DTO
	Name          string `gorm:"not null" json:"name"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Phone         string `gorm:"uniqueIndex;not null" json:"phone"`
	Password      string `gorm:"not null" json:"-"`
	Role          string `gorm:"not null;default:user" json:"role"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Address       string `json:"address,omitempty"`
	InsuranceCard string `json:"insuranceCard,omitempty"`
}

type Users []User

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=9,max=15"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	// Email hoặc số điện thoại
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone" validate:"omitempty,min=9,max=15"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=Nam Nữ Khác"`
	Address       *string `json:"address"`
	InsuranceCard *string `json:"insuranceCard"`
}

type UpdateRoleInput struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type AuthResult struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
