package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session thông tin phiên đăng nhập lấy từ JWT, gắn vào request context
type Session struct {
	UserID    uint      `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Actor người thực hiện thao tác (đã xác thực)
type Actor struct {
	UserID uint
	Role   string
}
