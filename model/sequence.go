package model

import "time"

// OrderSequence bộ đếm mã đơn theo ngày (YYYYMMDD)
type OrderSequence struct {
	Day       string    `gorm:"primaryKey;size:8" json:"day"`
	Value     int64     `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
