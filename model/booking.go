package model

import (
	"time"

	"eldercare_booking/utils"
)

// Booking đơn đặt kiểu cũ: mỗi bản ghi một người cao tuổi, một dịch vụ
type Booking struct {
	DTO
	BookedBy          uint          `gorm:"index;not null" json:"bookedById"`
	Booker            *User         `gorm:"foreignKey:BookedBy" json:"bookedBy,omitempty"`
	BookedByName      string        `gorm:"not null" json:"bookedByName"`
	BookedByPhone     string        `gorm:"not null" json:"bookedByPhone"`
	BookedByEmail     string        `gorm:"not null" json:"bookedByEmail"`
	ElderName         string        `gorm:"not null" json:"elderName"`
	ElderAge          int           `gorm:"not null" json:"elderAge"`
	ElderGender       string        `gorm:"not null" json:"elderGender"`
	ElderRelationship string        `gorm:"not null" json:"elderRelationship"`
	ElderHealth       string        `json:"elderHealth,omitempty"`
	ElderInsurance    string        `json:"elderInsurance,omitempty"`
	OrderCode         string        `gorm:"uniqueIndex;size:20;not null" json:"orderCode"`
	ServiceType       string        `gorm:"size:10;not null" json:"serviceType"`
	ServiceID         *uint         `json:"serviceId,omitempty"`
	Service           *Activity     `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	ServiceName       string        `gorm:"not null" json:"serviceName"`
	PackageType       string        `gorm:"size:10" json:"packageType,omitempty"`
	StartDate         time.Time     `gorm:"not null" json:"startDate"`
	EndDate           time.Time     `gorm:"not null" json:"endDate"`
	Notes             string        `json:"notes,omitempty"`
	PaymentMethod     string        `gorm:"size:10" json:"paymentMethod,omitempty"`
	TotalAmount       *float64      `json:"totalAmount,omitempty"`
	PricePerDay       *float64      `json:"pricePerDay,omitempty"`
	TotalDays         *int          `json:"totalDays,omitempty"`
	Status            OrderStatus   `gorm:"size:20;not null;default:pending;index" json:"status"`
	PaymentStatus     PaymentStatus `gorm:"size:20;not null;default:pending" json:"paymentStatus"`
}

type Bookings []Booking

type CreateBookingInput struct {
	BookedByName      string            `json:"bookedByName"`
	BookedByPhone     string            `json:"bookedByPhone"`
	BookedByEmail     string            `json:"bookedByEmail" validate:"omitempty,email"`
	ElderName         string            `json:"elderName" validate:"required,notblank"`
	ElderAge          *int              `json:"elderAge" validate:"required,gte=0,lte=150"`
	ElderGender       string            `json:"elderGender" validate:"required,notblank"`
	ElderRelationship string            `json:"elderRelationship" validate:"required,notblank"`
	ElderHealth       string            `json:"elderHealth"`
	ElderInsurance    string            `json:"elderInsurance"`
	ServiceType       string            `json:"serviceType" validate:"required,oneof=activity package"`
	ServiceID         *uint             `json:"serviceId"`
	ServiceName       string            `json:"serviceName" validate:"required,notblank"`
	PackageType       string            `json:"packageType" validate:"omitempty,oneof=vip standard"`
	StartDate         *utils.CustomDate `json:"startDate" validate:"required"`
	EndDate           *utils.CustomDate `json:"endDate" validate:"required"`
	Notes             string            `json:"notes"`
	PaymentMethod     string            `json:"paymentMethod" validate:"omitempty,oneof=bank momo cash"`
	TotalAmount       *float64          `json:"totalAmount" validate:"omitempty,gte=0"`
	PricePerDay       *float64          `json:"pricePerDay" validate:"omitempty,gte=0"`
	TotalDays         *int              `json:"totalDays" validate:"omitempty,gte=1"`
}
