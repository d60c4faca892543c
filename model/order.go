package model

import (
	"time"

	"eldercare_booking/utils"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderRejected  OrderStatus = "rejected"
	OrderCompleted OrderStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

const (
	PaymentMethodBank = "bank"
	PaymentMethodMomo = "momo"
	PaymentMethodCash = "cash"
)

const (
	ServiceTypeActivity = "activity"
	ServiceTypePackage  = "package"
)

// OrderItem một dịch vụ trong đơn, lưu nhúng trong cột JSONB của đơn hàng
type OrderItem struct {
	ServiceName       string    `json:"serviceName"`
	ServiceType       string    `json:"serviceType"`
	PackageType       string    `json:"packageType,omitempty"`
	ElderName         string    `json:"elderName"`
	ElderAge          int       `json:"elderAge"`
	ElderGender       string    `json:"elderGender"`
	ElderRelationship string    `json:"elderRelationship"`
	ElderHealth       string    `json:"elderHealth,omitempty"`
	ElderInsurance    string    `json:"elderInsurance,omitempty"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	PricePerDay       float64   `json:"pricePerDay"`
	TotalDays         int       `json:"totalDays"`
	ItemTotal         float64   `json:"itemTotal"`
	Notes             string    `json:"notes,omitempty"`
}

type Order struct {
	DTO
	OrderCode     string        `gorm:"uniqueIndex;size:20;not null" json:"orderCode"`
	BookedBy      uint          `gorm:"index;not null" json:"bookedById"`
	Booker        *User         `gorm:"foreignKey:BookedBy" json:"bookedBy,omitempty"`
	BookedByName  string        `gorm:"not null" json:"bookedByName"`
	BookedByPhone string        `gorm:"not null" json:"bookedByPhone"`
	BookedByEmail string        `gorm:"not null" json:"bookedByEmail"`
	Items         []OrderItem   `gorm:"serializer:json;type:jsonb;not null" json:"items"`
	PaymentMethod string        `gorm:"size:10" json:"paymentMethod,omitempty"`
	TotalAmount   float64       `gorm:"not null" json:"totalAmount"`
	Status        OrderStatus   `gorm:"size:20;not null;default:pending;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:pending" json:"paymentStatus"`
}

type Orders []Order

// OrderStatusEvent lịch sử thay đổi trạng thái của đơn hàng / đơn đặt cũ
type OrderStatusEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Kind      string    `gorm:"size:10;not null;index:idx_status_event_ref" json:"kind"` // order | booking
	RefID     uint      `gorm:"not null;index:idx_status_event_ref" json:"refId"`
	Field     string    `gorm:"size:20;not null" json:"field"` // status | paymentStatus
	From      string    `gorm:"size:20" json:"from"`
	To        string    `gorm:"size:20;not null" json:"to"`
	ActorID   uint      `json:"actorId"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	EventKindOrder   = "order"
	EventKindBooking = "booking"

	EventFieldStatus        = "status"
	EventFieldPaymentStatus = "paymentStatus"
)

type OrderItemInput struct {
	ServiceName       string            `json:"serviceName" validate:"required,notblank"`
	ServiceType       string            `json:"serviceType" validate:"required,oneof=activity package"`
	PackageType       string            `json:"packageType" validate:"omitempty,oneof=vip standard"`
	ElderName         string            `json:"elderName" validate:"required,notblank"`
	ElderAge          *int              `json:"elderAge" validate:"required,gte=0,lte=150"`
	ElderGender       string            `json:"elderGender" validate:"required,notblank"`
	ElderRelationship string            `json:"elderRelationship" validate:"required,notblank"`
	ElderHealth       string            `json:"elderHealth"`
	ElderInsurance    string            `json:"elderInsurance"`
	StartDate         *utils.CustomDate `json:"startDate" validate:"required"`
	EndDate           *utils.CustomDate `json:"endDate" validate:"required"`
	PricePerDay       *float64          `json:"pricePerDay" validate:"required,gte=0"`
	TotalDays         *int              `json:"totalDays" validate:"required,gte=1"`
	ItemTotal         *float64          `json:"itemTotal" validate:"required,gte=0"`
	Notes             string            `json:"notes"`
}

type CreateOrderInput struct {
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string           `json:"paymentMethod" validate:"omitempty,oneof=bank momo cash"`
	TotalAmount   *float64         `json:"totalAmount" validate:"required,gte=0"`
	BookedByName  string           `json:"bookedByName"`
	BookedByPhone string           `json:"bookedByPhone"`
	BookedByEmail string           `json:"bookedByEmail" validate:"omitempty,email"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

type OrderStats struct {
	Date            string           `json:"date"`
	OrdersToday     int64            `json:"ordersToday"`
	TotalOrders     int64            `json:"totalOrders"`
	ByStatus        map[string]int64 `json:"byStatus"`
	ByPaymentStatus map[string]int64 `json:"byPaymentStatus"`
	PaidRevenue     float64          `json:"paidRevenue"`
}

type PaymentQR struct {
	OrderCode     string  `json:"orderCode"`
	Amount        float64 `json:"amount"`
	BankID        string  `json:"bankId"`
	AccountNo     string  `json:"accountNo"`
	AccountName   string  `json:"accountName"`
	TransferNote  string  `json:"transferNote"`
	QRCode        string  `json:"qrCode"`
	PaymentMethod string  `json:"paymentMethod"`
}
