package model

import "time"

const (
	HistoryVersionBooking = "v1"
	HistoryVersionOrder   = "v2"
)

// HistoryEntry dạng hiển thị chung cho cả đơn hàng (v2) và đơn đặt cũ (v1)
type HistoryEntry struct {
	Version       string        `json:"version"`
	ID            uint          `json:"id"`
	OrderCode     string        `json:"orderCode"`
	BookedBy      uint          `json:"bookedById"`
	BookedByName  string        `json:"bookedByName"`
	BookedByPhone string        `json:"bookedByPhone"`
	BookedByEmail string        `json:"bookedByEmail"`
	Items         []OrderItem   `json:"items"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
}
