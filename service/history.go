package service

import (
	"context"
	"sort"

	"eldercare_booking/model"

	"github.com/pkg/errors"
)

// NormalizeBooking đưa đơn đặt kiểu cũ về dạng lịch sử chung với một dịch vụ duy nhất
func NormalizeBooking(b model.Booking) model.HistoryEntry {
	item := model.OrderItem{
		ServiceName:       b.ServiceName,
		ServiceType:       b.ServiceType,
		PackageType:       b.PackageType,
		ElderName:         b.ElderName,
		ElderAge:          b.ElderAge,
		ElderGender:       b.ElderGender,
		ElderRelationship: b.ElderRelationship,
		ElderHealth:       b.ElderHealth,
		ElderInsurance:    b.ElderInsurance,
		StartDate:         b.StartDate,
		EndDate:           b.EndDate,
		Notes:             b.Notes,
	}
	if b.PricePerDay != nil {
		item.PricePerDay = *b.PricePerDay
	}
	if b.TotalDays != nil {
		item.TotalDays = *b.TotalDays
	}

	var total float64
	switch {
	case b.TotalAmount != nil:
		total = *b.TotalAmount
	case b.PricePerDay != nil && b.TotalDays != nil:
		total = *b.PricePerDay * float64(*b.TotalDays)
	}
	item.ItemTotal = total

	return model.HistoryEntry{
		Version:       model.HistoryVersionBooking,
		ID:            b.ID,
		OrderCode:     b.OrderCode,
		BookedBy:      b.BookedBy,
		BookedByName:  b.BookedByName,
		BookedByPhone: b.BookedByPhone,
		BookedByEmail: b.BookedByEmail,
		Items:         []model.OrderItem{item},
		PaymentMethod: b.PaymentMethod,
		TotalAmount:   total,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
}

func NormalizeOrder(o model.Order) model.HistoryEntry {
	return model.HistoryEntry{
		Version:       model.HistoryVersionOrder,
		ID:            o.ID,
		OrderCode:     o.OrderCode,
		BookedBy:      o.BookedBy,
		BookedByName:  o.BookedByName,
		BookedByPhone: o.BookedByPhone,
		BookedByEmail: o.BookedByEmail,
		Items:         append([]model.OrderItem(nil), o.Items...),
		PaymentMethod: o.PaymentMethod,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
	}
}

// MergeHistory gộp hai nguồn, mới nhất lên đầu
func MergeHistory(orders model.Orders, bookings model.Bookings) []model.HistoryEntry {
	entries := make([]model.HistoryEntry, 0, len(orders)+len(bookings))
	for _, o := range orders {
		entries = append(entries, NormalizeOrder(o))
	}
	for _, b := range bookings {
		entries = append(entries, NormalizeBooking(b))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries
}

type HistoryService struct {
	orders   *OrderService
	bookings *BookingService
}

func NewHistoryService(orders *OrderService, bookings *BookingService) *HistoryService {
	return &HistoryService{orders: orders, bookings: bookings}
}

func (s *HistoryService) MyHistory(ctx context.Context, actor model.Actor) ([]model.HistoryEntry, error) {
	orders, err := s.orders.GetMyOrders(ctx, actor)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.GetMyBookings(ctx, actor)
	if err != nil {
		return nil, errors.Wrap(err, "my bookings")
	}
	return MergeHistory(orders, bookings), nil
}

func (s *HistoryService) AllHistory(ctx context.Context, actor model.Actor) ([]model.HistoryEntry, error) {
	orders, err := s.orders.GetAllOrders(ctx, actor)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.GetAllBookings(ctx, actor)
	if err != nil {
		return nil, err
	}
	return MergeHistory(orders, bookings), nil
}
