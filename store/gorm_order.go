package store

import (
	"context"
	"errors"
	"time"

	"eldercare_booking/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) OrderStore {
	return &gormOrderStore{db: db}
}

func (s *gormOrderStore) Create(ctx context.Context, order *model.Order) error {
	if err := s.db.WithContext(ctx).Omit("Booker").Create(order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (s *gormOrderStore) FindByBooker(ctx context.Context, userID uint) (model.Orders, error) {
	var orders model.Orders
	if err := s.db.WithContext(ctx).
		Where("booked_by = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormOrderStore) FindOwned(ctx context.Context, id, userID uint) (*model.Order, error) {
	var order model.Order
	if err := s.db.WithContext(ctx).
		Where("id = ? AND booked_by = ?", id, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *gormOrderStore) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := s.db.WithContext(ctx).Preload("Booker").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *gormOrderStore) FindAll(ctx context.Context) (model.Orders, error) {
	var orders model.Orders
	if err := s.db.WithContext(ctx).
		Preload("Booker").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormOrderStore) Mutate(ctx context.Context, id uint, actorID uint, fn func(*model.Order) (*StatusChange, error)) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		change, err := fn(&order)
		if err != nil {
			return err
		}
		if change == nil {
			return nil
		}
		if err := tx.Model(&order).Update(toColumn(change.Field), change.To).Error; err != nil {
			return err
		}
		return tx.Create(&model.OrderStatusEvent{
			Kind:    model.EventKindOrder,
			RefID:   order.ID,
			Field:   change.Field,
			From:    change.From,
			To:      change.To,
			ActorID: actorID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *gormOrderStore) Events(ctx context.Context, id uint) ([]model.OrderStatusEvent, error) {
	var events []model.OrderStatusEvent
	if err := s.db.WithContext(ctx).
		Where("kind = ? AND ref_id = ?", model.EventKindOrder, id).
		Order("created_at asc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *gormOrderStore) Summary(ctx context.Context, from, to time.Time) (*model.OrderStats, error) {
	stats := &model.OrderStats{
		ByStatus:        map[string]int64{},
		ByPaymentStatus: map[string]int64{},
	}
	db := s.db.WithContext(ctx).Model(&model.Order{})

	if err := db.Session(&gorm.Session{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&stats.OrdersToday).Error; err != nil {
		return nil, err
	}

	type groupRow struct {
		Key   string
		Total int64
	}
	var rows []groupRow
	if err := db.Session(&gorm.Session{}).Select("status AS key, COUNT(*) AS total").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		stats.ByStatus[r.Key] = r.Total
	}
	rows = nil
	if err := db.Session(&gorm.Session{}).Select("payment_status AS key, COUNT(*) AS total").Group("payment_status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		stats.ByPaymentStatus[r.Key] = r.Total
	}

	if err := db.Session(&gorm.Session{}).
		Where("payment_status = ?", model.PaymentPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.PaidRevenue).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func toColumn(field string) string {
	if field == model.EventFieldPaymentStatus {
		return "payment_status"
	}
	return "status"
}
