package store

import (
	"context"
	"errors"

	"eldercare_booking/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) BookingStore {
	return &gormBookingStore{db: db}
}

func (s *gormBookingStore) Create(ctx context.Context, booking *model.Booking) error {
	if err := s.db.WithContext(ctx).Omit("Booker", "Service").Create(booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (s *gormBookingStore) FindByBooker(ctx context.Context, userID uint) (model.Bookings, error) {
	var bookings model.Bookings
	if err := s.db.WithContext(ctx).
		Preload("Service").
		Where("booked_by = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *gormBookingStore) FindOwned(ctx context.Context, id, userID uint) (*model.Booking, error) {
	var booking model.Booking
	if err := s.db.WithContext(ctx).
		Preload("Service").
		Where("id = ? AND booked_by = ?", id, userID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *gormBookingStore) FindAll(ctx context.Context) (model.Bookings, error) {
	var bookings model.Bookings
	if err := s.db.WithContext(ctx).
		Preload("Booker").
		Preload("Service").
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *gormBookingStore) Mutate(ctx context.Context, id uint, actorID uint, fn func(*model.Booking) (*StatusChange, error)) (*model.Booking, error) {
	var booking model.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		change, err := fn(&booking)
		if err != nil {
			return err
		}
		if change == nil {
			return nil
		}
		if err := tx.Model(&booking).Update(toColumn(change.Field), change.To).Error; err != nil {
			return err
		}
		return tx.Create(&model.OrderStatusEvent{
			Kind:    model.EventKindBooking,
			RefID:   booking.ID,
			Field:   change.Field,
			From:    change.From,
			To:      change.To,
			ActorID: actorID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
