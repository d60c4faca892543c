// Package store chứa các interface truy cập dữ liệu và hai cài đặt:
// gorm/postgres cho môi trường chạy thật và bộ nhớ trong cho kiểm thử.
package store

import (
	"context"
	"errors"
	"time"

	"eldercare_booking/model"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateCode = errors.New("duplicate order code")
	ErrDuplicateUser = errors.New("duplicate email or phone")
)

// StatusChange thay đổi được áp dụng trong Mutate, trả về nil nếu không đổi gì
type StatusChange struct {
	Field string
	From  string
	To    string
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByLogin(ctx context.Context, emailOrPhone string) (*model.User, error)
	ExistsEmailOrPhone(ctx context.Context, email, phone string, excludeID uint) (bool, error)
	List(ctx context.Context) (model.Users, error)
	Delete(ctx context.Context, id uint) error
}

type OrderStore interface {
	Create(ctx context.Context, order *model.Order) error
	FindByBooker(ctx context.Context, userID uint) (model.Orders, error)
	FindOwned(ctx context.Context, id, userID uint) (*model.Order, error)
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	FindAll(ctx context.Context) (model.Orders, error)
	// Mutate khóa bản ghi, gọi fn và lưu kết quả cùng sự kiện trạng thái trong một giao dịch
	Mutate(ctx context.Context, id uint, actorID uint, fn func(*model.Order) (*StatusChange, error)) (*model.Order, error)
	Events(ctx context.Context, id uint) ([]model.OrderStatusEvent, error)
	// Summary thống kê toàn bộ đơn, ordersToday đếm trong [from, to]
	Summary(ctx context.Context, from, to time.Time) (*model.OrderStats, error)
}

type BookingStore interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByBooker(ctx context.Context, userID uint) (model.Bookings, error)
	FindOwned(ctx context.Context, id, userID uint) (*model.Booking, error)
	FindAll(ctx context.Context) (model.Bookings, error)
	Mutate(ctx context.Context, id uint, actorID uint, fn func(*model.Booking) (*StatusChange, error)) (*model.Booking, error)
}

type OTPStore interface {
	Create(ctx context.Context, otp *model.OTP) error
	DeleteByEmail(ctx context.Context, email string, purpose model.OTPPurpose) error
	// FindActive tìm OTP chưa hết hạn khớp email, mã, mục đích và trạng thái xác thực
	FindActive(ctx context.Context, email, code string, purpose model.OTPPurpose, verified bool, now time.Time) (*model.OTP, error)
	MarkVerified(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type ActivityStore interface {
	List(ctx context.Context, filter model.FilterActivity, activeOnly bool) (model.Activities, error)
	FindByID(ctx context.Context, id uint) (*model.Activity, error)
	FindBySlug(ctx context.Context, slug string) (*model.Activity, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	Create(ctx context.Context, activity *model.Activity) error
	Save(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// SequenceCounter bộ đếm tăng nguyên tử theo ngày
type SequenceCounter interface {
	Next(ctx context.Context, day string) (int64, error)
}
