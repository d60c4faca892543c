package service

import (
	"context"
	"strings"
	"time"

	"eldercare_booking/model"
	"eldercare_booking/store"
	"eldercare_booking/utils"

	"github.com/pkg/errors"
)

// BookingService đơn đặt kiểu cũ (một người cao tuổi, một dịch vụ), dùng chung bộ sinh mã với đơn hàng
type BookingService struct {
	bookings   store.BookingStore
	users      store.UserStore
	activities store.ActivityStore
	codes      *CodeGenerator
	uploader   ImageUploader
	now        func() time.Time
}

func NewBookingService(bookings store.BookingStore, users store.UserStore, activities store.ActivityStore, codes *CodeGenerator, uploader ImageUploader) *BookingService {
	return &BookingService{
		bookings:   bookings,
		users:      users,
		activities: activities,
		codes:      codes,
		uploader:   uploader,
		now:        time.Now,
	}
}

func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

func (s *BookingService) CreateBooking(ctx context.Context, actor model.Actor, input *model.CreateBookingInput) (*model.Booking, error) {
	if actor.UserID == 0 {
		return nil, ErrUnauthorized
	}
	if err := checkStruct(input); err != nil {
		return nil, err
	}
	if err := VerifyBookingAmounts(input); err != nil {
		return nil, err
	}
	if input.ServiceID != nil {
		if _, err := s.activities.FindByID(ctx, *input.ServiceID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, invalid("serviceId", "dịch vụ không tồn tại")
			}
			return nil, errors.Wrap(err, "find booked activity")
		}
	}

	booker, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, errors.Wrap(err, "load booker")
	}
	insurance, err := resolveImage(ctx, s.uploader, input.ElderInsurance, elderDocumentFolder)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		BookedBy:          booker.ID,
		BookedByName:      firstNonEmpty(input.BookedByName, booker.Name),
		BookedByPhone:     firstNonEmpty(input.BookedByPhone, booker.Phone),
		BookedByEmail:     firstNonEmpty(input.BookedByEmail, booker.Email),
		ElderName:         strings.TrimSpace(input.ElderName),
		ElderAge:          *input.ElderAge,
		ElderGender:       strings.TrimSpace(input.ElderGender),
		ElderRelationship: strings.TrimSpace(input.ElderRelationship),
		ElderHealth:       input.ElderHealth,
		ElderInsurance:    insurance,
		ServiceType:       input.ServiceType,
		ServiceID:         input.ServiceID,
		ServiceName:       strings.TrimSpace(input.ServiceName),
		PackageType:       input.PackageType,
		StartDate:         input.StartDate.Time,
		EndDate:           input.EndDate.Time,
		Notes:             input.Notes,
		PaymentMethod:     input.PaymentMethod,
		TotalAmount:       input.TotalAmount,
		PricePerDay:       input.PricePerDay,
		TotalDays:         input.TotalDays,
		Status:            model.OrderPending,
		PaymentStatus:     model.PaymentPending,
	}

	err = withUniqueCode(ctx, s.codes, s.now(), func(code string) error {
		booking.ID = 0
		booking.OrderCode = code
		return s.bookings.Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// VerifyBookingAmounts giá là tùy chọn với đơn kiểu cũ, chỉ kiểm tra khi client gửi đủ dữ liệu
func VerifyBookingAmounts(input *model.CreateBookingInput) error {
	if input.StartDate == nil || input.EndDate == nil {
		return invalid("startDate", "thiếu ngày bắt đầu hoặc kết thúc")
	}
	start, end := input.StartDate.Time, input.EndDate.Time
	if !end.After(start) {
		return invalid("endDate", "ngày kết thúc phải sau ngày bắt đầu")
	}
	if input.TotalDays != nil {
		if days := utils.TotalDays(start, end); days != *input.TotalDays {
			return errors.Wrapf(ErrAmountMismatch, "totalDays phải là %d", days)
		}
	}
	if input.PricePerDay != nil && input.TotalDays != nil && input.TotalAmount != nil {
		expected := *input.PricePerDay * float64(*input.TotalDays)
		if !utils.AmountEqual(expected, *input.TotalAmount) {
			return errors.Wrapf(ErrAmountMismatch, "totalAmount phải là %.2f", expected)
		}
	}
	return nil
}

func (s *BookingService) GetMyBookings(ctx context.Context, actor model.Actor) (model.Bookings, error) {
	if actor.UserID == 0 {
		return nil, ErrUnauthorized
	}
	bookings, err := s.bookings.FindByBooker(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "find bookings by booker")
	}
	return bookings, nil
}

func (s *BookingService) GetBookingByID(ctx context.Context, actor model.Actor, id uint) (*model.Booking, error) {
	if actor.UserID == 0 {
		return nil, ErrUnauthorized
	}
	booking, err := s.bookings.FindOwned(ctx, id, actor.UserID)
	if err != nil {
		return nil, mapStoreErr(err, "find owned booking")
	}
	return booking, nil
}

func (s *BookingService) GetAllBookings(ctx context.Context, actor model.Actor) (model.Bookings, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find all bookings")
	}
	return bookings, nil
}

func (s *BookingService) SetStatus(ctx context.Context, actor model.Actor, id uint, status string) (*model.Booking, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	to, err := ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	booking, err := s.bookings.Mutate(ctx, id, actor.UserID, func(b *model.Booking) (*store.StatusChange, error) {
		return statusChange(&b.Status, to)
	})
	if err != nil {
		return nil, mapStoreErr(err, "update booking status")
	}
	return booking, nil
}

func (s *BookingService) SetPaymentStatus(ctx context.Context, actor model.Actor, id uint, paymentStatus string) (*model.Booking, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	to, err := ParsePaymentStatus(paymentStatus)
	if err != nil {
		return nil, err
	}
	booking, err := s.bookings.Mutate(ctx, id, actor.UserID, func(b *model.Booking) (*store.StatusChange, error) {
		return paymentChange(&b.PaymentStatus, to)
	})
	if err != nil {
		return nil, mapStoreErr(err, "update booking payment status")
	}
	return booking, nil
}
