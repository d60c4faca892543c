package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"eldercare_booking/config"
	"eldercare_booking/constants"
	"eldercare_booking/model"
	"eldercare_booking/store"
	"eldercare_booking/utils"

	"github.com/stretchr/testify/require"
)

// 10:00 ngày 19/10/2025 giờ ICT
var fixedNow = time.Date(2025, 10, 19, 3, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fixture struct {
	users      store.UserStore
	orders     store.OrderStore
	bookings   store.BookingStore
	activities store.ActivityStore
	otps       store.OTPStore
	codes      *CodeGenerator

	auth     *AuthService
	order    *OrderService
	booking  *BookingService
	history  *HistoryService
	activity *ActivityService
}

var userSeq int64

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:      store.NewMemoryUserStore(),
		activities: store.NewMemoryActivityStore(),
		otps:       store.NewMemoryOTPStore(),
		codes:      NewCodeGenerator(store.NewMemorySequenceCounter()),
	}
	f.orders = store.NewMemoryOrderStore(f.users)
	f.bookings = store.NewMemoryBookingStore(f.users)

	bank := BankAccount{BankID: "VCB", AccountNo: "0123456789", AccountName: "SONG VUI KHOE"}
	f.auth = NewAuthService(f.users, nil, time.Hour)
	f.order = NewOrderService(f.orders, f.users, f.codes, nil, bank).WithClock(fixedClock)
	f.booking = NewBookingService(f.bookings, f.users, f.activities, f.codes, nil).WithClock(fixedClock)
	f.history = NewHistoryService(f.order, f.booking)
	f.activity = NewActivityService(f.activities, nil)
	return f
}

func (f *fixture) newActor(t *testing.T, role string) model.Actor {
	t.Helper()
	n := atomic.AddInt64(&userSeq, 1)
	user := &model.User{
		Name:     fmt.Sprintf("Người dùng %d", n),
		Email:    fmt.Sprintf("user%d@example.com", n),
		Phone:    fmt.Sprintf("09%08d", n),
		Password: "x",
		Role:     role,
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return model.Actor{UserID: user.ID, Role: user.Role}
}

func (f *fixture) newUser(t *testing.T) model.Actor  { return f.newActor(t, constants.ROLE_USER) }
func (f *fixture) newAdmin(t *testing.T) model.Actor { return f.newActor(t, constants.ROLE_ADMIN) }

func orderItem(price float64, days int) model.OrderItemInput {
	start := time.Date(2025, 10, 20, 0, 0, 0, 0, config.BusinessLocation)
	end := start.AddDate(0, 0, days)
	return model.OrderItemInput{
		ServiceName:       "Chăm sóc tại nhà",
		ServiceType:       model.ServiceTypePackage,
		PackageType:       "standard",
		ElderName:         "Nguyễn Văn Bình",
		ElderAge:          utils.Ptr(78),
		ElderGender:       "Nam",
		ElderRelationship: "Bố",
		StartDate:         utils.DatePtr(start),
		EndDate:           utils.DatePtr(end),
		PricePerDay:       utils.Ptr(price),
		TotalDays:         utils.Ptr(days),
		ItemTotal:         utils.Ptr(price * float64(days)),
	}
}

func orderInput(items ...model.OrderItemInput) *model.CreateOrderInput {
	var total float64
	for _, item := range items {
		total += *item.ItemTotal
	}
	return &model.CreateOrderInput{
		Items:         items,
		PaymentMethod: model.PaymentMethodBank,
		TotalAmount:   utils.Ptr(total),
	}
}
