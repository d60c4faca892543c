package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"eldercare_booking/model"
	"eldercare_booking/store"
	"eldercare_booking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	calls int
}

func (u *fakeUploader) Upload(_ context.Context, _ string, folder string) (string, error) {
	u.calls++
	return "https://cdn.example.com/" + folder + "/card.jpg", nil
}

func TestCreateOrder_StampsCodeAndDefaults(t *testing.T) {
	f := newFixture(t)
	user := f.newUser(t)

	order, err := f.order.CreateOrder(context.Background(), user, orderInput(orderItem(250000, 3), orderItem(400000, 2)))
	require.NoError(t, err)

	assert.Equal(t, "SVK20251019001", order.OrderCode)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, model.PaymentPending, order.PaymentStatus)
	assert.Equal(t, user.UserID, order.BookedBy)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 1550000, order.TotalAmount, 0.001)

	// liên hệ người đặt lấy từ tài khoản khi body bỏ trống
	booker, err := f.users.FindByID(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, booker.Name, order.BookedByName)
	assert.Equal(t, booker.Email, order.BookedByEmail)
	assert.Equal(t, booker.Phone, order.BookedByPhone)

	second, err := f.order.CreateOrder(context.Background(), user, orderInput(orderItem(100000, 1)))
	require.NoError(t, err)
	assert.Equal(t, "SVK20251019002", second.OrderCode)
}

func TestCreateOrder_ExplicitContactWins(t *testing.T) {
	f := newFixture(t)
	user := f.newUser(t)
	input := orderInput(orderItem(100000, 1))
	input.BookedByName = "Trần Thị Hoa"
	input.BookedByPhone = "0911222333"

	order, err := f.order.CreateOrder(context.Background(), user, input)
	require.NoError(t, err)
	assert.Equal(t, "Trần Thị Hoa", order.BookedByName)
	assert.Equal(t, "0911222333", order.BookedByPhone)
}

func TestCreateOrder_UploadsInsuranceDataURL(t *testing.T) {
	f := newFixture(t)
	uploader := &fakeUploader{}
	svc := NewOrderService(f.orders, f.users, f.codes, uploader, BankAccount{}).WithClock(fixedClock)
	user := f.newUser(t)

	withImage := orderItem(100000, 1)
	withImage.ElderInsurance = "data:image/png;base64,iVBORw0KGgo="
	withURL := orderItem(100000, 1)
	withURL.ElderInsurance = "https://cdn.example.com/existing.jpg"

	order, err := svc.CreateOrder(context.Background(), user, orderInput(withImage, withURL))
	require.NoError(t, err)
	assert.Equal(t, 1, uploader.calls)
	assert.True(t, strings.HasPrefix(order.Items[0].ElderInsurance, "https://cdn.example.com/"))
	assert.Equal(t, "https://cdn.example.com/existing.jpg", order.Items[1].ElderInsurance)
}

func TestCreateOrder_Validation(t *testing.T) {
	f := newFixture(t)
	user := f.newUser(t)
	ctx := context.Background()

	t.Run("empty items", func(t *testing.T) {
		_, err := f.order.CreateOrder(ctx, user, &model.CreateOrderInput{TotalAmount: utils.Ptr(0.0)})
		assert.True(t, IsValidation(err))
	})

	t.Run("missing elder name", func(t *testing.T) {
		item := orderItem(100000, 1)
		item.ElderName = ""
		_, err := f.order.CreateOrder(ctx, user, orderInput(item))
		assert.True(t, IsValidation(err))
	})

	t.Run("whitespace elder name", func(t *testing.T) {
		item := orderItem(100000, 1)
		item.ElderName = "   "
		item.ElderGender = " "
		item.ServiceName = "\t"
		_, err := f.order.CreateOrder(ctx, user, orderInput(item))
		assert.True(t, IsValidation(err))
	})

	t.Run("end before start", func(t *testing.T) {
		item := orderItem(100000, 1)
		item.EndDate = utils.DatePtr(item.StartDate.Time.Add(-time.Hour))
		_, err := f.order.CreateOrder(ctx, user, orderInput(item))
		assert.True(t, IsValidation(err))
	})

	t.Run("anonymous caller", func(t *testing.T) {
		_, err := f.order.CreateOrder(ctx, model.Actor{}, orderInput(orderItem(100000, 1)))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	orders, err := f.order.GetMyOrders(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, orders, "rejected input never persists")
}

func TestVerifyOrderAmounts(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		assert.NoError(t, VerifyOrderAmounts(orderInput(orderItem(250000, 5))))
	})

	t.Run("wrong total days", func(t *testing.T) {
		item := orderItem(250000, 5)
		item.TotalDays = utils.Ptr(4)
		item.ItemTotal = utils.Ptr(1000000.0)
		err := VerifyOrderAmounts(orderInput(item))
		assert.ErrorIs(t, err, ErrAmountMismatch)
	})

	t.Run("wrong item total", func(t *testing.T) {
		item := orderItem(250000, 5)
		item.ItemTotal = utils.Ptr(1.0)
		err := VerifyOrderAmounts(orderInput(item))
		assert.ErrorIs(t, err, ErrAmountMismatch)
	})

	t.Run("wrong order total", func(t *testing.T) {
		input := orderInput(orderItem(250000, 5))
		input.TotalAmount = utils.Ptr(999.0)
		assert.ErrorIs(t, VerifyOrderAmounts(input), ErrAmountMismatch)
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		item := orderItem(100000, 2)
		item.EndDate = utils.DatePtr(item.StartDate.Time.Add(36 * time.Hour))
		assert.NoError(t, VerifyOrderAmounts(orderInput(item)))
	})

	t.Run("rounding tolerance", func(t *testing.T) {
		input := orderInput(orderItem(100000, 1))
		input.TotalAmount = utils.Ptr(100000.005)
		assert.NoError(t, VerifyOrderAmounts(input))
	})
}

func TestCreateOrder_ConcurrentCheckoutsGetDistinctCodes(t *testing.T) {
	f := newFixture(t)
	users := []model.Actor{f.newUser(t), f.newUser(t), f.newUser(t)}

	const perUser = 10
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[string]bool{}
	)
	for _, u := range users {
		for i := 0; i < perUser; i++ {
			wg.Add(1)
			go func(actor model.Actor) {
				defer wg.Done()
				order, err := f.order.CreateOrder(context.Background(), actor, orderInput(orderItem(100000, 1)))
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				assert.False(t, codes[order.OrderCode], "duplicate code %s", order.OrderCode)
				codes[order.OrderCode] = true
			}(u)
		}
	}
	wg.Wait()
	assert.Len(t, codes, len(users)*perUser)
}

func TestGetOrderByID_OwnershipIsolation(t *testing.T) {
	f := newFixture(t)
	owner, other := f.newUser(t), f.newUser(t)
	ctx := context.Background()

	order, err := f.order.CreateOrder(ctx, owner, orderInput(orderItem(100000, 1)))
	require.NoError(t, err)

	got, err := f.order.GetOrderByID(ctx, owner, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderCode, got.OrderCode)

	_, err = f.order.GetOrderByID(ctx, other, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.order.GetOrderByID(ctx, owner, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	mine, err := f.order.GetMyOrders(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestGetAllOrders_AdminOnlyWithBooker(t *testing.T) {
	f := newFixture(t)
	user, admin := f.newUser(t), f.newAdmin(t)
	ctx := context.Background()

	first, err := f.order.CreateOrder(ctx, user, orderInput(orderItem(100000, 1)))
	require.NoError(t, err)
	second, err := f.order.CreateOrder(ctx, user, orderInput(orderItem(100000, 1)))
	require.NoError(t, err)

	_, err = f.order.GetAllOrders(ctx, user)
	assert.ErrorIs(t, err, ErrForbidden)

	all, err := f.order.GetAllOrders(ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")
	assert.Equal(t, first.ID, all[1].ID)
	require.NotNil(t, all[0].Booker)
	assert.Equal(t, user.UserID, all[0].Booker.ID)
}

func TestSetStatus_Lifecycle(t *testing.T) {
	f := newFixture(t)
	user, admin := f.newUser(t), f.newAdmin(t)
	ctx := context.Background()

	order, err := f.order.CreateOrder(ctx, user, orderInput(orderItem(100000, 1)))
	require.NoError(t, err)

	_, err = f.order.SetStatus(ctx, user, order.ID, "approved")
	assert.ErrorIs(t, err, ErrForbidden, "non-admin rejected before any mutation")

	_, err = f.order.SetStatus(ctx, admin, order.ID, "shipped")
	assert.True(t, IsValidation(err))

	_, err = f.order.SetStatus(ctx, admin, 9999, "approved")
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := f.order.SetStatus(ctx, admin, order.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, model.OrderApproved, updated.Status)

	// ghi lại cùng giá trị thành công, không sinh sự kiện
	_, err = f.order.SetStatus(ctx, admin, order.ID, "approved")
	require.NoError(t, err)

	_, err = f.order.SetStatus(ctx, admin, order.ID, "rejected")
	assert.ErrorIs(t, err, ErrIllegalTransition)

	updated, err = f.order.SetStatus(ctx, admin, order.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, model.OrderCompleted, updated.Status)

	events, err := f.order.GetOrderEvents(ctx, admin, order.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "pending", events[0].From)
	assert.Equal(t, "approved", events[0].To)
	assert.Equal(t, admin.UserID, events[0].ActorID)
	assert.Equal(t, "completed", events[1].To)

	stored, err := f.order.GetOrderByID(ctx, user, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderCompleted, stored.Status)
	assert.Equal(t, model.PaymentPending, stored.PaymentStatus, "status change leaves payment untouched")
}

func TestSetPaymentStatus_Lifecycle(t *testing.T) {
	f := newFixture(t)
	user, admin := f.newUser(t), f.newAdmin(t)
	ctx := context.Background()

	order, err := f.order.CreateOrder(ctx, user, orderInput(orderItem(100000, 1)))
	require.NoError(t, err)

	updated, err := f.order.SetPaymentStatus(ctx, admin, order.ID, "failed")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentFailed, updated.PaymentStatus)

	updated, err = f.order.SetPaymentStatus(ctx, admin, order.ID, "paid")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, model.OrderPending, updated.Status)

	_, err = f.order.SetPaymentStatus(ctx, admin, order.ID, "pending")
	assert.ErrorIs(t, err, ErrIllegalTransition, "paid is terminal")

	_, err = f.order.SetPaymentStatus(ctx, admin, order.ID, "refunded")
	assert.True(t, IsValidation(err))
}

func TestGetPaymentQR(t *testing.T) {
	f := newFixture(t)
	owner, other, admin := f.newUser(t), f.newUser(t), f.newAdmin(t)
	ctx := context.Background()

	order, err := f.order.CreateOrder(ctx, owner, orderInput(orderItem(250000, 2)))
	require.NoError(t, err)

	qr, err := f.order.GetPaymentQR(ctx, owner, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderCode, qr.TransferNote)
	assert.InDelta(t, 500000, qr.Amount, 0.001)
	assert.True(t, strings.HasPrefix(qr.QRCode, "data:image/png;base64,"))

	_, err = f.order.GetPaymentQR(ctx, admin, order.ID)
	assert.NoError(t, err)

	_, err = f.order.GetPaymentQR(ctx, other, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	cash := orderInput(orderItem(100000, 1))
	cash.PaymentMethod = model.PaymentMethodCash
	cashOrder, err := f.order.CreateOrder(ctx, owner, cash)
	require.NoError(t, err)
	_, err = f.order.GetPaymentQR(ctx, owner, cashOrder.ID)
	assert.True(t, IsValidation(err))

	unconfigured := NewOrderService(f.orders, f.users, f.codes, nil, BankAccount{})
	_, err = unconfigured.GetPaymentQR(ctx, owner, order.ID)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	user, admin := f.newUser(t), f.newAdmin(t)
	ctx := context.Background()
	svc := NewOrderService(f.orders, f.users, NewCodeGenerator(store.NewMemorySequenceCounter()), nil, BankAccount{})

	paid, err := svc.CreateOrder(ctx, user, orderInput(orderItem(250000, 2)))
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, user, orderInput(orderItem(100000, 1)))
	require.NoError(t, err)
	_, err = svc.SetPaymentStatus(ctx, admin, paid.ID, "paid")
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, admin, paid.ID, "approved")
	require.NoError(t, err)

	_, err = svc.Stats(ctx, user)
	assert.ErrorIs(t, err, ErrForbidden)

	stats, err := svc.Stats(ctx, admin)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalOrders)
	assert.EqualValues(t, 2, stats.OrdersToday)
	assert.EqualValues(t, 1, stats.ByStatus["approved"])
	assert.EqualValues(t, 1, stats.ByStatus["pending"])
	assert.EqualValues(t, 1, stats.ByPaymentStatus["paid"])
	assert.InDelta(t, 500000, stats.PaidRevenue, 0.001)
	assert.NotEmpty(t, stats.Date)
}
