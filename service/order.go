package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eldercare_booking/config"
	"eldercare_booking/constants"
	"eldercare_booking/model"
	"eldercare_booking/store"
	"eldercare_booking/utils"

	"github.com/pkg/errors"
)

const elderDocumentFolder = "eldercare/documents"

// BankAccount thông tin tài khoản nhận chuyển khoản thủ công
type BankAccount struct {
	BankID      string
	AccountNo   string
	AccountName string
}

func (b BankAccount) Configured() bool {
	return b.BankID != "" && b.AccountNo != ""
}

type OrderService struct {
	orders   store.OrderStore
	users    store.UserStore
	codes    *CodeGenerator
	uploader ImageUploader
	bank     BankAccount
	now      func() time.Time
}

func NewOrderService(orders store.OrderStore, users store.UserStore, codes *CodeGenerator, uploader ImageUploader, bank BankAccount) *OrderService {
	return &OrderService{
		orders:   orders,
		users:    users,
		codes:    codes,
		uploader: uploader,
		bank:     bank,
		now:      time.Now,
	}
}

func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

func (s *OrderService) CreateOrder(ctx context.Context, actor model.Actor, input *model.CreateOrderInput) (*model.Order, error) {
	if actor.UserID == 0 {
		return nil, ErrUnauthorized
	}
	if err := checkStruct(input); err != nil {
		return nil, err
	}
	if err := VerifyOrderAmounts(input); err != nil {
		return nil, err
	}

	booker, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, errors.Wrap(err, "load booker")
	}

	items := make([]model.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		insurance, err := resolveImage(ctx, s.uploader, in.ElderInsurance, elderDocumentFolder)
		if err != nil {
			return nil, err
		}
		items = append(items, model.OrderItem{
			ServiceName:       strings.TrimSpace(in.ServiceName),
			ServiceType:       in.ServiceType,
			PackageType:       in.PackageType,
			ElderName:         strings.TrimSpace(in.ElderName),
			ElderAge:          *in.ElderAge,
			ElderGender:       strings.TrimSpace(in.ElderGender),
			ElderRelationship: strings.TrimSpace(in.ElderRelationship),
			ElderHealth:       in.ElderHealth,
			ElderInsurance:    insurance,
			StartDate:         in.StartDate.Time,
			EndDate:           in.EndDate.Time,
			PricePerDay:       *in.PricePerDay,
			TotalDays:         *in.TotalDays,
			ItemTotal:         *in.ItemTotal,
			Notes:             in.Notes,
		})
	}

	order := &model.Order{
		BookedBy:      booker.ID,
		BookedByName:  firstNonEmpty(input.BookedByName, booker.Name),
		BookedByPhone: firstNonEmpty(input.BookedByPhone, booker.Phone),
		BookedByEmail: firstNonEmpty(input.BookedByEmail, booker.Email),
		Items:         items,
		PaymentMethod: input.PaymentMethod,
		TotalAmount:   *input.TotalAmount,
		Status:        model.OrderPending,
		PaymentStatus: model.PaymentPending,
	}

	err = withUniqueCode(ctx, s.codes, s.now(), func(code string) error {
		order.ID = 0
		order.OrderCode = code
		return s.orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// VerifyOrderAmounts tính lại số ngày và tiền từng dịch vụ, từ chối nếu khác số client gửi
func VerifyOrderAmounts(input *model.CreateOrderInput) error {
	var sum float64
	for i, item := range input.Items {
		field := fmt.Sprintf("items[%d]", i)
		if item.StartDate == nil || item.EndDate == nil || item.PricePerDay == nil || item.TotalDays == nil || item.ItemTotal == nil {
			return invalid(field, "thiếu thông tin ngày hoặc giá")
		}
		if err := verifyItemAmount(field, item.StartDate.Time, item.EndDate.Time, *item.PricePerDay, *item.TotalDays, *item.ItemTotal); err != nil {
			return err
		}
		sum += *item.ItemTotal
	}
	if input.TotalAmount == nil || !utils.AmountEqual(sum, *input.TotalAmount) {
		return errors.Wrapf(ErrAmountMismatch, "totalAmount phải bằng tổng itemTotal (%.2f)", sum)
	}
	return nil
}

func verifyItemAmount(field string, start, end time.Time, pricePerDay float64, totalDays int, itemTotal float64) error {
	if !end.After(start) {
		return invalid(field+".endDate", "ngày kết thúc phải sau ngày bắt đầu")
	}
	if days := utils.TotalDays(start, end); days != totalDays {
		return errors.Wrapf(ErrAmountMismatch, "%s.totalDays phải là %d", field, days)
	}
	if expected := pricePerDay * float64(totalDays); !utils.AmountEqual(expected, itemTotal) {
		return errors.Wrapf(ErrAmountMismatch, "%s.itemTotal phải là %.2f", field, expected)
	}
	return nil
}

func (s *OrderService) GetMyOrders(ctx context.Context, actor model.Actor) (model.Orders, error) {
	if actor.UserID == 0 {
		return nil, ErrUnauthorized
	}
	orders, err := s.orders.FindByBooker(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "find orders by booker")
	}
	return orders, nil
}

// GetOrderByID chỉ trả về đơn của chính người gọi, đơn của người khác coi như không tồn tại
func (s *OrderService) GetOrderByID(ctx context.Context, actor model.Actor, id uint) (*model.Order, error) {
	if actor.UserID == 0 {
		return nil, ErrUnauthorized
	}
	order, err := s.orders.FindOwned(ctx, id, actor.UserID)
	if err != nil {
		return nil, mapStoreErr(err, "find owned order")
	}
	return order, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context, actor model.Actor) (model.Orders, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find all orders")
	}
	return orders, nil
}

func (s *OrderService) SetStatus(ctx context.Context, actor model.Actor, id uint, status string) (*model.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	to, err := ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.Mutate(ctx, id, actor.UserID, func(o *model.Order) (*store.StatusChange, error) {
		return statusChange(&o.Status, to)
	})
	if err != nil {
		return nil, mapStoreErr(err, "update order status")
	}
	return order, nil
}

func (s *OrderService) SetPaymentStatus(ctx context.Context, actor model.Actor, id uint, paymentStatus string) (*model.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	to, err := ParsePaymentStatus(paymentStatus)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.Mutate(ctx, id, actor.UserID, func(o *model.Order) (*store.StatusChange, error) {
		return paymentChange(&o.PaymentStatus, to)
	})
	if err != nil {
		return nil, mapStoreErr(err, "update order payment status")
	}
	return order, nil
}

func (s *OrderService) GetOrderEvents(ctx context.Context, actor model.Actor, id uint) ([]model.OrderStatusEvent, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return nil, mapStoreErr(err, "find order")
	}
	events, err := s.orders.Events(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "find order events")
	}
	return events, nil
}

// GetPaymentQR QR thông tin chuyển khoản thủ công, nội dung chuyển khoản là mã đơn
func (s *OrderService) GetPaymentQR(ctx context.Context, actor model.Actor, id uint) (*model.PaymentQR, error) {
	if actor.UserID == 0 {
		return nil, ErrUnauthorized
	}
	var (
		order *model.Order
		err   error
	)
	if actor.Role == constants.ROLE_ADMIN {
		order, err = s.orders.FindByID(ctx, id)
	} else {
		order, err = s.orders.FindOwned(ctx, id, actor.UserID)
	}
	if err != nil {
		return nil, mapStoreErr(err, "find order for payment qr")
	}
	if order.PaymentMethod != model.PaymentMethodBank && order.PaymentMethod != model.PaymentMethodMomo {
		return nil, invalid("paymentMethod", "đơn hàng không thanh toán bằng chuyển khoản")
	}
	if !s.bank.Configured() {
		return nil, ErrNotConfigured
	}

	content := fmt.Sprintf("Ngân hàng: %s\nSố tài khoản: %s\nChủ tài khoản: %s\nSố tiền: %.0f VND\nNội dung: %s",
		s.bank.BankID, s.bank.AccountNo, s.bank.AccountName, order.TotalAmount, order.OrderCode)
	qr, err := utils.GenerateQRDataURL(content, 256)
	if err != nil {
		return nil, errors.Wrap(err, "generate payment qr")
	}
	return &model.PaymentQR{
		OrderCode:     order.OrderCode,
		Amount:        order.TotalAmount,
		BankID:        s.bank.BankID,
		AccountNo:     s.bank.AccountNo,
		AccountName:   s.bank.AccountName,
		TransferNote:  order.OrderCode,
		QRCode:        qr,
		PaymentMethod: order.PaymentMethod,
	}, nil
}

// Stats thống kê đơn hàng, "hôm nay" tính theo giờ ICT
func (s *OrderService) Stats(ctx context.Context, actor model.Actor) (*model.OrderStats, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	current := s.now()
	from, to := utils.DayBounds(current, config.BusinessLocation)
	stats, err := s.orders.Summary(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "summarize orders")
	}
	stats.Date = utils.FormatDay(current, config.BusinessLocation)
	return stats, nil
}

func mapStoreErr(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, ErrIllegalTransition) {
		return err
	}
	return errors.Wrap(err, msg)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
