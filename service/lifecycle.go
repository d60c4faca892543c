package service

import (
	"eldercare_booking/model"
	"eldercare_booking/store"
)

// Bảng chuyển trạng thái hợp lệ. Ghi lại đúng giá trị hiện tại luôn được chấp nhận và không tạo sự kiện.
var statusTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderPending:   {model.OrderApproved, model.OrderRejected},
	model.OrderApproved:  {model.OrderCompleted},
	model.OrderRejected:  {},
	model.OrderCompleted: {},
}

// paid là trạng thái cuối, failed cho phép thanh toán lại
var paymentTransitions = map[model.PaymentStatus][]model.PaymentStatus{
	model.PaymentPending: {model.PaymentPaid, model.PaymentFailed},
	model.PaymentFailed:  {model.PaymentPending, model.PaymentPaid},
	model.PaymentPaid:    {},
}

func ParseOrderStatus(s string) (model.OrderStatus, error) {
	status := model.OrderStatus(s)
	if _, ok := statusTransitions[status]; !ok {
		return "", invalid("status", "trạng thái không hợp lệ: %q", s)
	}
	return status, nil
}

func ParsePaymentStatus(s string) (model.PaymentStatus, error) {
	status := model.PaymentStatus(s)
	if _, ok := paymentTransitions[status]; !ok {
		return "", invalid("paymentStatus", "trạng thái thanh toán không hợp lệ: %q", s)
	}
	return status, nil
}

func CanTransitionStatus(from, to model.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func CanTransitionPayment(from, to model.PaymentStatus) bool {
	if from == to {
		return true
	}
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// statusChange áp dụng chuyển trạng thái lên con trỏ hiện tại, trả về nil nếu giá trị không đổi
func statusChange(current *model.OrderStatus, to model.OrderStatus) (*store.StatusChange, error) {
	from := *current
	if !CanTransitionStatus(from, to) {
		return nil, ErrIllegalTransition
	}
	if from == to {
		return nil, nil
	}
	*current = to
	return &store.StatusChange{Field: model.EventFieldStatus, From: string(from), To: string(to)}, nil
}

func paymentChange(current *model.PaymentStatus, to model.PaymentStatus) (*store.StatusChange, error) {
	from := *current
	if !CanTransitionPayment(from, to) {
		return nil, ErrIllegalTransition
	}
	if from == to {
		return nil, nil
	}
	*current = to
	return &store.StatusChange{Field: model.EventFieldPaymentStatus, From: string(from), To: string(to)}, nil
}
