package handler

import (
	"eldercare_booking/constants"
	"eldercare_booking/middleware"
	"eldercare_booking/model"
	"eldercare_booking/utils"
	"eldercare_booking/validate"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.CreateOrderInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	order, err := svc.Orders.CreateOrder(c.UserContext(), middleware.ActorFromLocals(c), input)
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	return utils.SuccessMessageResponse(c, fiber.StatusCreated, constants.ORDER_CREATED, order)
}

func GetMyOrders(c *fiber.Ctx) error {
	orders, err := svc.Orders.GetMyOrders(c.UserContext(), middleware.ActorFromLocals(c))
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	return utils.ListResponse(c, orders, len(orders))
}

func GetOrderById(c *fiber.Ctx) error {
	order, err := svc.Orders.GetOrderByID(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c))
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetAllOrders(c *fiber.Ctx) error {
	orders, err := svc.Orders.GetAllOrders(c.UserContext(), middleware.ActorFromLocals(c))
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	return utils.ListResponse(c, orders, len(orders))
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.UpdateStatusInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	order, err := svc.Orders.SetStatus(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c), input.Status)
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	return utils.SuccessMessageResponse(c, fiber.StatusOK, constants.STATUS_UPDATED, order)
}

func UpdateOrderPayment(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.UpdatePaymentStatusInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	order, err := svc.Orders.SetPaymentStatus(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c), input.PaymentStatus)
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	return utils.SuccessMessageResponse(c, fiber.StatusOK, constants.PAYMENT_UPDATED, order)
}

func GetOrderEvents(c *fiber.Ctx) error {
	events, err := svc.Orders.GetOrderEvents(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c))
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	return utils.ListResponse(c, events, len(events))
}

func GetPaymentQR(c *fiber.Ctx) error {
	qr, err := svc.Orders.GetPaymentQR(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c))
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, qr)
}

func GetOrderStats(c *fiber.Ctx) error {
	stats, err := svc.Orders.Stats(c.UserContext(), middleware.ActorFromLocals(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
