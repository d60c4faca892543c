package handler

import (
	"eldercare_booking/constants"
	"eldercare_booking/middleware"
	"eldercare_booking/model"
	"eldercare_booking/utils"
	"eldercare_booking/validate"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.CreateBookingInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	booking, err := svc.Bookings.CreateBooking(c.UserContext(), middleware.ActorFromLocals(c), input)
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return utils.SuccessMessageResponse(c, fiber.StatusCreated, constants.BOOKING_CREATED, booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	bookings, err := svc.Bookings.GetMyBookings(c.UserContext(), middleware.ActorFromLocals(c))
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return utils.ListResponse(c, bookings, len(bookings))
}

func GetBookingById(c *fiber.Ctx) error {
	booking, err := svc.Bookings.GetBookingByID(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c))
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func GetAllBookings(c *fiber.Ctx) error {
	bookings, err := svc.Bookings.GetAllBookings(c.UserContext(), middleware.ActorFromLocals(c))
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return utils.ListResponse(c, bookings, len(bookings))
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.UpdateStatusInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	booking, err := svc.Bookings.SetStatus(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c), input.Status)
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return utils.SuccessMessageResponse(c, fiber.StatusOK, constants.STATUS_UPDATED, booking)
}

func UpdateBookingPayment(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.UpdatePaymentStatusInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	booking, err := svc.Bookings.SetPaymentStatus(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c), input.PaymentStatus)
	if err != nil {
		return respondError(c, err, constants.BOOKING_NOT_FOUND)
	}
	return utils.SuccessMessageResponse(c, fiber.StatusOK, constants.PAYMENT_UPDATED, booking)
}

func GetMyHistory(c *fiber.Ctx) error {
	entries, err := svc.History.MyHistory(c.UserContext(), middleware.ActorFromLocals(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.ListResponse(c, entries, len(entries))
}

func GetAllHistory(c *fiber.Ctx) error {
	entries, err := svc.History.AllHistory(c.UserContext(), middleware.ActorFromLocals(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.ListResponse(c, entries, len(entries))
}
