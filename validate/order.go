package validate

import (
	"eldercare_booking/model"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return body[model.CreateOrderInput]()
}

func UpdateStatus() fiber.Handler {
	return body[model.UpdateStatusInput]()
}

func UpdatePaymentStatus() fiber.Handler {
	return body[model.UpdatePaymentStatusInput]()
}

func CreateBooking() fiber.Handler {
	return body[model.CreateBookingInput]()
}
