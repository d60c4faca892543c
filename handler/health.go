package handler

import (
	"time"

	"eldercare_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func Welcome(c *fiber.Ctx) error {
	return utils.MessageResponse(c, fiber.StatusOK, "Sống Vui Khỏe API đang hoạt động")
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
