package validate

import (
	"eldercare_booking/constants"
	"eldercare_booking/model"
	"eldercare_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func Activity() fiber.Handler {
	return body[model.ActivityInput]()
}

func FilterActivity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.FilterActivity
		if err := c.QueryParser(&filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		c.Locals(KeyFilter, filter)
		return c.Next()
	}
}

func Chat() fiber.Handler {
	return body[model.ChatInput]()
}

// UploadSignature body có thể rỗng, khi đó dùng thư mục giấy tờ mặc định
func UploadSignature() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(model.UploadSignatureInput)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
			}
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		c.Locals(KeyInput, input)
		return c.Next()
	}
}
