package validate

import (
	"errors"
	"strconv"

	"eldercare_booking/constants"
	"eldercare_booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// notblank chặn chuỗi chỉ toàn khoảng trắng mà required vẫn cho qua
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// Khóa Locals dùng chung giữa validate và handler
const (
	KeyInputID = "inputId"
	KeyInput   = "input"
	KeyFilter  = "filter"
)

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals(KeyInputID, valueKey)
		return c.Next()
	}
}

// body parse JSON vào T, chạy validator rồi lưu con trỏ *T vào Locals("input")
func body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(T)

		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New(utils.DescribeValidationErrors(err)))
		}

		c.Locals(KeyInput, input)
		return c.Next()
	}
}

// InputFromLocals lấy input đã được validate, false nếu middleware chưa chạy
func InputFromLocals[T any](c *fiber.Ctx) (*T, bool) {
	input, ok := c.Locals(KeyInput).(*T)
	return input, ok
}

func IDFromLocals(c *fiber.Ctx) uint {
	id, _ := c.Locals(KeyInputID).(int)
	return uint(id)
}
