package validate

import (
	"eldercare_booking/model"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return body[model.RegisterInput]()
}

func Login() fiber.Handler {
	return body[model.LoginInput]()
}

func UpdateProfile() fiber.Handler {
	return body[model.UpdateProfileInput]()
}

func UpdateRole() fiber.Handler {
	return body[model.UpdateRoleInput]()
}

func SendOTP() fiber.Handler {
	return body[model.SendOTPInput]()
}

func VerifyOTP() fiber.Handler {
	return body[model.VerifyOTPInput]()
}

func ResetPassword() fiber.Handler {
	return body[model.ResetPasswordInput]()
}
