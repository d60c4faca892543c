package handler

import (
	"errors"

	"eldercare_booking/constants"
	"eldercare_booking/model"
	"eldercare_booking/service"
	"eldercare_booking/utils"
	"eldercare_booking/validate"

	"github.com/gofiber/fiber/v2"
)

func SendRegisterOTP(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.SendOTPInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := svc.OTP.SendRegister(c.UserContext(), input.Email); err != nil {
		if service.IsValidation(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMAIL_USED, err)
		}
		return respondError(c, err, "")
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.OTP_SENT)
}

func SendResetOTP(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.SendOTPInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := svc.OTP.SendReset(c.UserContext(), input.Email); err != nil {
		return respondError(c, err, constants.EMAIL_NOT_EXISTS)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.OTP_SENT)
}

func VerifyOTP(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.VerifyOTPInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := svc.OTP.Verify(c.UserContext(), input); err != nil {
		return respondError(c, err, "")
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.OTP_VERIFIED)
}

func ResetPassword(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.ResetPasswordInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := svc.OTP.ResetPassword(c.UserContext(), input); err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.OTP_NOT_VERIFIED, err)
		}
		return respondError(c, err, constants.USER_NOT_FOUND)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.PASSWORD_RESETTED)
}
