package handler

import (
	"errors"

	"eldercare_booking/constants"
	"eldercare_booking/middleware"
	"eldercare_booking/model"
	"eldercare_booking/service"
	"eldercare_booking/utils"
	"eldercare_booking/validate"

	"github.com/gofiber/fiber/v2"
)

func setAccessCookie(c *fiber.Ctx, result *model.AuthResult) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    result.Token,
		Expires:  result.ExpiresAt,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   true,
	})
}

func Register(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.RegisterInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	result, err := svc.Auth.Register(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "")
	}
	setAccessCookie(c, result)
	return utils.SuccessResponse(c, fiber.StatusCreated, result)
}

func Login(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.LoginInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN, nil)
	}

	result, err := svc.Auth.Login(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_LOGIN, err)
		}
		return respondError(c, err, "")
	}
	setAccessCookie(c, result)
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token")
	return utils.MessageResponse(c, fiber.StatusOK, "Đăng xuất thành công")
}

func GetMe(c *fiber.Ctx) error {
	user, err := svc.Auth.Me(c.UserContext(), middleware.ActorFromLocals(c))
	if err != nil {
		return respondError(c, err, constants.USER_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UpdateProfile(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.UpdateProfileInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	user, err := svc.Auth.UpdateProfile(c.UserContext(), middleware.ActorFromLocals(c), input)
	if err != nil {
		return respondError(c, err, constants.USER_NOT_FOUND)
	}
	return utils.SuccessMessageResponse(c, fiber.StatusOK, constants.PROFILE_UPDATED, user)
}

func GetUsers(c *fiber.Ctx) error {
	users, err := svc.Auth.ListUsers(c.UserContext(), middleware.ActorFromLocals(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.ListResponse(c, users, len(users))
}

func UpdateUserRole(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.UpdateRoleInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	user, err := svc.Auth.UpdateRole(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c), input.Role)
	if err != nil {
		return respondError(c, err, constants.USER_NOT_FOUND)
	}
	return utils.SuccessMessageResponse(c, fiber.StatusOK, constants.ROLE_UPDATED, user)
}

func DeleteUser(c *fiber.Ctx) error {
	err := svc.Auth.DeleteUser(c.UserContext(), middleware.ActorFromLocals(c), validate.IDFromLocals(c))
	if err != nil {
		if service.IsValidation(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CANNOT_DELETE_SELF, err)
		}
		return respondError(c, err, constants.USER_NOT_FOUND)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.USER_DELETED)
}
