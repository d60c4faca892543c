package handler

import (
	"eldercare_booking/constants"
	"eldercare_booking/logger"
	"eldercare_booking/service"
	"eldercare_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Services các service được handler dùng, gán một lần lúc khởi động qua Setup
type Services struct {
	Auth       *service.AuthService
	Orders     *service.OrderService
	Bookings   *service.BookingService
	History    *service.HistoryService
	OTP        *service.OTPService
	Activities *service.ActivityService
	Chat       *service.ChatService
	Uploads    *service.UploadService
}

var svc Services

func Setup(s Services) {
	svc = s
}

// respondError chuyển lỗi service sang envelope và mã HTTP tương ứng
func respondError(c *fiber.Ctx, err error, notFoundMessage string) error {
	switch {
	case service.IsValidation(err):
		if errors.Is(err, service.ErrAmountMismatch) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.AMOUNT_MISMATCH, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrUnauthorized):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, err)
	case errors.Is(err, service.ErrForbidden):
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_ONLY, err)
	case errors.Is(err, service.ErrNotFound):
		if notFoundMessage == "" {
			notFoundMessage = constants.NOT_FOUND_RECORDS
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFoundMessage, err)
	case errors.Is(err, service.ErrIllegalTransition):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_TRANSITION, err)
	case errors.Is(err, service.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_ACCOUNT, err)
	case errors.Is(err, service.ErrDuplicateCode):
		logger.Error("Không sinh được mã đơn duy nhất", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ORDER_CREATE_FAILED, err)
	case errors.Is(err, service.ErrInvalidOTP):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.OTP_INVALID, err)
	case errors.Is(err, service.ErrEmailDelivery):
		logger.Error("Gửi email OTP thất bại", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.OTP_EMAIL_FAILED, err)
	case errors.Is(err, service.ErrAIUnavailable):
		logger.Error("AI Chat Error", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.AI_UNAVAILABLE, err)
	case errors.Is(err, service.ErrNotConfigured):
		logger.Warning("Thiếu cấu hình: " + err.Error())
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_NOT_CONFIGURED, err)
	default:
		logger.Error(c.Method()+" "+c.Path(), err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}
