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

func UploadSignature(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.UploadSignatureInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	signature, err := svc.Uploads.Signature(middleware.ActorFromLocals(c), input)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPLOAD_NOT_CONFIGURED, err)
		}
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, signature)
}
