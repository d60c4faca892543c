package service

import (
	"eldercare_booking/constants"
	"eldercare_booking/model"
	"eldercare_booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

// notblank chặn chuỗi chỉ toàn khoảng trắng mà required vẫn cho qua
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// checkStruct kiểm tra lại input cho các caller không đi qua middleware validate
func checkStruct(input interface{}) error {
	if err := validate.Struct(input); err != nil {
		return &ValidationError{Message: utils.DescribeValidationErrors(err)}
	}
	return nil
}

func requireAdmin(actor model.Actor) error {
	if actor.UserID == 0 {
		return ErrUnauthorized
	}
	if actor.Role != constants.ROLE_ADMIN {
		return ErrForbidden
	}
	return nil
}
