package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, r := range constantValues {
		if r == value {
			return true
		}
	}
	return false
}

// AmountEqual so sánh tiền với sai số 0.01
func AmountEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// DescribeValidationErrors gộp lỗi validator thành một thông báo dễ đọc
func DescribeValidationErrors(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", e.Namespace(), e.Tag(), e.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", e.Namespace(), e.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
