package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

func periodTypeValidator(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	switch fl.Field().String() {
	case "days", "weeks", "months":
		return true
	default:
		return false
	}
}
