package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func NewEstimateValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("period_type", periodTypeValidator),
		},
	}
}

// NewEstimateValidator returns a Validator ready to check estimation requests.
func NewEstimateValidator() *Validator {
	v := NewValidator()
	v.Register(NewEstimateValidationRules()...)
	return v
}
