package validator

import "github.com/go-playground/validator/v10"

// ValidateFlagText validates the string-typed boolean columns of the target
// schema. The store only accepts the literal texts 'True' and 'False'.
func ValidateFlagText(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "True" || value == "False"
}
