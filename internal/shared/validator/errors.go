package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Describe converts a validator error into a readable, single-line message
// suitable for a row-failure log entry.
func Describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	// 첫 번째 validation error만 보고 (행 단위 요약이므로 충분)
	fieldErr := validationErrors[0]
	return getErrorMessage(fieldErr)
}

// getErrorMessage returns a friendly message for a single field error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' 필드는 필수 항목입니다.", fe.Field())
	case "flagtext":
		return fmt.Sprintf("'%s' 필드는 'True' 또는 'False'여야 합니다.", fe.Field())
	default:
		return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
	}
}
