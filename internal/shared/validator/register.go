package validator

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// New builds the validator instance used to check cleaned rows before they
// reach the store, with all common ETL validations registered.
// Domain-specific validations should be registered separately by each domain.
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("flagtext", ValidateFlagText); err != nil {
		return nil, fmt.Errorf("flagtext validator 등록 실패: %w", err)
	}

	slog.Debug("공통 Validator 등록 완료", "validators", "flagtext")
	return v, nil
}
