package dashboard

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	errs "github.com/fintrack/go-finance-client/internal/errors"
)

var validate = validator.New()

// validateStruct runs the validate tags on a form and folds any violations
// into a single ErrValidation with readable field messages.
func validateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatFieldError(e))
	}
	return errs.Wrapf(errs.ErrValidation, "%s", strings.Join(messages, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// parseAmount converts a form amount string into a decimal, rejecting
// non-numeric and non-positive values before any network call.
func parseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, errs.Wrapf(errs.ErrValidation, "%s must be a number", field)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errs.Wrapf(errs.ErrValidation, "%s must be a positive number", field)
	}
	return amount, nil
}
