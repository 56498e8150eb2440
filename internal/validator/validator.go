package validator

import (
	"fmt"

	"eventora_backend/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with the project's custom rules
// and converts tag failures into AppError validation details.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	registerCustomRules(v)
	return &Validator{validate: v}
}

// Struct validates s and returns a validation AppError listing every
// failed field.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.InternalError(err)
	}

	details := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details[fieldErr.Field()] = describeRule(fieldErr)
	}

	return apperrors.ValidationError(details)
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid4":
		return "must be a valid id"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "is-user-role":
		return "must be one of: user, decorator, admin"
	case "is-booking-status":
		return "is not a valid booking status"
	case "is-request-status":
		return "must be approved or rejected"
	default:
		return fmt.Sprintf("failed on rule %q", fe.Tag())
	}
}
