package apperrors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FromValidation turns validator failures into a 422 whose details map each
// offending field to a readable message. Any other error becomes a 422 with
// the raw message, which covers malformed JSON and type mismatches.
func FromValidation(err error) *AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Validation("invalid request", map[string]any{"error": err.Error()}).WithCause(err)
	}
	fields := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return Validation("request validation failed", fields).WithCause(err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	case "dive":
		return "contains an invalid value"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
