package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens a validator error into a field → message map
// so all failures are reported together.
func GetValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = err.Error()
		return out
	}

	for _, fieldErr := range validationErrors {
		field := jsonFieldName(fieldErr)
		switch fieldErr.Tag() {
		case "required":
			out[field] = fmt.Sprintf("%s is required.", field)
		case "email":
			out[field] = fmt.Sprintf("%s must be a valid email address.", field)
		case "oneof":
			out[field] = fmt.Sprintf("%s must be one of: %s.", field, fieldErr.Param())
		case "min":
			out[field] = fmt.Sprintf("%s is too short.", field)
		case "max":
			out[field] = fmt.Sprintf("%s is too long.", field)
		case "uuid":
			out[field] = fmt.Sprintf("%s must be a valid UUID.", field)
		default:
			out[field] = fmt.Sprintf("%s is invalid.", field)
		}
	}

	return out
}

// jsonFieldName reports the snake_case wire name of the failing field. The
// validator only knows the Go struct field, so the name is derived the same
// way encoding/json derives tags in our DTOs.
func jsonFieldName(fieldErr validator.FieldError) string {
	var b strings.Builder
	for i, r := range fieldErr.Field() {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(b.String(), "_i_d", "_id")
}

// CheckAllowedFields inspects the raw body keys against an allow-list and
// returns the offending keys, if any. Used by update endpoints before the
// body is bound to a DTO.
func CheckAllowedFields(body []byte, allowed []string) ([]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		allowedSet[key] = struct{}{}
	}

	var offending []string
	for key := range raw {
		if _, ok := allowedSet[key]; !ok {
			offending = append(offending, key)
		}
	}
	return offending, nil
}
