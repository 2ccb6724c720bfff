package errors

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MaxQueryLength bounds the free-text query accepted from callers.
const MaxQueryLength = 256

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct runs the `validate` struct tags of v and converts the first
// failure into an INVALID_INPUT error naming the offending field.
func ValidateStruct(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return New(ErrCodeInvalidInput, "Invalid %s", strings.ToLower(fe.Field()))
	}
	return Wrap(ErrCodeInvalidInput, err, "invalid input")
}

// ValidateQuery validates a free-text search query.
//
// The validation rules are intentionally conservative:
//   - No empty (or whitespace-only) queries
//   - No control characters
//   - Maximum length of MaxQueryLength bytes
func ValidateQuery(q string) error {
	if strings.TrimSpace(q) == "" {
		return New(ErrCodeInvalidInput, "Query required")
	}

	if len(q) > MaxQueryLength {
		return New(ErrCodeInvalidInput, "Query too long (max %d characters)", MaxQueryLength)
	}

	for _, r := range q {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "Query contains invalid control characters")
		}
	}
	return nil
}
