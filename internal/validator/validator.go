// Package validator wraps go-playground/validator with readable messages and domain errors.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator satisfies echo.Validator and is shared by the use cases.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the domain tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name so messages match what clients send.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	_ = v.RegisterValidation("sex", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseSex(fl.Field().String())

		return ok
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseProductCategory(fl.Field().String())

		return ok
	})
	// maxbytes bounds the UTF-8 encoded length, unlike max which counts runes.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}

		return len(fl.Field().String()) <= limit
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{v: v}
}

// Validate checks struct tags. Violations come back as a validation AppError
// listing every offending field.
func (cv *Validator) Validate(i any) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}

		return domainerrors.NewValidationError(strings.Join(msgs, "; "))
	}

	return errors.Wrap(err, "validation failed")
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "sex":
		return field + " must be Male or Female"
	case "category":
		return field + " must be one of SUIT, TSHIRT, TROUSER, GAUNI"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
