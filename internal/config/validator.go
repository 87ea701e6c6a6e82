package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(ValidationTagGame, validateGame)
	return v
}

func validateGame(fl validator.FieldLevel) bool {
	_, err := domain.ParseGame(fl.Field().String())
	return err == nil
}

// Validate checks cfg against its struct tags and reports every failing
// setting by environment variable name.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf(ErrMsgValidateConfig, err.Error())
	}

	problems := FormatValidationError(validationErrors)
	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+problems[k])
	}
	return fmt.Errorf(ErrMsgValidateConfig, strings.Join(parts, "; "))
}

// FormatValidationError maps validation errors to readable messages keyed by
// the struct field path.
func FormatValidationError(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		switch e.Tag() {
		case "required":
			out[field] = "is required"
		case "oneof":
			out[field] = fmt.Sprintf("must be one of [%s]", e.Param())
		case ValidationTagGame:
			out[field] = fmt.Sprintf("unknown game %q", e.Value())
		case "min":
			out[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "max":
			out[field] = fmt.Sprintf("must be at most %s", e.Param())
		case "gt", "gte":
			out[field] = "must be positive"
		case "url":
			out[field] = "must be a valid URL"
		case "hostname_port":
			out[field] = "must be host:port"
		default:
			out[field] = "invalid value"
		}
	}
	return out
}
