package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/npratt/splitchance/internal/settings"
)

// Validate checks the configuration and reports every invalid field.
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.RegisterValidation("colorhex", validateColorHex); err != nil {
		return fmt.Errorf("register validation: %w", err)
	}

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	return formatValidationErrors(verrs)
}

// validateColorHex accepts #RRGGBB and #RRGGBBAA, with or without '#'.
func validateColorHex(fl validator.FieldLevel) bool {
	_, err := settings.ParseHex(fl.Field().String())
	return err == nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "colorhex":
			msgs = append(msgs, fmt.Sprintf("%s: %q is not a hex color", e.Namespace(), e.Value()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s: must be %s %s", e.Namespace(), boundWord(e.Tag()), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", e.Namespace(), e.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func boundWord(tag string) string {
	if tag == "min" {
		return "at least"
	}
	return "at most"
}
