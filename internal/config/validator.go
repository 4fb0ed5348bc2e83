package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	presetlyerrors "github.com/alexisbeaulieu97/presetly/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	presetKeyPattern  = regexp.MustCompile(`^[a-z0-9-_]+$`)
	storageKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	themeModes        = map[string]struct{}{"light": {}, "dark": {}, "system": {}}
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			_, ok := themeModes[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("preset_key", func(fl validator.FieldLevel) bool {
			return presetKeyPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("storage_key", func(fl validator.FieldLevel) bool {
			return storageKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return presetlyerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return presetlyerrors.NewValidationError("config", err.Error(), err)
	}

	first := fieldErrs[0]
	field := strings.TrimPrefix(first.Namespace(), "Config.")

	var message string
	switch first.Tag() {
	case "required":
		message = "field is required"
	case "semver":
		message = fmt.Sprintf("%q is not a valid version string", first.Value())
	case "theme_mode":
		message = fmt.Sprintf("%q is not one of light, dark, system", first.Value())
	case "preset_key":
		message = fmt.Sprintf("%q must contain only lowercase letters, digits, hyphens and underscores", first.Value())
	case "storage_key":
		message = fmt.Sprintf("%q is not a valid storage key", first.Value())
	case "oneof":
		message = fmt.Sprintf("%q is not one of %s", first.Value(), first.Param())
	case "max":
		message = fmt.Sprintf("must be at most %s characters", first.Param())
	default:
		message = fmt.Sprintf("failed %s validation", first.Tag())
	}

	return presetlyerrors.NewValidationError(field, message, err)
}
