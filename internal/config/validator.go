package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	iverrors "github.com/intentvault/widgets/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)

	// Custom-element tag shape: lowercase, at least one hyphen.
	tagPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:-[a-z0-9]+)+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("widget_tag", func(fl validator.FieldLevel) bool {
			return tagPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateManifest performs schema validation plus the cross-check that every
// declared tag is actually defined. defined may be nil to skip the tag check.
func ValidateManifest(m *Manifest, defined func(tag string) bool) error {
	if m == nil {
		return iverrors.NewManifestError("", "manifest is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(m); err != nil {
		return convertValidationError(err)
	}

	if defined == nil {
		return nil
	}
	for i, w := range m.Widgets {
		if !defined(w.Tag) {
			return iverrors.NewManifestError(fieldForWidget(i, "tag"),
				fmt.Sprintf("unknown widget tag %q", w.Tag), nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return iverrors.NewManifestError(field, msg, err)
	}

	return iverrors.NewManifestError("manifest", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForWidget(index int, field string) string {
	return fmt.Sprintf("widgets[%d].%s", index, field)
}
