// Package tagvalidator exposes the OCPI format rules to struct-tag based
// validation with github.com/go-playground/validator/v10.
//
// The rules are registered under their ocpiformat names:
//
//	type Tariff struct {
//		ID          string `json:"id" validate:"required,max=36,ocpi_cistring"`
//		LastUpdated string `json:"last_updated" validate:"required,ocpi_datetime"`
//	}
//
// Field names in reported errors are the json tag names, and ToValidationErrors
// converts the library's errors into validator.ValidationErrors so both
// validation styles feed the same translation and response code.
package tagvalidator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/ocpi/pkg/ocpiformat"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Validator wraps the go-playground validator with the OCPI rules registered.
type Validator struct {
	v *playground.Validate
}

// New creates a Validator. Additional rules can be registered with RegisterValidation.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonTagName)

	for _, rule := range ocpiformat.Rules() {
		// Registration only fails for empty tags or nil functions.
		if err := v.RegisterValidation(rule.Name(), fieldFunc(rule)); err != nil {
			panic(fmt.Sprintf("tagvalidator: register %s: %v", rule.Name(), err))
		}
	}

	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field any, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn playground.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

// ValidateStruct is Struct followed by ToValidationErrors.
func (val *Validator) ValidateStruct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	if verrs := ToValidationErrors(err); verrs != nil {
		return verrs
	}
	return err
}

// ToValidationErrors converts go-playground field errors. It returns nil for
// any other error, including invalid validation input.
func ToValidationErrors(err error) validator.ValidationErrors {
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	out := make(validator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		out = append(out, validator.ValidationError{
			Field:          path,
			Message:        message(fe.Tag(), path),
			TranslationKey: "validation." + fe.Tag(),
			TranslationValues: map[string]any{
				"field":  path,
				"param":  fe.Param(),
				fe.Tag(): fe.Param(),
			},
		})
	}
	return out
}

// fieldFunc applies the type gate on the reflected kind so named string types
// are accepted as well.
func fieldFunc(rule ocpiformat.FormatRule) playground.Func {
	return func(fl playground.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return rule.Check(f.String())
	}
}

func message(tag, path string) string {
	if rule, ok := ocpiformat.Lookup(tag); ok {
		return rule.Message(path)
	}
	return fmt.Sprintf("%s failed on the '%s' tag", path, tag)
}

// fieldPath drops the root struct name: "Location.evses[0].uid" -> "evses[0].uid".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func jsonTagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}
