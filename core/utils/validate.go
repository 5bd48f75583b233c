package utils

import (
	"errors"
	"fmt"
	"strings"

	"menu-manager/core/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}
	return v
}

// Validate checks the struct tags of value and returns an InvalidArgument error describing
// every failed rule.
func Validate(value any) error {
	if err := validate.Struct(value); err != nil {
		return validationError(err)
	}
	return nil
}

// ValidateValue checks a single value against a tag such as "notblank".
func ValidateValue(name string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return apperror.InvalidArgument("%s failed rule '%s'", name, tag)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.InvalidArgument("%s", err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s=%s', got '%v'", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s'", fe.Namespace(), fe.Tag()))
	}
	return apperror.InvalidArgument("%s", strings.Join(msgs, "; "))
}
