// Package validation checks entity schemas with go-playground/validator.
// Field names in messages are the JSON names clients send.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/localnerve/daycare-data/internal/types"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"min":   "%s must be at least %s characters",
}

// GetValidator returns the shared validator instance
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})

	return validate
}

// Validate checks s against its validate tags.
// All field failures are aggregated into one 422 ServiceError.
func Validate(s interface{}) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return types.NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, translateError(fe))
	}

	return types.NewValidationError(strings.Join(messages, ", "))
}

// DecodeError reports a request body that could not be decoded into an entity,
// such as a field of the wrong JSON type
func DecodeError(err error) error {
	return types.NewValidationError(fmt.Sprintf("invalid request body: %v", err))
}

func translateError(fe validator.FieldError) string {
	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field())
	}
	if template, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field(), strings.ReplaceAll(fe.Param(), "'", ""))
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
