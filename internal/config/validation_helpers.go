package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	headlesserrors "github.com/alexisbeaulieu97/headless/pkg/errors"
)

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return headlesserrors.NewValidationError(field, msg, err)
	}

	return headlesserrors.NewValidationError("config", err.Error(), err)
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

func fieldForItem(widget, item int, field string) string {
	return fmt.Sprintf("widgets[%d].items[%d].%s", widget, item, field)
}
