package config

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	headlesserrors "github.com/alexisbeaulieu97/headless/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	widgetIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("widget_id", func(fl validator.FieldLevel) bool {
			return widgetIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			d, err := time.ParseDuration(fl.Field().String())
			return err == nil && d > 0
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return headlesserrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Widgets))
	for i, w := range cfg.Widgets {
		if first, exists := seen[w.ID]; exists {
			return headlesserrors.NewValidationError(fieldForWidget(i, "id"),
				fmt.Sprintf("duplicate widget id %q (first used by widgets[%d])", w.ID, first), nil)
		}
		seen[w.ID] = i

		if err := ValidateWidget(w, i); err != nil {
			return err
		}
	}

	return nil
}

// ValidateWidget checks the rules that span fields of one widget: unique
// item values, state lists that reference known items, and the single
// value limit of non-multi widgets.
func ValidateWidget(w Widget, index int) error {
	v := validatorInstance()
	if err := v.Struct(w); err != nil {
		return convertValidationError(err)
	}

	values := make(map[string]struct{}, len(w.Items))
	for j, item := range w.Items {
		if _, exists := values[item.Value]; exists {
			return headlesserrors.NewValidationError(fieldForItem(index, j, "value"),
				fmt.Sprintf("duplicate item value %q", item.Value), nil)
		}
		values[item.Value] = struct{}{}
	}

	switch w.Kind {
	case KindAccordion:
		if len(w.Selected) > 0 {
			return headlesserrors.NewValidationError(fieldForWidget(index, "selected"), "accordions expand, use expanded", nil)
		}
		if w.Readonly {
			return headlesserrors.NewValidationError(fieldForWidget(index, "readonly"), "only listboxes can be readonly", nil)
		}
		return checkState(index, "expanded", w.Expanded, values, w.Multi)
	case KindTabs:
		if w.Multi {
			return headlesserrors.NewValidationError(fieldForWidget(index, "multi"), "tabs select a single tab", nil)
		}
		if w.Readonly {
			return headlesserrors.NewValidationError(fieldForWidget(index, "readonly"), "only listboxes can be readonly", nil)
		}
		if len(w.Expanded) > 0 {
			return headlesserrors.NewValidationError(fieldForWidget(index, "expanded"), "tabs select, use selected", nil)
		}
		return checkState(index, "selected", w.Selected, values, false)
	default:
		if len(w.Expanded) > 0 {
			return headlesserrors.NewValidationError(fieldForWidget(index, "expanded"), "listboxes select, use selected", nil)
		}
		return checkState(index, "selected", w.Selected, values, w.Multi)
	}
}

func checkState(index int, field string, state []string, values map[string]struct{}, multi bool) error {
	if !multi && len(state) > 1 {
		return headlesserrors.NewValidationError(fieldForWidget(index, field),
			fmt.Sprintf("%d values listed but only one is allowed without multi", len(state)),
			headlesserrors.ErrTooManyValues)
	}
	listed := make(map[string]struct{}, len(state))
	for _, value := range state {
		if _, ok := values[value]; !ok {
			return headlesserrors.NewValidationError(fieldForWidget(index, field),
				fmt.Sprintf("references unknown item %q", value), headlesserrors.ErrUnknownValue)
		}
		if _, dup := listed[value]; dup {
			return headlesserrors.NewValidationError(fieldForWidget(index, field),
				fmt.Sprintf("lists %q twice", value), nil)
		}
		listed[value] = struct{}{}
	}
	return nil
}
