package config

import (
	"time"
)

// Widget kinds understood by the playground.
const (
	KindAccordion = "accordion"
	KindTabs      = "tabs"
	KindListbox   = "listbox"
)

// Config represents a widget document.
type Config struct {
	Version  string   `yaml:"version" validate:"required,semver"`
	Name     string   `yaml:"name" validate:"required,min=1,max=100"`
	Settings Settings `yaml:"settings,omitempty"`
	Widgets  []Widget `yaml:"widgets" validate:"required,min=1,dive"`
}

// Settings hold defaults shared by every widget of the document.
type Settings struct {
	FocusMode      string `yaml:"focus_mode,omitempty" validate:"omitempty,oneof=roving activedescendant"`
	TextDirection  string `yaml:"text_direction,omitempty" validate:"omitempty,oneof=ltr rtl"`
	TypeaheadDelay string `yaml:"typeahead_delay,omitempty" validate:"omitempty,duration"`
}

// Widget describes one accordion, tab list or listbox.
type Widget struct {
	ID            string   `yaml:"id" validate:"required,widget_id"`
	Kind          string   `yaml:"kind" validate:"required,oneof=accordion tabs listbox"`
	Title         string   `yaml:"title,omitempty" validate:"omitempty,max=80"`
	Orientation   string   `yaml:"orientation,omitempty" validate:"omitempty,oneof=vertical horizontal"`
	TextDirection string   `yaml:"text_direction,omitempty" validate:"omitempty,oneof=ltr rtl"`
	SelectionMode string   `yaml:"selection_mode,omitempty" validate:"omitempty,oneof=follow explicit"`
	Wrap          *bool    `yaml:"wrap,omitempty"`
	SkipDisabled  *bool    `yaml:"skip_disabled,omitempty"`
	Multi         bool     `yaml:"multi,omitempty"`
	Readonly      bool     `yaml:"readonly,omitempty"`
	Disabled      bool     `yaml:"disabled,omitempty"`
	Expanded      []string `yaml:"expanded,omitempty"`
	Selected      []string `yaml:"selected,omitempty"`
	Items         []Item   `yaml:"items" validate:"required,min=1,dive"`
}

// Item is one trigger, tab or option.
type Item struct {
	Value    string `yaml:"value" validate:"required,widget_id"`
	Label    string `yaml:"label" validate:"required,min=1,max=80"`
	Content  string `yaml:"content,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// WrapOr returns the configured wrap flag or def.
func (w Widget) WrapOr(def bool) bool {
	if w.Wrap == nil {
		return def
	}
	return *w.Wrap
}

// SkipDisabledOr returns the configured skip-disabled flag or def.
func (w Widget) SkipDisabledOr(def bool) bool {
	if w.SkipDisabled == nil {
		return def
	}
	return *w.SkipDisabled
}

// Direction returns the widget's text direction, falling back to the
// document setting and then to left-to-right.
func (w Widget) Direction(s Settings) string {
	switch {
	case w.TextDirection != "":
		return w.TextDirection
	case s.TextDirection != "":
		return s.TextDirection
	}
	return "ltr"
}

// Delay returns the typeahead delay. Documents are validated before use,
// so a malformed value only reaches here through hand-built structs and
// falls back to zero, which callers treat as the default.
func (s Settings) Delay() time.Duration {
	if s.TypeaheadDelay == "" {
		return 0
	}
	d, err := time.ParseDuration(s.TypeaheadDelay)
	if err != nil {
		return 0
	}
	return d
}
