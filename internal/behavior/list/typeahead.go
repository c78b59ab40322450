package list

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/headless/internal/signal"
)

// DefaultTypeaheadDelay is how long a typeahead query survives without
// another keystroke.
const DefaultTypeaheadDelay = 500 * time.Millisecond

// TypeaheadItem constrains Typeahead to comparable, searchable items.
type TypeaheadItem interface {
	comparable
	SearchableItem
}

// TypeaheadInputs configure query expiry. Now is injectable so expiry is
// evaluated on the next keystroke instead of by a timer.
type TypeaheadInputs struct {
	Delay signal.Signal[time.Duration]
	Now   func() time.Time
}

// Typeahead focuses the first item whose search term starts with the
// characters typed in quick succession.
type Typeahead[T TypeaheadItem] struct {
	focus      *Focus[T]
	inputs     TypeaheadInputs
	query      string
	startIndex int
	last       time.Time
}

// NewTypeahead creates a Typeahead over focus.
func NewTypeahead[T TypeaheadItem](focus *Focus[T], inputs TypeaheadInputs) *Typeahead[T] {
	inputs.Delay = signal.Or(inputs.Delay, DefaultTypeaheadDelay)
	if inputs.Now == nil {
		inputs.Now = time.Now
	}
	return &Typeahead[T]{focus: focus, inputs: inputs}
}

// Query returns the pending query.
func (t *Typeahead[T]) Query() string {
	if t.expired(t.inputs.Now()) {
		return ""
	}
	return t.query
}

// IsTyping reports whether a query is in progress. While typing, Space is
// part of the query rather than a selection key.
func (t *Typeahead[T]) IsTyping() bool {
	return t.Query() != ""
}

// Search appends char to the query and focuses the first match after the
// position the query started from. It returns false when char was not
// consumed.
func (t *Typeahead[T]) Search(char string) bool {
	if utf8.RuneCountInString(char) != 1 {
		return false
	}
	now := t.inputs.Now()
	if t.expired(now) {
		t.query = ""
	}
	if t.query == "" {
		if char == " " {
			return false
		}
		t.startIndex = t.focus.ActiveIndex()
	}

	t.query += strings.ToLower(char)
	t.last = now

	if item, ok := t.match(); ok {
		t.focus.Focus(item)
	}
	return true
}

func (t *Typeahead[T]) expired(now time.Time) bool {
	return t.query != "" && now.Sub(t.last) >= t.inputs.Delay()
}

func (t *Typeahead[T]) match() (T, bool) {
	items := t.focus.Items()
	count := len(items)
	start := t.startIndex
	if start < 0 || start >= count {
		start = -1
	}
	for step := 1; step <= count; step++ {
		i := (start + step) % count
		item := items[i]
		if !t.focus.IsFocusable(item) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(item.SearchTerm()), t.query) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
