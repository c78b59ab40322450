// Package list implements the shared behaviours of collection widgets:
// which item owns focus, how the active cursor moves, which items are
// selected, and typeahead search.
//
// Every behaviour reads its inputs through signal accessors on each call.
// The item slice belongs to the host and may be replaced between calls;
// items are identified by identity within the current snapshot.
package list
