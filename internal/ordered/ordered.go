// Package ordered provides an insertion-ordered name registry with fuzzy
// "did you mean" lookups.
package ordered

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrDuplicate reports a second registration under one name.
	ErrDuplicate = errors.New("name already registered")

	// ErrEmptyName reports a registration without a display name.
	ErrEmptyName = errors.New("name must not be empty")
)

// maxSuggestDistance bounds how far a misspelling may be from a known name.
const maxSuggestDistance = 3

// Map is an insertion-ordered mapping from display name to value. The zero
// value is an empty map ready for use.
//
// Map is not safe for concurrent mutation; registrations happen before
// sessions are opened.
type Map[T any] struct {
	names  []string
	values map[string]T
}

// Add registers v under name. Names are unique and keep their position for
// the lifetime of the map.
func (m *Map[T]) Add(name string, v T) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if m.values == nil {
		m.values = make(map[string]T)
	}
	if _, ok := m.values[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	m.names = append(m.names, name)
	m.values[name] = v
	return nil
}

// Get returns the value registered under name.
func (m *Map[T]) Get(name string) (T, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Names returns registered names in registration order.
func (m *Map[T]) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Values returns registered values in registration order.
func (m *Map[T]) Values() []T {
	out := make([]T, 0, len(m.names))
	for _, n := range m.names {
		out = append(out, m.values[n])
	}
	return out
}

// Len returns the number of registrations.
func (m *Map[T]) Len() int {
	return len(m.names)
}

// Suggest returns the registered name closest to name, or "" when nothing is
// close enough.
func (m *Map[T]) Suggest(name string) string {
	return Suggest(name, m.names)
}

// Suggest returns the candidate with the smallest case-insensitive edit
// distance to name, or "" when none is within a few edits. Ties keep the
// earlier candidate.
func Suggest(name string, candidates []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	lower := strings.ToLower(name)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// UnknownError reports a lookup of an unregistered name.
type UnknownError struct {
	Kind       string
	Name       string
	Suggestion string
	sentinel   error
}

// NewUnknownError builds an UnknownError that matches sentinel with errors.Is.
func NewUnknownError(sentinel error, kind, name, suggestion string) *UnknownError {
	return &UnknownError{Kind: kind, Name: name, Suggestion: suggestion, sentinel: sentinel}
}

func (e *UnknownError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown %s %q (did you mean %q?)", e.Kind, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// Is reports whether target is the sentinel this error was built with.
func (e *UnknownError) Is(target error) bool {
	return e.sentinel != nil && target == e.sentinel
}
