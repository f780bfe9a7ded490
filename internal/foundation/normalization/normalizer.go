// Package normalization maps loosely formatted user input (config values,
// CLI flags) onto typed enum values.
package normalization

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Normalizer provides type-safe string-to-enum normalization.
type Normalizer[T comparable] struct {
	name         string
	validValues  map[string]T
	defaultValue T
	validKeys    []string // Cached for error messages
}

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
// Keys are trimmed and lowercased.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[clean(k)] = v
	}
	return &Normalizer[T]{
		validValues:  normalized,
		defaultValue: defaultValue,
		validKeys:    slices.Sorted(maps.Keys(normalized)),
	}
}

// NewEnumNormalizer is NewNormalizer with a name used in validation errors.
func NewEnumNormalizer[T comparable](name string, values map[string]T, defaultValue T) *Normalizer[T] {
	n := NewNormalizer(values, defaultValue)
	n.name = name
	return n
}

// Normalize converts raw to the enum type, returning the default value if
// it is not recognized.
func (n *Normalizer[T]) Normalize(raw string) T {
	if value, ok := n.validValues[clean(raw)]; ok {
		return value
	}
	return n.defaultValue
}

// NormalizeWithValidation converts raw to the enum type.
// Unrecognized input yields the zero value and an error listing valid keys.
func (n *Normalizer[T]) NormalizeWithValidation(raw string) (T, error) {
	if value, ok := n.validValues[clean(raw)]; ok {
		return value, nil
	}
	var zero T
	if n.name == "" {
		return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.validKeys)
	}
	return zero, fmt.Errorf("invalid %s %q, valid options: %v", n.name, raw, n.validKeys)
}

// IsValid reports whether raw maps to a known value.
func (n *Normalizer[T]) IsValid(raw string) bool {
	_, ok := n.validValues[clean(raw)]
	return ok
}

// ValidValues returns all valid normalized keys, sorted.
func (n *Normalizer[T]) ValidValues() []string {
	return slices.Clone(n.validKeys)
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
