// Package daterange turns the start/end fields of an experience entry into a
// display string such as "Mar 2022 – Present".
package daterange

import (
	"encoding/json"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Kind tells which of the three meanings a Bound carries.
type Kind int

const (
	// Unspecified is an absent or unparseable bound.
	Unspecified Kind = iota
	// Concrete is a calendar date.
	Concrete
	// Ongoing is the "present" sentinel.
	Ongoing
)

const (
	presentSentinel = "present"
	yearMonthLayout = "2006-01"
	dateLayout      = "2006-01-02"
)

// Bound is one side of a date range.
type Bound struct {
	Kind Kind
	// Time is set only for Concrete bounds, always at midnight UTC.
	Time time.Time
}

// None returns an unspecified bound.
func None() Bound {
	return Bound{}
}

// Present returns the ongoing bound.
func Present() Bound {
	return Bound{Kind: Ongoing}
}

// At returns a concrete bound for the given calendar date.
func At(year int, month time.Month, day int) Bound {
	return Bound{Kind: Concrete, Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseBound reads a bound from its data form. Empty input, and input that is
// not a recognizable date, yields an unspecified bound.
func ParseBound(s string) Bound {
	s = strings.TrimSpace(s)
	if s == "" {
		return None()
	}
	if strings.EqualFold(s, presentSentinel) {
		return Present()
	}

	// Year-month granularity is pinned to the first of the month.
	if len(s) == len(yearMonthLayout) {
		s += "-01"
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return At(t.Date())
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return At(t.Date())
	}
	return None()
}

// IsZero reports whether b is unspecified.
func (b Bound) IsZero() bool {
	return b.Kind == Unspecified
}

// String returns the data form of b.
func (b Bound) String() string {
	switch b.Kind {
	case Concrete:
		return b.Time.Format(dateLayout)
	case Ongoing:
		return presentSentinel
	default:
		return ""
	}
}

// MarshalJSON implements json.Marshaler.
func (b Bound) MarshalJSON() ([]byte, error) {
	if b.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(b.String())
}

// UnmarshalJSON implements json.Unmarshaler. null and non-string values
// decode as unspecified.
func (b *Bound) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*b = None()
		return nil
	}
	*b = ParseBound(s)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Bound) MarshalYAML() (interface{}, error) {
	if b.IsZero() {
		return nil, nil
	}
	return b.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Bound) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*b = None()
		return nil
	}
	*b = ParseBound(node.Value)
	return nil
}
