package models

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// dateLayout is the on-disk and display format for dates.
const dateLayout = "2006-01-02"

// Date is an optional calendar date. The zero value is "unset"; absence is
// carried in the type itself rather than a magic minimum value.
type Date struct {
	t   time.Time
	set bool
}

// NewDate creates a set date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), set: true}
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a date in YYYY-MM-DD form. An empty string parses to the
// unset date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsSet reports whether the date holds a value.
func (d Date) IsSet() bool {
	return d.set
}

// Time returns the underlying time. Only meaningful when IsSet is true.
func (d Date) Time() time.Time {
	return d.t
}

// Before reports whether d is before other. An unset date sorts before any
// set date; two unset dates are not before each other.
func (d Date) Before(other Date) bool {
	if !d.set {
		return other.set
	}
	if !other.set {
		return false
	}
	return d.t.Before(other.t)
}

// Equal reports whether two dates are both unset or hold the same day.
func (d Date) Equal(other Date) bool {
	if d.set != other.set {
		return false
	}
	return !d.set || d.t.Equal(other.t)
}

// String renders the date as YYYY-MM-DD, or the empty string when unset.
func (d Date) String() string {
	if !d.set {
		return ""
	}
	return d.t.Format(dateLayout)
}

// MarshalYAML encodes the date as a YYYY-MM-DD scalar, or an empty scalar
// when unset.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML decodes a YYYY-MM-DD scalar. Empty or null scalars decode
// to the unset date.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("decoding date: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
