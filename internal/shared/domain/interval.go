package domain

import "time"

// Interval is a closed time span. A zero-length interval (From == To) is valid.
type Interval struct {
	From time.Time
	To   time.Time
}

// NewInterval creates an interval, rejecting inverted bounds.
func NewInterval(from, to time.Time) (Interval, error) {
	i := Interval{From: from, To: to}
	if !i.IsValid() {
		return Interval{}, ErrInvalidInterval
	}
	return i, nil
}

// ErrInvalidInterval is returned when from is after to.
var ErrInvalidInterval = NewError(ErrValidation, "invalid time interval")

// IsValid reports whether From <= To.
func (i Interval) IsValid() bool {
	return !i.From.After(i.To)
}

// Contains reports whether other lies within i, bounds included.
func (i Interval) Contains(other Interval) bool {
	return !other.From.Before(i.From) && !other.To.After(i.To)
}

// Overlaps reports whether the committed interval i conflicts with the
// proposed interval p.
//
// Touching intervals do not conflict, but a zero-length interval sitting on
// either boundary of a committed one does.
func (i Interval) Overlaps(p Interval) bool {
	switch {
	case i.From.Before(p.From) && i.To.After(p.From):
		return true
	case i.To.After(p.To) && i.From.Before(p.To):
		return true
	case !i.From.Before(p.From) && !i.To.After(p.To):
		return true
	case !i.From.After(p.From) && !i.To.Before(p.To):
		return true
	}
	return false
}

// Equal reports whether both bounds are the same instant.
func (i Interval) Equal(other Interval) bool {
	return i.From.Equal(other.From) && i.To.Equal(other.To)
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.To.Sub(i.From)
}
