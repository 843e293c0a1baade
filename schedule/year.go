package schedule

import (
	"fmt"
	"time"
)

// =============================================================================
// YEAR - The temporal anchor for a calendar generation
// =============================================================================

// Years are accepted within this window around the current year.
const (
	yearsBack    = 2
	yearsForward = 5
)

// Year is a validated 4-digit calendar year. It is the sole temporal anchor:
// every other validated type that needs year-bounds checking takes a Year.
type Year struct {
	Value int
}

// NewYear validates n as a 4-digit year within [current-2, current+5].
func NewYear(n int) (Year, error) {
	if n < 1000 || n > 9999 {
		return Year{}, fmt.Errorf("%w: %d is not a 4-digit year", ErrYearOutOfRange, n)
	}
	current := time.Now().Year()
	min, max := current-yearsBack, current+yearsForward
	if n < min || n > max {
		return Year{}, fmt.Errorf("%w: %d must be between %d and %d", ErrYearOutOfRange, n, min, max)
	}
	return Year{Value: n}, nil
}

// CurrentYear returns the current year. It always succeeds: the current year
// is by definition inside the allowed window.
func CurrentYear() Year {
	return Year{Value: time.Now().Year()}
}

// IsLeap applies the Gregorian rule: divisible by 4, except centuries not
// divisible by 400.
func (y Year) IsLeap() bool {
	return y.Value%4 == 0 && (y.Value%100 != 0 || y.Value%400 == 0)
}

// Days returns 366 for leap years, 365 otherwise.
func (y Year) Days() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// Start returns January 1 of the year.
func (y Year) Start() Date { return StartOfYear(y.Value) }

// End returns December 31 of the year.
func (y Year) End() Date { return EndOfYear(y.Value) }

// Contains reports whether d falls inside the year.
func (y Year) Contains(d Date) bool { return d.Year() == y.Value }

func (y Year) String() string { return fmt.Sprintf("%d", y.Value) }
