package schedule

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar date (UTC midnight)
// =============================================================================

// Date is a calendar date at UTC midnight. The engine never deals with
// times of day or timezones; a Date is the only temporal coordinate.
type Date struct {
	Time time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an arbitrary time to its UTC calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a date in "2006-01-02" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a date in YYYY-MM-DD form", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.normalize().Before(other.normalize()) }
func (d Date) After(other Date) bool         { return d.normalize().After(other.normalize()) }
func (d Date) Equal(other Date) bool         { return d.normalize().Equal(other.normalize()) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.normalize().AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }
func (d Date) IsZero() bool      { return d.Time.IsZero() }

// WeekdayIndex returns the Monday-first weekday index: 0=Monday .. 6=Sunday.
func (d Date) WeekdayIndex() int {
	return (int(d.Time.Weekday()) + 6) % 7
}

// ISOWeek returns the ISO-8601 week number of the date.
func (d Date) ISOWeek() int {
	_, week := d.normalize().ISOWeek()
	return week
}

// WeekdayName returns the localized (Spanish) weekday name.
func (d Date) WeekdayName() string { return weekdayNames[d.WeekdayIndex()] }

// MonthName returns the localized (Spanish) month name.
func (d Date) MonthName() string { return monthNames[int(d.Time.Month())-1] }

func (d Date) String() string { return d.normalize().Format("2006-01-02") }

// JSON encoding as "2006-01-02".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// =============================================================================
// LOCALIZED NAMES
// =============================================================================

var weekdayNames = [7]string{
	"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo",
}

var monthNames = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// =============================================================================
// DATE UTILITIES
// =============================================================================

// DaysBetween returns the number of calendar days from one date to another.
func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

// StartOfYear returns January 1 of the given year.
func StartOfYear(year int) Date { return NewDate(year, time.January, 1) }

// EndOfYear returns December 31 of the given year.
func EndOfYear(year int) Date { return NewDate(year, time.December, 31) }
