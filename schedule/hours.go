package schedule

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// HOURS - Validated hour quantity for a single day
// =============================================================================

var (
	hoursPerDayMax = decimal.NewFromInt(24)

	// A leap year has 366 * 24 hours; annual contract hours can never exceed it.
	contractHoursMax = decimal.NewFromInt(366 * 24)
)

// Hours is a non-negative hour quantity of at most 24, the hours a single
// day can carry in configuration (working hours, guardia hours, extra shift
// hours). Day totals in the generated calendar may exceed 24 because extra
// shifts are additive; those totals are plain decimals, not Hours.
type Hours struct {
	Value decimal.Decimal
}

// NewHours validates v as an hour quantity in [0, 24].
func NewHours(v float64) (Hours, error) {
	return NewHoursFromDecimal(decimal.NewFromFloat(v))
}

// NewHoursFromDecimal validates d as an hour quantity in [0, 24].
func NewHoursFromDecimal(d decimal.Decimal) (Hours, error) {
	if d.IsNegative() || d.GreaterThan(hoursPerDayMax) {
		return Hours{}, fmt.Errorf("%w: %s must be between 0 and 24", ErrInvalidHours, d)
	}
	return Hours{Value: d}, nil
}

// HoursZero returns a zero hour quantity.
func HoursZero() Hours { return Hours{Value: decimal.Zero} }

func (h Hours) IsZero() bool          { return h.Value.IsZero() }
func (h Hours) Equal(other Hours) bool { return h.Value.Equal(other.Value) }
func (h Hours) String() string        { return h.Value.String() }

// JSON encoding as a bare decimal number.
func (h Hours) MarshalJSON() ([]byte, error) { return h.Value.MarshalJSON() }

func (h *Hours) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidHours, data)
	}
	parsed, err := NewHoursFromDecimal(d)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// =============================================================================
// WORKING HOURS - Per-day-type configured hours
// =============================================================================

// WorkingHours holds the configured hours for each day type. Weekday covers
// Monday through Friday; Saturday and Sunday have their own rates; Holiday is
// the rate applied to worked holidays.
type WorkingHours struct {
	Weekday  Hours `json:"weekday"`
	Saturday Hours `json:"saturday"`
	Sunday   Hours `json:"sunday"`
	Holiday  Hours `json:"holiday"`
}

// NewWorkingHours validates each per-day-type quantity.
func NewWorkingHours(weekday, saturday, sunday, holiday float64) (WorkingHours, error) {
	wd, err := NewHours(weekday)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("weekday hours: %w", err)
	}
	sat, err := NewHours(saturday)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("saturday hours: %w", err)
	}
	sun, err := NewHours(sunday)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("sunday hours: %w", err)
	}
	hol, err := NewHours(holiday)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("holiday hours: %w", err)
	}
	return WorkingHours{Weekday: wd, Saturday: sat, Sunday: sun, Holiday: hol}, nil
}

// ForWeekday returns the configured hours for a Monday-first weekday index.
func (w WorkingHours) ForWeekday(weekdayIndex int) Hours {
	switch weekdayIndex {
	case 5:
		return w.Saturday
	case 6:
		return w.Sunday
	default:
		return w.Weekday
	}
}

// Equal reports structural equality of all four rates.
func (w WorkingHours) Equal(other WorkingHours) bool {
	return w.Weekday.Equal(other.Weekday) &&
		w.Saturday.Equal(other.Saturday) &&
		w.Sunday.Equal(other.Sunday) &&
		w.Holiday.Equal(other.Holiday)
}

// =============================================================================
// ANNUAL CONTRACT HOURS - Yearly target for balance statistics
// =============================================================================

// AnnualContractHours is the contractual yearly hours target. It feeds the
// aggregate statistics, not the day-status engine.
type AnnualContractHours struct {
	Value decimal.Decimal
}

// NewAnnualContractHours validates v as a positive quantity of at most the
// hours in a leap year.
func NewAnnualContractHours(v float64) (AnnualContractHours, error) {
	d := decimal.NewFromFloat(v)
	if !d.IsPositive() || d.GreaterThan(contractHoursMax) {
		return AnnualContractHours{}, fmt.Errorf("%w: %s must be positive and at most %s",
			ErrInvalidContractHours, d, contractHoursMax)
	}
	return AnnualContractHours{Value: d}, nil
}

func (a AnnualContractHours) Equal(other AnnualContractHours) bool {
	return a.Value.Equal(other.Value)
}

func (a AnnualContractHours) String() string { return a.Value.String() }

// JSON encoding as a bare decimal number.
func (a AnnualContractHours) MarshalJSON() ([]byte, error) { return a.Value.MarshalJSON() }

func (a *AnnualContractHours) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidContractHours, data)
	}
	if !d.IsPositive() || d.GreaterThan(contractHoursMax) {
		return fmt.Errorf("%w: %s must be positive and at most %s",
			ErrInvalidContractHours, d, contractHoursMax)
	}
	a.Value = d
	return nil
}
