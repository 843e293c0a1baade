/*
Package schedule provides the validated value types for work-calendar derivation.

PURPOSE:
  This package contains the building blocks the calendar engine is composed
  from: years, dates, hour quantities, work cycles and the annual exception
  records (holidays, vacation periods, guardias, extra shifts). Every type is
  constructed through a factory function that either returns a valid value or
  a human-readable error; once constructed, a value is never mutated.

KEY CONCEPTS IN THIS FILE (types.go):
  - Holiday: A calendar date that is a public holiday, optionally worked
  - VacationPeriod: An inclusive date range of vacation
  - Guardia: An on-call/covering shift on a rest day or holiday
  - ExtraShift: Additional hours on any day, purely additive
  - ContractStartDate: Mid-year employment start, anchored to a Year
  - EmploymentStatus / HolidayPolicy: Configuration switches

DESIGN PRINCIPLES:
  1. Immutability: Values are built once by their factory and never changed
  2. Precision: Uses decimal.Decimal for hours to avoid floating-point errors
  3. Validation at the edge: Out-of-range input is rejected at construction,
     never silently coerced
  4. Errors are values: Expected validation failures are returned, not thrown

SEE ALSO:
  - year.go: Year validation and leap-year arithmetic
  - date.go: Day-granularity calendar dates
  - hours.go: Hour quantities and per-day-type working hours
  - cycle.go: Weekly and parts work cycles
*/
package schedule

import (
	"fmt"
	"strings"
)

// =============================================================================
// LIMITS
// =============================================================================

const (
	// MaxHolidayNameLength bounds the optional holiday name.
	MaxHolidayNameLength = 100

	// MaxDescriptionLength bounds free-text descriptions on vacation
	// periods, guardias and extra shifts.
	MaxDescriptionLength = 200
)

// =============================================================================
// EMPLOYMENT STATUS
// =============================================================================

// EmploymentStatus states whether the worker was already employed when the
// target year started. It decides which cycle anchoring applies: workers who
// started mid-year get NotEmployed days before their contract start, workers
// employed before the year may anchor a parts cycle with a CycleOffset.
type EmploymentStatus string

const (
	// EmploymentWorkedBefore: employed before January 1 of the target year.
	EmploymentWorkedBefore EmploymentStatus = "worked_before"

	// EmploymentStartedThisYear: contract starts inside the target year.
	// Requires a ContractStartDate.
	EmploymentStartedThisYear EmploymentStatus = "started_this_year"
)

// ParseEmploymentStatus converts a configuration string to an EmploymentStatus.
// The empty string is accepted and treated as "worked before".
func ParseEmploymentStatus(s string) (EmploymentStatus, error) {
	switch EmploymentStatus(s) {
	case EmploymentWorkedBefore, "":
		return EmploymentWorkedBefore, nil
	case EmploymentStartedThisYear:
		return EmploymentStartedThisYear, nil
	default:
		return "", fmt.Errorf("unknown employment status %q", s)
	}
}

// =============================================================================
// HOLIDAY POLICY
// =============================================================================

// HolidayPolicy controls whether a holiday marked as "worked" is honored as a
// working day or forced to non-work.
type HolidayPolicy string

const (
	// PolicyRespectHolidays: holidays are always non-working days, even when
	// the holiday record says it was worked.
	PolicyRespectHolidays HolidayPolicy = "respect_holidays"

	// PolicyCanWorkHolidays: a holiday with the worked flag set becomes a
	// HolidayWorked day carrying the configured holiday hours.
	PolicyCanWorkHolidays HolidayPolicy = "can_work_holidays"
)

// ParseHolidayPolicy converts a configuration string to a HolidayPolicy.
// The empty string defaults to respecting holidays.
func ParseHolidayPolicy(s string) (HolidayPolicy, error) {
	switch HolidayPolicy(s) {
	case PolicyRespectHolidays, "":
		return PolicyRespectHolidays, nil
	case PolicyCanWorkHolidays:
		return PolicyCanWorkHolidays, nil
	default:
		return "", fmt.Errorf("unknown holiday policy %q", s)
	}
}

// =============================================================================
// HOLIDAY
// =============================================================================

// Holiday is a public holiday on a specific date. Identity is the date alone:
// a year holds at most one holiday per calendar date.
type Holiday struct {
	Date   Date   `json:"date"`
	Name   string `json:"name,omitempty"`
	Worked bool   `json:"worked"`
}

// NewHoliday builds a Holiday. The name is trimmed and limited to
// MaxHolidayNameLength characters.
func NewHoliday(date Date, name string, worked bool) (Holiday, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) > MaxHolidayNameLength {
		return Holiday{}, fmt.Errorf("%w: holiday name has %d characters, maximum is %d",
			ErrNameTooLong, len([]rune(name)), MaxHolidayNameLength)
	}
	return Holiday{Date: date, Name: name, Worked: worked}, nil
}

// =============================================================================
// VACATION PERIOD
// =============================================================================

// VacationPeriod is an inclusive date range of vacation. Periods may overlap
// each other; the engine resolves overlaps as a union of dates.
type VacationPeriod struct {
	Start       Date   `json:"start"`
	End         Date   `json:"end"`
	Description string `json:"description,omitempty"`
}

// NewVacationPeriod builds a VacationPeriod. The end date must not precede
// the start date.
func NewVacationPeriod(start, end Date, description string) (VacationPeriod, error) {
	if end.Before(start) {
		return VacationPeriod{}, fmt.Errorf("%w: %s before %s", ErrInvalidPeriod, end, start)
	}
	description = strings.TrimSpace(description)
	if len([]rune(description)) > MaxDescriptionLength {
		return VacationPeriod{}, fmt.Errorf("%w: description has %d characters, maximum is %d",
			ErrDescriptionTooLong, len([]rune(description)), MaxDescriptionLength)
	}
	return VacationPeriod{Start: start, End: end, Description: description}, nil
}

// Contains reports whether d falls within the period [Start, End].
func (v VacationPeriod) Contains(d Date) bool {
	return d.AfterOrEqual(v.Start) && d.BeforeOrEqual(v.End)
}

// Days returns every date in the period, in order.
func (v VacationPeriod) Days() []Date {
	var days []Date
	for current := v.Start; current.BeforeOrEqual(v.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

// =============================================================================
// GUARDIA - On-call shift on a rest day or holiday
// =============================================================================

// Guardia is an on-call/covering shift. Guardias are only meaningful for
// weekly cycles and must fall on a day the cycle marks as rest, or on a
// holiday - never on a cycle work day. That eligibility is checked at
// configuration time with CheckGuardiaDay, not when the calendar is built.
type Guardia struct {
	Date        Date   `json:"date"`
	Hours       Hours  `json:"hours"`
	Description string `json:"description,omitempty"`
}

// NewGuardia builds a Guardia with hours in [0, 24].
func NewGuardia(date Date, hours float64, description string) (Guardia, error) {
	h, err := NewHours(hours)
	if err != nil {
		return Guardia{}, err
	}
	description = strings.TrimSpace(description)
	if len([]rune(description)) > MaxDescriptionLength {
		return Guardia{}, fmt.Errorf("%w: description has %d characters, maximum is %d",
			ErrDescriptionTooLong, len([]rune(description)), MaxDescriptionLength)
	}
	return Guardia{Date: date, Hours: h, Description: description}, nil
}

// CheckGuardiaDay validates that a guardia date is eligible under the given
// weekly cycle: the date must be a cycle rest day or a listed holiday.
func CheckGuardiaDay(cycle WeeklyCycle, holidays []Holiday, date Date) error {
	for _, h := range holidays {
		if h.Date.Equal(date) {
			return nil
		}
	}
	if cycle.WorksOn(date.WeekdayIndex()) {
		return fmt.Errorf("%w: %s is a cycle work day", ErrGuardiaOnWorkDay, date)
	}
	return nil
}

// =============================================================================
// EXTRA SHIFT - Additive hours on any day
// =============================================================================

// ExtraShift records additional hours worked on a day. Extra shifts never
// change a day's status; their hours are added to whatever the day already
// carries, regardless of status.
type ExtraShift struct {
	Date        Date   `json:"date"`
	Hours       Hours  `json:"hours"`
	Description string `json:"description,omitempty"`
}

// NewExtraShift builds an ExtraShift with hours in [0, 24].
func NewExtraShift(date Date, hours float64, description string) (ExtraShift, error) {
	h, err := NewHours(hours)
	if err != nil {
		return ExtraShift{}, err
	}
	description = strings.TrimSpace(description)
	if len([]rune(description)) > MaxDescriptionLength {
		return ExtraShift{}, fmt.Errorf("%w: description has %d characters, maximum is %d",
			ErrDescriptionTooLong, len([]rune(description)), MaxDescriptionLength)
	}
	return ExtraShift{Date: date, Hours: h, Description: description}, nil
}

// =============================================================================
// CONTRACT START DATE
// =============================================================================

// ContractStartDate is the first employed day of a worker who started inside
// the target year. It is always bound to that year at construction.
type ContractStartDate struct {
	Date Date `json:"date"`
}

// NewContractStartDate builds a ContractStartDate, rejecting dates outside
// the target year.
func NewContractStartDate(year Year, date Date) (ContractStartDate, error) {
	if date.Year() != year.Value {
		return ContractStartDate{}, fmt.Errorf("%w: %s is not in %d",
			ErrStartDateOutsideYear, date, year.Value)
	}
	return ContractStartDate{Date: date}, nil
}

// DaysFromYearStart returns the zero-based day offset from January 1
// (January 1 itself is 0).
func (c ContractStartDate) DaysFromYearStart() int {
	return DaysBetween(StartOfYear(c.Date.Year()), c.Date)
}
