/*
errors.go - Centralized error values for schedule validation

PURPOSE:
  All expected validation failures in one place. Factory functions wrap these
  sentinels with the offending value so callers can both display the message
  and branch with errors.Is().

USAGE:
  if _, err := schedule.NewYear(123); errors.Is(err, schedule.ErrYearOutOfRange) {
      // prompt for a different year
  }
*/
package schedule

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrYearOutOfRange is returned when a year is not a 4-digit number or
	// falls outside the supported window around the current year.
	ErrYearOutOfRange = errors.New("year out of allowed range")

	// ErrInvalidHours is returned when an hour quantity is negative or
	// exceeds 24.
	ErrInvalidHours = errors.New("hours out of range")

	// ErrInvalidContractHours is returned when annual contract hours are not
	// positive or exceed the hours in a leap year.
	ErrInvalidContractHours = errors.New("annual contract hours out of range")

	// ErrInvalidDate is returned when a date string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNameTooLong is returned when a holiday name exceeds the limit.
	ErrNameTooLong = errors.New("name too long")

	// ErrDescriptionTooLong is returned when a free-text description exceeds
	// the limit.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrInvalidPeriod is returned when a vacation period ends before it starts.
	ErrInvalidPeriod = errors.New("invalid period: end before start")

	// ErrEmptyCycle is returned when a parts cycle has no parts or a part has
	// a non-positive run length.
	ErrEmptyCycle = errors.New("cycle must have at least one part with work and rest days")

	// ErrAllRestMask is returned when a weekly mask marks no day as work.
	ErrAllRestMask = errors.New("weekly cycle must mark at least one work day")

	// ErrInvalidOffset is returned when a cycle offset does not fit the cycle
	// it anchors.
	ErrInvalidOffset = errors.New("cycle offset out of range")

	// ErrStartDateOutsideYear is returned when a contract start date is not
	// inside the target year.
	ErrStartDateOutsideYear = errors.New("contract start date outside target year")

	// ErrStartDateRequired is returned when employment started this year but
	// no contract start date was provided. This is the single hard failure
	// that aborts calendar generation.
	ErrStartDateRequired = errors.New("a contract start date is required when employment started this year")

	// ErrGuardiaOnWorkDay is returned when a guardia is configured on a day
	// the weekly cycle already marks as work.
	ErrGuardiaOnWorkDay = errors.New("guardia must fall on a rest day or a holiday")
)

// IsValidation reports whether err is one of the expected construction-time
// validation failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrYearOutOfRange) ||
		errors.Is(err, ErrInvalidHours) ||
		errors.Is(err, ErrInvalidContractHours) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrNameTooLong) ||
		errors.Is(err, ErrDescriptionTooLong) ||
		errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrEmptyCycle) ||
		errors.Is(err, ErrAllRestMask) ||
		errors.Is(err, ErrInvalidOffset) ||
		errors.Is(err, ErrStartDateOutsideYear) ||
		errors.Is(err, ErrGuardiaOnWorkDay)
}
