/*
Package calendar derives a full annual work calendar from a cycle definition
and annual exception collections.

PURPOSE:
  Given a validated configuration (year, work cycle, holidays, vacations,
  guardias, extra shifts, working hours), the engine produces one Day per
  calendar date of the year, each carrying a final status and an hours value,
  plus year-level aggregates.

PIPELINE:
  The orchestrator runs fixed passes over a single day sequence it owns:

    Generate days -> mark NotEmployed -> cycle applier (weekly or parts)
      -> vacations -> holidays -> guardias -> extra shifts

  Later passes may overwrite earlier ones, with two exceptions: NotEmployed
  is terminal and never overwritten, and a vacation day is never overwritten
  by a holiday. Extra shifts only add hours and never change status. The pass
  order is part of the contract; re-running the pipeline with an unchanged
  configuration yields an identical sequence.

SEE ALSO:
  - generator.go: Raw day sequence and NotEmployed marking
  - cycle.go: Weekly and parts cycle appliers
  - exceptions.go: Exception layer appliers
  - engine.go: Orchestrator
  - stats.go: Aggregate statistics
*/
package calendar

import (
	"github.com/shopspring/decimal"

	"github.com/jornada/calendar-engine/schedule"
)

// =============================================================================
// DAY STATUS
// =============================================================================

// DayStatus is the final classification of a calendar day. The empty string
// means unassigned; only days that have not yet passed through a cycle
// applier carry it.
type DayStatus string

const (
	StatusUnassigned    DayStatus = ""
	StatusWork          DayStatus = "work"
	StatusRest          DayStatus = "rest"
	StatusHoliday       DayStatus = "holiday"
	StatusHolidayWorked DayStatus = "holiday_worked"
	StatusVacation      DayStatus = "vacation"
	StatusGuardia       DayStatus = "guardia"
	StatusNotEmployed   DayStatus = "not_employed"
)

// =============================================================================
// DAY - One annotated calendar day
// =============================================================================

// Day is one calendar day of the generated year. The orchestrator mutates
// days in place while the passes run; once the result is handed out the
// sequence is immutable by convention.
type Day struct {
	Date        schedule.Date
	Weekday     int // 0=Monday .. 6=Sunday
	WeekdayName string
	Month       int // 1-12
	MonthName   string
	ISOWeek     int
	Status      DayStatus
	Hours       decimal.Decimal
	Description string
	Metadata    map[string]string
}

// setMeta lazily initializes the metadata bag.
func (d *Day) setMeta(key, value string) {
	if d.Metadata == nil {
		d.Metadata = make(map[string]string)
	}
	d.Metadata[key] = value
}

// indexByDate maps each day's date string to its position in the sequence.
func indexByDate(days []Day) map[string]int {
	idx := make(map[string]int, len(days))
	for i, d := range days {
		idx[d.Date.String()] = i
	}
	return idx
}
