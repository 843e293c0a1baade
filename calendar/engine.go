/*
engine.go - Orchestrator for one calendar generation run

PURPOSE:
  Composes the generator, the selected cycle applier and the four exception
  appliers into one synchronous pipeline. A generation run is a pure function
  of its Input: no I/O, no shared state, no suspension points. The run owns
  its day sequence; concurrent runs are trivially independent.

ERROR POLICY:
  Malformed exception entries are expected to have been rejected at their own
  construction time (see the factory package, which skips them with a
  warning). The pipeline itself fails only on the generator's one hard
  validation: employment started this year without a contract start date.
*/
package calendar

import "github.com/jornada/calendar-engine/schedule"

// =============================================================================
// INPUT / RESULT
// =============================================================================

// Input is the complete, already-validated configuration for one generation
// run. Exactly one of Weekly or Parts should be set; with neither, days keep
// their cycle-independent statuses only (exceptions still apply).
type Input struct {
	Year          schedule.Year
	Employment    schedule.EmploymentStatus
	ContractStart *schedule.ContractStartDate
	Weekly        *schedule.WeeklyCycle
	Parts         *schedule.PartsCycle
	Offset        *schedule.CycleOffset
	Holidays      []schedule.Holiday
	Vacations     []schedule.VacationPeriod
	Guardias      []schedule.Guardia
	ExtraShifts   []schedule.ExtraShift
	HolidayPolicy schedule.HolidayPolicy
	WorkingHours  schedule.WorkingHours
}

// Result is the annotated day sequence plus year-level aggregates.
type Result struct {
	Year       int
	IsLeapYear bool
	TotalDays  int
	Days       []Day
}

// =============================================================================
// ORCHESTRATOR
// =============================================================================

// Generate runs the full pipeline: generator, NotEmployed marking, cycle
// applier, then vacations, holidays, guardias and extra shifts in that fixed
// order. Guardias only apply under a weekly cycle.
func Generate(in Input) (*Result, error) {
	days, err := GenerateDays(in.Year, in.Employment, in.ContractStart)
	if err != nil {
		return nil, err
	}

	switch {
	case in.Weekly != nil:
		ApplyWeeklyCycle(days, *in.Weekly, in.WorkingHours)
	case in.Parts != nil:
		if err := ApplyPartsCycle(days, *in.Parts, in.Offset, in.WorkingHours); err != nil {
			return nil, err
		}
	}

	ApplyVacations(days, in.Vacations)
	ApplyHolidays(days, in.Holidays, in.HolidayPolicy, in.WorkingHours)
	if in.Weekly != nil {
		ApplyGuardias(days, in.Guardias)
	}
	ApplyExtraShifts(days, in.ExtraShifts)

	return &Result{
		Year:       in.Year.Value,
		IsLeapYear: in.Year.IsLeap(),
		TotalDays:  in.Year.Days(),
		Days:       days,
	}, nil
}
