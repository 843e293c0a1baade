/*
Package factory converts JSON configuration into a validated engine input.

PURPOSE:
  The configuration a worker saves (year, cycle, exceptions, hours) lives as
  a JSON blob in caller-owned storage. This package is the boundary between
  that blob and the engine: it parses the JSON, runs every value through its
  schedule factory, and assembles a calendar.Input.

RESILIENCE:
  Structural configuration (year, cycle, working hours) must be valid or
  parsing fails. Individual exception entries are different: a malformed
  holiday, vacation, guardia or extra shift is dropped from the run and
  reported as a warning, so one bad saved record never blocks calendar
  rendering.

JSON SCHEMA:
  {
    "year": 2025,
    "cycle_mode": "weekly",
    "weekly_mask": [true, true, true, true, true, false, false],
    "parts": [{"work_days": 6, "rest_days": 3}],
    "employment_status": "started_this_year",
    "contract_start": "2025-06-06",
    "cycle_offset": {"part_number": 3, "day_within_part": 4, "day_type": "work"},
    "working_hours": {"weekday": 8, "saturday": 0, "sunday": 0, "holiday": 8},
    "annual_contract_hours": 1780,
    "holiday_policy": "respect_holidays",
    "holidays": [{"date": "2025-01-06", "name": "Reyes", "worked": false}],
    "vacations": [{"start": "2025-08-01", "end": "2025-08-15", "description": "verano"}],
    "guardias": [{"date": "2025-03-08", "hours": 12, "description": ""}],
    "extra_shifts": [{"date": "2025-02-10", "hours": 2, "description": ""}]
  }

SEE ALSO:
  - calendar/engine.go: Input consumed by the orchestrator
  - schedule: Value type factories that do the actual validation
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/jornada/calendar-engine/calendar"
	"github.com/jornada/calendar-engine/schedule"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ConfigJSON is the JSON representation of a full calendar configuration.
type ConfigJSON struct {
	Year                int            `json:"year"`
	CycleMode           string         `json:"cycle_mode"` // "weekly" or "parts"
	WeeklyMask          []bool         `json:"weekly_mask,omitempty"`
	Parts               []PartJSON     `json:"parts,omitempty"`
	EmploymentStatus    string         `json:"employment_status,omitempty"`
	ContractStart       string         `json:"contract_start,omitempty"`
	CycleOffset         *OffsetJSON    `json:"cycle_offset,omitempty"`
	WorkingHours        HoursJSON      `json:"working_hours"`
	AnnualContractHours float64        `json:"annual_contract_hours,omitempty"`
	HolidayPolicy       string         `json:"holiday_policy,omitempty"`
	Holidays            []HolidayJSON  `json:"holidays,omitempty"`
	Vacations           []VacationJSON `json:"vacations,omitempty"`
	Guardias            []ShiftJSON    `json:"guardias,omitempty"`
	ExtraShifts         []ShiftJSON    `json:"extra_shifts,omitempty"`
}

// PartJSON is one work/rest segment of a parts cycle.
type PartJSON struct {
	WorkDays int `json:"work_days"`
	RestDays int `json:"rest_days"`
}

// OffsetJSON anchors a parts cycle to January 1.
type OffsetJSON struct {
	PartNumber    int    `json:"part_number"`
	DayWithinPart int    `json:"day_within_part"`
	DayType       string `json:"day_type"`
}

// HoursJSON holds the per-day-type working hours.
type HoursJSON struct {
	Weekday  float64 `json:"weekday"`
	Saturday float64 `json:"saturday"`
	Sunday   float64 `json:"sunday"`
	Holiday  float64 `json:"holiday"`
}

// HolidayJSON is one holiday entry.
type HolidayJSON struct {
	Date   string `json:"date"`
	Name   string `json:"name,omitempty"`
	Worked bool   `json:"worked"`
}

// VacationJSON is one vacation period entry.
type VacationJSON struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description,omitempty"`
}

// ShiftJSON is one guardia or extra shift entry.
type ShiftJSON struct {
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description,omitempty"`
}

// =============================================================================
// CONFIG FACTORY
// =============================================================================

// ConfigFactory converts JSON configurations into engine inputs.
type ConfigFactory struct{}

// NewConfigFactory creates a new configuration factory.
func NewConfigFactory() *ConfigFactory {
	return &ConfigFactory{}
}

// Parse parses a JSON string into an engine input. The warning list names
// every exception entry that was dropped because its own validation failed.
func (f *ConfigFactory) Parse(jsonStr string) (*calendar.Input, []string, error) {
	var cj ConfigJSON
	if err := json.Unmarshal([]byte(jsonStr), &cj); err != nil {
		return nil, nil, fmt.Errorf("failed to parse configuration JSON: %w", err)
	}
	return f.FromJSON(cj)
}

// FromJSON assembles a calendar.Input from a decoded configuration.
func (f *ConfigFactory) FromJSON(cj ConfigJSON) (*calendar.Input, []string, error) {
	var warnings []string

	year, err := schedule.NewYear(cj.Year)
	if err != nil {
		return nil, nil, err
	}

	employment, err := schedule.ParseEmploymentStatus(cj.EmploymentStatus)
	if err != nil {
		return nil, nil, err
	}

	policy, err := schedule.ParseHolidayPolicy(cj.HolidayPolicy)
	if err != nil {
		return nil, nil, err
	}

	hours, err := schedule.NewWorkingHours(cj.WorkingHours.Weekday, cj.WorkingHours.Saturday,
		cj.WorkingHours.Sunday, cj.WorkingHours.Holiday)
	if err != nil {
		return nil, nil, err
	}

	in := &calendar.Input{
		Year:          year,
		Employment:    employment,
		HolidayPolicy: policy,
		WorkingHours:  hours,
	}

	if err := f.parseCycle(cj, in); err != nil {
		return nil, nil, err
	}

	if cj.ContractStart != "" {
		date, err := schedule.ParseDate(cj.ContractStart)
		if err != nil {
			return nil, nil, fmt.Errorf("contract start: %w", err)
		}
		start, err := schedule.NewContractStartDate(year, date)
		if err != nil {
			return nil, nil, err
		}
		in.ContractStart = &start
	}

	warnings = append(warnings, f.parseHolidays(cj.Holidays, in)...)
	warnings = append(warnings, f.parseVacations(cj.Vacations, in)...)
	warnings = append(warnings, f.parseGuardias(cj.Guardias, in)...)
	warnings = append(warnings, f.parseExtraShifts(cj.ExtraShifts, in)...)

	return in, warnings, nil
}

// parseCycle resolves the cycle mode, cycle definition and optional offset.
func (f *ConfigFactory) parseCycle(cj ConfigJSON, in *calendar.Input) error {
	switch cj.CycleMode {
	case "weekly":
		if len(cj.WeeklyMask) != 7 {
			return fmt.Errorf("weekly cycle needs a 7-day mask, got %d entries", len(cj.WeeklyMask))
		}
		var mask [7]bool
		copy(mask[:], cj.WeeklyMask)
		weekly, err := schedule.NewWeeklyCycle(mask)
		if err != nil {
			return err
		}
		in.Weekly = &weekly

	case "parts":
		parts := make([]schedule.CyclePart, 0, len(cj.Parts))
		for i, pj := range cj.Parts {
			part, err := schedule.NewCyclePart(pj.WorkDays, pj.RestDays)
			if err != nil {
				return fmt.Errorf("part %d: %w", i+1, err)
			}
			parts = append(parts, part)
		}
		cycle, err := schedule.NewPartsCycle(parts)
		if err != nil {
			return err
		}
		in.Parts = &cycle

		// An offset only makes sense for workers employed before this year.
		if cj.CycleOffset != nil && in.Employment == schedule.EmploymentWorkedBefore {
			dayType, err := schedule.ParseDayType(cj.CycleOffset.DayType)
			if err != nil {
				return err
			}
			offset, err := schedule.NewCycleOffset(cj.CycleOffset.PartNumber, cj.CycleOffset.DayWithinPart, dayType)
			if err != nil {
				return err
			}
			if _, err := cycle.AnchorSlot(offset); err != nil {
				return err
			}
			in.Offset = &offset
		}

	case "":
		// No cycle configured: exception passes still apply.

	default:
		return fmt.Errorf("unknown cycle mode %q", cj.CycleMode)
	}
	return nil
}

func (f *ConfigFactory) parseHolidays(entries []HolidayJSON, in *calendar.Input) []string {
	var warnings []string
	for _, hj := range entries {
		date, err := schedule.ParseDate(hj.Date)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping holiday %q: %v", hj.Date, err))
			continue
		}
		holiday, err := schedule.NewHoliday(date, hj.Name, hj.Worked)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping holiday %s: %v", date, err))
			continue
		}
		in.Holidays = append(in.Holidays, holiday)
	}
	return warnings
}

func (f *ConfigFactory) parseVacations(entries []VacationJSON, in *calendar.Input) []string {
	var warnings []string
	for _, vj := range entries {
		start, err := schedule.ParseDate(vj.Start)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping vacation period %q: %v", vj.Start, err))
			continue
		}
		end, err := schedule.ParseDate(vj.End)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping vacation period %q: %v", vj.End, err))
			continue
		}
		period, err := schedule.NewVacationPeriod(start, end, vj.Description)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping vacation period %s..%s: %v", start, end, err))
			continue
		}
		in.Vacations = append(in.Vacations, period)
	}
	return warnings
}

func (f *ConfigFactory) parseGuardias(entries []ShiftJSON, in *calendar.Input) []string {
	var warnings []string
	for _, sj := range entries {
		date, err := schedule.ParseDate(sj.Date)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping guardia %q: %v", sj.Date, err))
			continue
		}
		guardia, err := schedule.NewGuardia(date, sj.Hours, sj.Description)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping guardia %s: %v", date, err))
			continue
		}
		// Guardias are restricted to weekly cycles, on rest days or holidays.
		if in.Weekly == nil {
			warnings = append(warnings, fmt.Sprintf("skipping guardia %s: guardias require a weekly cycle", date))
			continue
		}
		if err := schedule.CheckGuardiaDay(*in.Weekly, in.Holidays, date); err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping guardia %s: %v", date, err))
			continue
		}
		in.Guardias = append(in.Guardias, guardia)
	}
	return warnings
}

func (f *ConfigFactory) parseExtraShifts(entries []ShiftJSON, in *calendar.Input) []string {
	var warnings []string
	for _, sj := range entries {
		date, err := schedule.ParseDate(sj.Date)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping extra shift %q: %v", sj.Date, err))
			continue
		}
		shift, err := schedule.NewExtraShift(date, sj.Hours, sj.Description)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping extra shift %s: %v", date, err))
			continue
		}
		in.ExtraShifts = append(in.ExtraShifts, shift)
	}
	return warnings
}

// ContractHours parses the annual contract hours target from a configuration,
// if present.
func (f *ConfigFactory) ContractHours(cj ConfigJSON) (*schedule.AnnualContractHours, error) {
	if cj.AnnualContractHours == 0 {
		return nil, nil
	}
	contract, err := schedule.NewAnnualContractHours(cj.AnnualContractHours)
	if err != nil {
		return nil, err
	}
	return &contract, nil
}
