/*
exceptions.go - Exception layer appliers

PURPOSE:
  Four passes that overwrite or adjust the cycle result for days matching an
  exception collection. Pass order is fixed and part of the contract:

    1. Vacations     - overwrite Work/Rest, zero hours
    2. Holidays      - overwrite Work/Rest, but never a Vacation day
    3. Guardias      - overwrite Rest/Holiday with on-call hours
    4. Extra shifts  - add hours to any day, never change status

  NotEmployed days are never touched by passes 1-3. Extra shifts are fully
  unrestricted and apply even to NotEmployed and Vacation days.

PRECEDENCE NOTE:
  Vacation outranks Holiday even though the holiday pass runs later; the
  holiday applier explicitly skips days already marked Vacation. Any future
  exception layer inserted after vacations needs the same guard.
*/
package calendar

import (
	"github.com/shopspring/decimal"

	"github.com/jornada/calendar-engine/schedule"
)

// ApplyVacations marks every day inside any vacation period as Vacation with
// zero hours. Overlapping periods resolve as a union of dates.
func ApplyVacations(days []Day, periods []schedule.VacationPeriod) {
	for i := range days {
		d := &days[i]
		if d.Status == StatusNotEmployed {
			continue
		}
		for _, p := range periods {
			if p.Contains(d.Date) {
				d.Status = StatusVacation
				d.Hours = decimal.Zero
				if p.Description != "" {
					d.Description = p.Description
				}
				break
			}
		}
	}
}

// ApplyHolidays resolves each listed holiday date. A holiday whose worked
// flag is false, or any holiday under PolicyRespectHolidays, becomes a
// Holiday day with zero hours; a worked holiday under PolicyCanWorkHolidays
// becomes HolidayWorked carrying the configured holiday hours. Days already
// marked Vacation keep their vacation status.
func ApplyHolidays(days []Day, holidays []schedule.Holiday, policy schedule.HolidayPolicy, hours schedule.WorkingHours) {
	if len(holidays) == 0 {
		return
	}
	byDate := make(map[string]schedule.Holiday, len(holidays))
	for _, h := range holidays {
		byDate[h.Date.String()] = h
	}

	for i := range days {
		d := &days[i]
		if d.Status == StatusNotEmployed || d.Status == StatusVacation {
			continue
		}
		h, ok := byDate[d.Date.String()]
		if !ok {
			continue
		}
		if h.Worked && policy == schedule.PolicyCanWorkHolidays {
			d.Status = StatusHolidayWorked
			d.Hours = hours.Holiday.Value
		} else {
			d.Status = StatusHoliday
			d.Hours = decimal.Zero
		}
		if h.Name != "" {
			d.Description = h.Name
		}
	}
}

// ApplyGuardias marks each guardia date as a Guardia day carrying the
// shift's hours. Only Rest and Holiday days are overwritten: eligibility was
// checked at configuration time, and Vacation and NotEmployed always win.
func ApplyGuardias(days []Day, guardias []schedule.Guardia) {
	if len(guardias) == 0 {
		return
	}
	idx := indexByDate(days)
	for _, g := range guardias {
		i, ok := idx[g.Date.String()]
		if !ok {
			continue
		}
		d := &days[i]
		if d.Status != StatusRest && d.Status != StatusHoliday {
			continue
		}
		d.Status = StatusGuardia
		d.Hours = g.Hours.Value
		if g.Description != "" {
			d.Description = g.Description
		}
	}
}

// ApplyExtraShifts adds each shift's hours to its day. Status is never
// changed and no day is exempt, NotEmployed and Vacation included.
func ApplyExtraShifts(days []Day, shifts []schedule.ExtraShift) {
	if len(shifts) == 0 {
		return
	}
	idx := indexByDate(days)
	for _, s := range shifts {
		i, ok := idx[s.Date.String()]
		if !ok {
			continue
		}
		d := &days[i]
		d.Hours = d.Hours.Add(s.Hours.Value)
		if s.Description != "" {
			d.setMeta("extra_shift", s.Description)
		}
	}
}
