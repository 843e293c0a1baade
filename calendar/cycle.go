package calendar

import (
	"github.com/shopspring/decimal"

	"github.com/jornada/calendar-engine/schedule"
)

// =============================================================================
// CYCLE APPLIERS - Assign Work/Rest from the configured cycle
// =============================================================================

// ApplyWeeklyCycle assigns Work or Rest to every day from the weekly mask.
// Work days get the configured hours for their weekday; rest days get zero.
// NotEmployed days are left untouched.
func ApplyWeeklyCycle(days []Day, cycle schedule.WeeklyCycle, hours schedule.WorkingHours) {
	for i := range days {
		d := &days[i]
		if d.Status == StatusNotEmployed {
			continue
		}
		if cycle.WorksOn(d.Weekday) {
			d.Status = StatusWork
			d.Hours = hours.ForWeekday(d.Weekday).Value
		} else {
			d.Status = StatusRest
			d.Hours = decimal.Zero
		}
	}
}

// ApplyPartsCycle assigns Work or Rest from a repeating parts cycle.
//
// Without an offset, January 1 is slot 0 (the first work day of part 1).
// With an offset, January 1's slot is derived from the offset and every
// day's slot is (anchor + daysFromJan1) mod cycle length. Each slot is
// computed independently from the day index; nothing is accumulated day over
// day, so an anchored pattern cannot drift. NotEmployed days are skipped but
// still advance the cycle, since the cycle position is a function of the
// calendar date alone.
func ApplyPartsCycle(days []Day, cycle schedule.PartsCycle, offset *schedule.CycleOffset, hours schedule.WorkingHours) error {
	anchor := 0
	if offset != nil {
		slot, err := cycle.AnchorSlot(*offset)
		if err != nil {
			return err
		}
		anchor = slot
	}

	length := cycle.Length()
	for i := range days {
		d := &days[i]
		if d.Status == StatusNotEmployed {
			continue
		}
		if cycle.SlotIsWork((anchor + i) % length) {
			d.Status = StatusWork
			d.Hours = hours.ForWeekday(d.Weekday).Value
		} else {
			d.Status = StatusRest
			d.Hours = decimal.Zero
		}
	}
	return nil
}
