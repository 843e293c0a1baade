/*
cycle.go - Work cycle definitions (weekly mask and repeating parts)

PURPOSE:
  A work cycle describes the recurring work/rest pattern a worker follows.
  Two variants exist:

  WeeklyCycle:
    A 7-day Monday-first boolean mask. "Works Monday to Friday" is
    [true, true, true, true, true, false, false]. The pattern is a pure
    function of the weekday, nothing carries over between weeks.

  PartsCycle:
    An ordered sequence of {workDays, restDays} segments that repeats
    independently of the week. "6 on, 3 off" is a single part {6, 3} with a
    9-day period. The cycle is modeled as a flattened sequence of single-day
    slots: for each part, workDays work-slots followed by restDays
    rest-slots. Slot 0 is the first work day of part 1.

  CycleOffset:
    Anchors a PartsCycle to the calendar for a worker already mid-cycle on
    January 1: "on January 1 I was on the 4th work day of part 3". The offset
    is converted to an absolute slot index with AnchorSlot, and every day of
    the year is then (anchor + daysFromJan1) mod cycle length. Each day's
    slot is computed independently; no state accumulates day over day.
*/
package schedule

import "fmt"

// =============================================================================
// DAY TYPE
// =============================================================================

// DayType distinguishes the work run from the rest run inside a cycle part.
type DayType string

const (
	DayTypeWork DayType = "work"
	DayTypeRest DayType = "rest"
)

// ParseDayType converts a configuration string to a DayType.
func ParseDayType(s string) (DayType, error) {
	switch DayType(s) {
	case DayTypeWork:
		return DayTypeWork, nil
	case DayTypeRest:
		return DayTypeRest, nil
	default:
		return "", fmt.Errorf("unknown day type %q", s)
	}
}

// =============================================================================
// WEEKLY CYCLE - 7-day Monday-first mask
// =============================================================================

// WeeklyCycle is a weekly work pattern as a Monday-first mask.
type WeeklyCycle struct {
	Mask [7]bool `json:"mask"`
}

// NewWeeklyCycle validates that at least one day is marked as work.
func NewWeeklyCycle(mask [7]bool) (WeeklyCycle, error) {
	for _, works := range mask {
		if works {
			return WeeklyCycle{Mask: mask}, nil
		}
	}
	return WeeklyCycle{}, ErrAllRestMask
}

// WorksOn reports whether the Monday-first weekday index is a work day.
func (c WeeklyCycle) WorksOn(weekdayIndex int) bool {
	return c.Mask[weekdayIndex]
}

// WorkDaysPerWeek counts the marked work days.
func (c WeeklyCycle) WorkDaysPerWeek() int {
	n := 0
	for _, works := range c.Mask {
		if works {
			n++
		}
	}
	return n
}

// =============================================================================
// PARTS CYCLE - Repeating work/rest segments
// =============================================================================

// CyclePart is one work/rest segment of a parts cycle.
type CyclePart struct {
	WorkDays int `json:"work_days"`
	RestDays int `json:"rest_days"`
}

// NewCyclePart validates that both runs are at least one day long.
func NewCyclePart(workDays, restDays int) (CyclePart, error) {
	if workDays < 1 || restDays < 1 {
		return CyclePart{}, fmt.Errorf("%w: part {%d work, %d rest}", ErrEmptyCycle, workDays, restDays)
	}
	return CyclePart{WorkDays: workDays, RestDays: restDays}, nil
}

// Length returns the slot count of the part.
func (p CyclePart) Length() int { return p.WorkDays + p.RestDays }

// PartsCycle is an ordered sequence of repeating work/rest segments.
type PartsCycle struct {
	parts []CyclePart
}

// NewPartsCycle validates a non-empty part list with positive run lengths.
func NewPartsCycle(parts []CyclePart) (PartsCycle, error) {
	if len(parts) == 0 {
		return PartsCycle{}, ErrEmptyCycle
	}
	owned := make([]CyclePart, len(parts))
	for i, p := range parts {
		if p.WorkDays < 1 || p.RestDays < 1 {
			return PartsCycle{}, fmt.Errorf("%w: part %d is {%d work, %d rest}",
				ErrEmptyCycle, i+1, p.WorkDays, p.RestDays)
		}
		owned[i] = p
	}
	return PartsCycle{parts: owned}, nil
}

// Parts returns a copy of the part list.
func (c PartsCycle) Parts() []CyclePart {
	out := make([]CyclePart, len(c.parts))
	copy(out, c.parts)
	return out
}

// Length returns the total slot count of one full cycle traversal.
func (c PartsCycle) Length() int {
	total := 0
	for _, p := range c.parts {
		total += p.Length()
	}
	return total
}

// SlotIsWork reports whether the given absolute slot index falls inside a
// work run. The index is normalized modulo the cycle length, so any
// non-negative slot is valid.
func (c PartsCycle) SlotIsWork(slot int) bool {
	slot %= c.Length()
	if slot < 0 {
		slot += c.Length()
	}
	for _, p := range c.parts {
		if slot < p.WorkDays {
			return true
		}
		slot -= p.Length()
		if slot < 0 {
			return false
		}
	}
	return false
}

// Equal reports structural equality.
func (c PartsCycle) Equal(other PartsCycle) bool {
	if len(c.parts) != len(other.parts) {
		return false
	}
	for i := range c.parts {
		if c.parts[i] != other.parts[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// CYCLE OFFSET - Anchors a parts cycle to January 1
// =============================================================================

// CycleOffset states where inside a parts cycle January 1 falls: the
// DayWithinPart-th day (1-based) of the work or rest run of part PartNumber
// (1-based). Only meaningful for parts cycles when the worker was employed
// before the target year.
type CycleOffset struct {
	PartNumber    int     `json:"part_number"`
	DayWithinPart int     `json:"day_within_part"`
	DayType       DayType `json:"day_type"`
}

// NewCycleOffset validates the 1-based indices and day type. Consistency
// against a concrete cycle is checked by PartsCycle.AnchorSlot.
func NewCycleOffset(partNumber, dayWithinPart int, dayType DayType) (CycleOffset, error) {
	if partNumber < 1 {
		return CycleOffset{}, fmt.Errorf("%w: part number %d must be at least 1", ErrInvalidOffset, partNumber)
	}
	if dayWithinPart < 1 {
		return CycleOffset{}, fmt.Errorf("%w: day within part %d must be at least 1", ErrInvalidOffset, dayWithinPart)
	}
	if dayType != DayTypeWork && dayType != DayTypeRest {
		return CycleOffset{}, fmt.Errorf("%w: unknown day type %q", ErrInvalidOffset, dayType)
	}
	return CycleOffset{PartNumber: partNumber, DayWithinPart: dayWithinPart, DayType: dayType}, nil
}

// AnchorSlot converts an offset into the absolute slot index of January 1:
// the slot lengths of all parts before the target part, plus the position
// within the work or rest run of the target part.
func (c PartsCycle) AnchorSlot(offset CycleOffset) (int, error) {
	if offset.PartNumber > len(c.parts) {
		return 0, fmt.Errorf("%w: part number %d, cycle has %d parts",
			ErrInvalidOffset, offset.PartNumber, len(c.parts))
	}
	part := c.parts[offset.PartNumber-1]

	runLength := part.WorkDays
	if offset.DayType == DayTypeRest {
		runLength = part.RestDays
	}
	if offset.DayWithinPart > runLength {
		return 0, fmt.Errorf("%w: day %d within a %d-day %s run",
			ErrInvalidOffset, offset.DayWithinPart, runLength, offset.DayType)
	}

	slot := 0
	for _, p := range c.parts[:offset.PartNumber-1] {
		slot += p.Length()
	}
	if offset.DayType == DayTypeRest {
		slot += part.WorkDays
	}
	return slot + offset.DayWithinPart - 1, nil
}
