package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jornada/calendar-engine/schedule"
)

// =============================================================================
// WEEKLY CYCLE
// =============================================================================

func TestNewWeeklyCycle_AllRest_Fails(t *testing.T) {
	_, err := schedule.NewWeeklyCycle([7]bool{})
	assert.ErrorIs(t, err, schedule.ErrAllRestMask)
}

func TestWeeklyCycle_WorksOn(t *testing.T) {
	cycle, err := schedule.NewWeeklyCycle([7]bool{true, true, true, true, true, false, false})
	require.NoError(t, err)

	assert.True(t, cycle.WorksOn(0))  // Monday
	assert.True(t, cycle.WorksOn(4))  // Friday
	assert.False(t, cycle.WorksOn(5)) // Saturday
	assert.False(t, cycle.WorksOn(6)) // Sunday
	assert.Equal(t, 5, cycle.WorkDaysPerWeek())
}

// =============================================================================
// PARTS CYCLE
// =============================================================================

func mustParts(t *testing.T, parts ...schedule.CyclePart) schedule.PartsCycle {
	t.Helper()
	cycle, err := schedule.NewPartsCycle(parts)
	require.NoError(t, err)
	return cycle
}

func part(t *testing.T, work, rest int) schedule.CyclePart {
	t.Helper()
	p, err := schedule.NewCyclePart(work, rest)
	require.NoError(t, err)
	return p
}

func TestNewPartsCycle_Empty_Fails(t *testing.T) {
	_, err := schedule.NewPartsCycle(nil)
	assert.ErrorIs(t, err, schedule.ErrEmptyCycle)
}

func TestNewCyclePart_NonPositiveRun_Fails(t *testing.T) {
	_, err := schedule.NewCyclePart(0, 3)
	assert.ErrorIs(t, err, schedule.ErrEmptyCycle)

	_, err = schedule.NewCyclePart(6, 0)
	assert.ErrorIs(t, err, schedule.ErrEmptyCycle)
}

func TestPartsCycle_SlotPattern_SinglePart(t *testing.T) {
	// GIVEN: A 6-on/3-off cycle (9 slots)
	cycle := mustParts(t, part(t, 6, 3))
	require.Equal(t, 9, cycle.Length())

	// THEN: Slots 0-5 are work, 6-8 are rest, repeating
	for slot := 0; slot < 27; slot++ {
		want := slot%9 < 6
		assert.Equal(t, want, cycle.SlotIsWork(slot), "slot %d", slot)
	}
}

func TestPartsCycle_SlotPattern_MultiPart(t *testing.T) {
	// Parts {2,2} and {3,1}: W W R R W W W R, period 8
	cycle := mustParts(t, part(t, 2, 2), part(t, 3, 1))
	require.Equal(t, 8, cycle.Length())

	pattern := []bool{true, true, false, false, true, true, true, false}
	for slot := 0; slot < 16; slot++ {
		assert.Equal(t, pattern[slot%8], cycle.SlotIsWork(slot), "slot %d", slot)
	}
}

func TestPartsCycle_EqualWorkAndRest_NoSpecialCase(t *testing.T) {
	// A single part with workDays == restDays is plainly valid.
	cycle := mustParts(t, part(t, 4, 4))
	require.Equal(t, 8, cycle.Length())

	for slot := 0; slot < 8; slot++ {
		assert.Equal(t, slot < 4, cycle.SlotIsWork(slot), "slot %d", slot)
	}
}

// =============================================================================
// CYCLE OFFSET
// =============================================================================

func TestNewCycleOffset_Validation(t *testing.T) {
	_, err := schedule.NewCycleOffset(0, 1, schedule.DayTypeWork)
	assert.ErrorIs(t, err, schedule.ErrInvalidOffset)

	_, err = schedule.NewCycleOffset(1, 0, schedule.DayTypeWork)
	assert.ErrorIs(t, err, schedule.ErrInvalidOffset)

	_, err = schedule.NewCycleOffset(1, 1, schedule.DayType("half"))
	assert.ErrorIs(t, err, schedule.ErrInvalidOffset)
}

func TestAnchorSlot_WorkRun(t *testing.T) {
	// GIVEN: Cycle [{2,2}, {3,1}, {5,2}] (lengths 4, 4, 7)
	cycle := mustParts(t, part(t, 2, 2), part(t, 3, 1), part(t, 5, 2))

	// WHEN: January 1 is the 4th work day of part 3
	offset, err := schedule.NewCycleOffset(3, 4, schedule.DayTypeWork)
	require.NoError(t, err)

	slot, err := cycle.AnchorSlot(offset)
	require.NoError(t, err)

	// THEN: anchor = 4 + 4 + 3 = 11, which is a work slot
	assert.Equal(t, 11, slot)
	assert.True(t, cycle.SlotIsWork(slot))
}

func TestAnchorSlot_RestRun(t *testing.T) {
	cycle := mustParts(t, part(t, 2, 2), part(t, 3, 1))

	// 1st rest day of part 1: skip the 2-day work run
	offset, err := schedule.NewCycleOffset(1, 1, schedule.DayTypeRest)
	require.NoError(t, err)

	slot, err := cycle.AnchorSlot(offset)
	require.NoError(t, err)
	assert.Equal(t, 2, slot)
	assert.False(t, cycle.SlotIsWork(slot))
}

func TestAnchorSlot_OffsetBeyondCycle_Fails(t *testing.T) {
	cycle := mustParts(t, part(t, 2, 2))

	offset, err := schedule.NewCycleOffset(2, 1, schedule.DayTypeWork)
	require.NoError(t, err)
	_, err = cycle.AnchorSlot(offset)
	assert.ErrorIs(t, err, schedule.ErrInvalidOffset)

	offset, err = schedule.NewCycleOffset(1, 3, schedule.DayTypeWork)
	require.NoError(t, err)
	_, err = cycle.AnchorSlot(offset)
	assert.ErrorIs(t, err, schedule.ErrInvalidOffset, "day 3 of a 2-day work run")
}

func TestPartsCycle_Equal(t *testing.T) {
	a := mustParts(t, part(t, 6, 3))
	b := mustParts(t, part(t, 6, 3))
	c := mustParts(t, part(t, 3, 6))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
