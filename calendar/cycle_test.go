package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jornada/calendar-engine/calendar"
	"github.com/jornada/calendar-engine/schedule"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func monToFri(t *testing.T) schedule.WeeklyCycle {
	t.Helper()
	cycle, err := schedule.NewWeeklyCycle([7]bool{true, true, true, true, true, false, false})
	require.NoError(t, err)
	return cycle
}

func standardHours(t *testing.T) schedule.WorkingHours {
	t.Helper()
	wh, err := schedule.NewWorkingHours(8, 8, 8, 8)
	require.NoError(t, err)
	return wh
}

func newDays(t *testing.T, year int) []calendar.Day {
	t.Helper()
	days, err := calendar.GenerateDays(schedule.Year{Value: year}, schedule.EmploymentWorkedBefore, nil)
	require.NoError(t, err)
	return days
}

func countStatus(days []calendar.Day, status calendar.DayStatus) int {
	n := 0
	for _, d := range days {
		if d.Status == status {
			n++
		}
	}
	return n
}

func dayAt(t *testing.T, days []calendar.Day, year int, month time.Month, day int) *calendar.Day {
	t.Helper()
	target := schedule.NewDate(year, month, day)
	for i := range days {
		if days[i].Date.Equal(target) {
			return &days[i]
		}
	}
	t.Fatalf("day %s not found", target)
	return nil
}

// =============================================================================
// WEEKLY APPLIER
// =============================================================================

func TestApplyWeeklyCycle_MonToFri2025(t *testing.T) {
	// GIVEN: 2025 and a Monday-Friday cycle
	days := newDays(t, 2025)

	// WHEN: Applying the weekly cycle
	calendar.ApplyWeeklyCycle(days, monToFri(t), standardHours(t))

	// THEN: 261 work days and 104 rest days
	assert.Equal(t, 261, countStatus(days, calendar.StatusWork))
	assert.Equal(t, 104, countStatus(days, calendar.StatusRest))
	assert.Equal(t, 0, countStatus(days, calendar.StatusUnassigned))
}

func TestApplyWeeklyCycle_SevenDayWindowProperty(t *testing.T) {
	// Any 7 consecutive days contain exactly as many work days as the mask
	// marks true.
	mask := [7]bool{true, false, true, false, true, false, false}
	cycle, err := schedule.NewWeeklyCycle(mask)
	require.NoError(t, err)

	days := newDays(t, 2025)
	calendar.ApplyWeeklyCycle(days, cycle, standardHours(t))

	for start := 0; start+7 <= len(days); start += 7 {
		work := countStatus(days[start:start+7], calendar.StatusWork)
		assert.Equal(t, 3, work, "window starting at day %d", start)
	}
}

func TestApplyWeeklyCycle_HoursPerDayType(t *testing.T) {
	wh, err := schedule.NewWorkingHours(8, 5, 2, 0)
	require.NoError(t, err)

	cycle, err := schedule.NewWeeklyCycle([7]bool{true, true, true, true, true, true, true})
	require.NoError(t, err)

	days := newDays(t, 2025)
	calendar.ApplyWeeklyCycle(days, cycle, wh)

	monday := dayAt(t, days, 2025, time.January, 6)
	saturday := dayAt(t, days, 2025, time.January, 4)
	sunday := dayAt(t, days, 2025, time.January, 5)

	assert.Equal(t, "8", monday.Hours.String())
	assert.Equal(t, "5", saturday.Hours.String())
	assert.Equal(t, "2", sunday.Hours.String())
}

func TestApplyWeeklyCycle_SkipsNotEmployed(t *testing.T) {
	year := schedule.Year{Value: 2025}
	start, err := schedule.NewContractStartDate(year, schedule.NewDate(2025, time.March, 1))
	require.NoError(t, err)

	days, err := calendar.GenerateDays(year, schedule.EmploymentStartedThisYear, &start)
	require.NoError(t, err)

	calendar.ApplyWeeklyCycle(days, monToFri(t), standardHours(t))

	for _, d := range days {
		if d.Date.Before(start.Date) {
			assert.Equal(t, calendar.StatusNotEmployed, d.Status)
			assert.True(t, d.Hours.IsZero())
		} else {
			assert.NotEqual(t, calendar.StatusNotEmployed, d.Status)
		}
	}
}

// =============================================================================
// PARTS APPLIER
// =============================================================================

func TestApplyPartsCycle_SixOnThreeOff_NoOffset(t *testing.T) {
	// GIVEN: Cycle [{6,3}], no offset: Jan 1 is slot 0
	cycle, err := schedule.NewPartsCycle([]schedule.CyclePart{{WorkDays: 6, RestDays: 3}})
	require.NoError(t, err)

	days := newDays(t, 2025)

	// WHEN: Applying the parts cycle
	require.NoError(t, calendar.ApplyPartsCycle(days, cycle, nil, standardHours(t)))

	// THEN: Jan 1-6 work, Jan 7-9 rest, Jan 10-15 work, repeating
	for i, d := range days {
		want := calendar.StatusRest
		if i%9 < 6 {
			want = calendar.StatusWork
		}
		assert.Equal(t, want, d.Status, "day %s (index %d)", d.Date, i)
	}
}

func TestApplyPartsCycle_WithOffset_AnchorsJan1(t *testing.T) {
	// GIVEN: Cycle [{2,2}, {3,1}, {5,2}] and offset {part 3, day 4, work}
	cycle, err := schedule.NewPartsCycle([]schedule.CyclePart{
		{WorkDays: 2, RestDays: 2},
		{WorkDays: 3, RestDays: 1},
		{WorkDays: 5, RestDays: 2},
	})
	require.NoError(t, err)
	offset, err := schedule.NewCycleOffset(3, 4, schedule.DayTypeWork)
	require.NoError(t, err)

	days := newDays(t, 2025)

	// WHEN: Applying with the offset
	require.NoError(t, calendar.ApplyPartsCycle(days, cycle, &offset, standardHours(t)))

	// THEN: Jan 1 lands on the 4th work day of part 3's work run: Jan 1 and
	// Jan 2 work (work days 4 and 5 of the run), then 2 rest days, then the
	// cycle wraps to part 1. The pattern repeats with period 15.
	assert.Equal(t, calendar.StatusWork, days[0].Status)
	assert.Equal(t, calendar.StatusWork, days[1].Status)
	assert.Equal(t, calendar.StatusRest, days[2].Status)
	assert.Equal(t, calendar.StatusRest, days[3].Status)
	// Wrap to part 1: 2 work, 2 rest
	assert.Equal(t, calendar.StatusWork, days[4].Status)
	assert.Equal(t, calendar.StatusWork, days[5].Status)
	assert.Equal(t, calendar.StatusRest, days[6].Status)
	assert.Equal(t, calendar.StatusRest, days[7].Status)

	period := cycle.Length()
	for i := 0; i+period < len(days); i++ {
		assert.Equal(t, days[i].Status, days[i+period].Status,
			"pattern must repeat with period %d at day %d", period, i)
	}
}

func TestApplyPartsCycle_InvalidOffset_Fails(t *testing.T) {
	cycle, err := schedule.NewPartsCycle([]schedule.CyclePart{{WorkDays: 2, RestDays: 2}})
	require.NoError(t, err)
	offset, err := schedule.NewCycleOffset(5, 1, schedule.DayTypeWork)
	require.NoError(t, err)

	days := newDays(t, 2025)
	err = calendar.ApplyPartsCycle(days, cycle, &offset, standardHours(t))
	assert.ErrorIs(t, err, schedule.ErrInvalidOffset)
}

func TestApplyPartsCycle_SkipsNotEmployedButKeepsPhase(t *testing.T) {
	// The cycle position is a function of the date, so days after the
	// contract start land on the same slots as they would for a worker
	// employed all year.
	year := schedule.Year{Value: 2025}
	start, err := schedule.NewContractStartDate(year, schedule.NewDate(2025, time.January, 8))
	require.NoError(t, err)

	cycle, err := schedule.NewPartsCycle([]schedule.CyclePart{{WorkDays: 6, RestDays: 3}})
	require.NoError(t, err)

	days, err := calendar.GenerateDays(year, schedule.EmploymentStartedThisYear, &start)
	require.NoError(t, err)
	require.NoError(t, calendar.ApplyPartsCycle(days, cycle, nil, standardHours(t)))

	// Jan 1-7 not employed; Jan 8 is index 7, slot 7 -> rest; Jan 10 slot 0 of
	// the next traversal -> work.
	assert.Equal(t, calendar.StatusNotEmployed, days[0].Status)
	assert.Equal(t, calendar.StatusNotEmployed, days[6].Status)
	assert.Equal(t, calendar.StatusRest, days[7].Status)
	assert.Equal(t, calendar.StatusRest, days[8].Status)
	assert.Equal(t, calendar.StatusWork, days[9].Status)
}
