package schedule_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jornada/calendar-engine/schedule"
)

func TestNewHours_Range(t *testing.T) {
	for _, v := range []float64{0, 0.5, 8, 12.75, 24} {
		h, err := schedule.NewHours(v)
		require.NoError(t, err, "hours %v should be accepted", v)
		f, _ := h.Value.Float64()
		assert.Equal(t, v, f)
	}

	for _, v := range []float64{-0.1, -8, 24.01, 100} {
		_, err := schedule.NewHours(v)
		assert.ErrorIs(t, err, schedule.ErrInvalidHours, "hours %v should be rejected", v)
	}
}

func TestWorkingHours_ForWeekday(t *testing.T) {
	wh, err := schedule.NewWorkingHours(8, 5, 0, 6)
	require.NoError(t, err)

	for weekday := 0; weekday <= 4; weekday++ {
		assert.True(t, wh.ForWeekday(weekday).Equal(wh.Weekday), "weekday %d", weekday)
	}
	assert.True(t, wh.ForWeekday(5).Equal(wh.Saturday))
	assert.True(t, wh.ForWeekday(6).Equal(wh.Sunday))
}

func TestNewWorkingHours_InvalidRate_Fails(t *testing.T) {
	_, err := schedule.NewWorkingHours(8, 5, -1, 6)
	assert.ErrorIs(t, err, schedule.ErrInvalidHours)

	_, err = schedule.NewWorkingHours(25, 5, 0, 6)
	assert.ErrorIs(t, err, schedule.ErrInvalidHours)
}

func TestNewAnnualContractHours_Range(t *testing.T) {
	a, err := schedule.NewAnnualContractHours(1780)
	require.NoError(t, err)
	assert.Equal(t, "1780", a.String())

	for _, v := range []float64{0, -100, 366*24 + 1} {
		_, err := schedule.NewAnnualContractHours(v)
		assert.ErrorIs(t, err, schedule.ErrInvalidContractHours, "value %v should be rejected", v)
	}
}

func TestWorkingHours_JSONRoundTrip(t *testing.T) {
	wh, err := schedule.NewWorkingHours(7.5, 4, 0, 8)
	require.NoError(t, err)

	data, err := json.Marshal(wh)
	require.NoError(t, err)

	var back schedule.WorkingHours
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, wh.Equal(back))
}

func TestAnnualContractHours_JSONRoundTrip(t *testing.T) {
	a, err := schedule.NewAnnualContractHours(1672.5)
	require.NoError(t, err)

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var back schedule.AnnualContractHours
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, a.Equal(back))
}

func TestHours_UnmarshalRejectsOutOfRange(t *testing.T) {
	var h schedule.Hours
	err := json.Unmarshal([]byte(`25`), &h)
	assert.ErrorIs(t, err, schedule.ErrInvalidHours)
}
