package calendar

import (
	"github.com/shopspring/decimal"

	"github.com/jornada/calendar-engine/schedule"
)

// =============================================================================
// SUMMARY - Aggregate statistics over a generated calendar
// =============================================================================

// Summary aggregates a generated calendar: total hours, balance against the
// contractual annual hours target, day counts per status, and the hours
// distribution by month and by weekday.
type Summary struct {
	TotalHours     decimal.Decimal
	ContractHours  decimal.Decimal
	Balance        decimal.Decimal // TotalHours - ContractHours
	DaysByStatus   map[DayStatus]int
	HoursByMonth   map[int]decimal.Decimal // 1-12
	HoursByWeekday map[int]decimal.Decimal // 0=Monday .. 6=Sunday
}

// Summarize computes the aggregate statistics for a result against the
// annual contract hours target.
func Summarize(res *Result, contract schedule.AnnualContractHours) Summary {
	s := Summary{
		TotalHours:     decimal.Zero,
		ContractHours:  contract.Value,
		DaysByStatus:   make(map[DayStatus]int),
		HoursByMonth:   make(map[int]decimal.Decimal),
		HoursByWeekday: make(map[int]decimal.Decimal),
	}
	for m := 1; m <= 12; m++ {
		s.HoursByMonth[m] = decimal.Zero
	}
	for w := 0; w < 7; w++ {
		s.HoursByWeekday[w] = decimal.Zero
	}

	for _, d := range res.Days {
		s.TotalHours = s.TotalHours.Add(d.Hours)
		s.DaysByStatus[d.Status]++
		s.HoursByMonth[d.Month] = s.HoursByMonth[d.Month].Add(d.Hours)
		s.HoursByWeekday[d.Weekday] = s.HoursByWeekday[d.Weekday].Add(d.Hours)
	}

	s.Balance = s.TotalHours.Sub(s.ContractHours)
	return s
}
