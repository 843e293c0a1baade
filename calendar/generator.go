package calendar

import (
	"github.com/shopspring/decimal"

	"github.com/jornada/calendar-engine/schedule"
)

// =============================================================================
// GENERATOR - Raw day sequence for a year
// =============================================================================

// GenerateDays builds the ordered day sequence for the year, January 1
// through December 31, each day unassigned with zero hours and correct
// weekday/month/ISO-week metadata.
//
// When employment started this year, every day strictly before the contract
// start date is marked NotEmployed. That status is terminal: later passes
// skip NotEmployed days. Selecting "started this year" without a start date
// is the single hard failure of the pipeline.
func GenerateDays(year schedule.Year, employment schedule.EmploymentStatus, start *schedule.ContractStartDate) ([]Day, error) {
	if employment == schedule.EmploymentStartedThisYear && start == nil {
		return nil, schedule.ErrStartDateRequired
	}

	days := make([]Day, year.Days())
	date := year.Start()
	for i := range days {
		days[i] = Day{
			Date:        date,
			Weekday:     date.WeekdayIndex(),
			WeekdayName: date.WeekdayName(),
			Month:       int(date.Month()),
			MonthName:   date.MonthName(),
			ISOWeek:     date.ISOWeek(),
			Status:      StatusUnassigned,
			Hours:       decimal.Zero,
		}
		date = date.AddDays(1)
	}

	if employment == schedule.EmploymentStartedThisYear {
		for i := range days {
			if !days[i].Date.Before(start.Date) {
				break
			}
			days[i].Status = StatusNotEmployed
			days[i].Hours = decimal.Zero
		}
	}

	return days, nil
}
