/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's internal model (decimal hours, value types) from the external
  API contract: hours are exposed as floats, dates as "2006-01-02" strings.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - factory/config.go: ConfigJSON, the request schema for generation
*/
package api

import (
	"encoding/json"

	"github.com/jornada/calendar-engine/calendar"
	"github.com/jornada/calendar-engine/store/sqlite"
)

// =============================================================================
// CALENDAR TYPES
// =============================================================================

// DayDTO is one generated calendar day.
type DayDTO struct {
	Date        string            `json:"date"`
	Weekday     int               `json:"weekday"`
	WeekdayName string            `json:"weekday_name"`
	Month       int               `json:"month"`
	MonthName   string            `json:"month_name"`
	ISOWeek     int               `json:"iso_week"`
	Status      string            `json:"status"`
	Hours       float64           `json:"hours"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// CalendarDTO is the full generation result.
type CalendarDTO struct {
	Year       int      `json:"year"`
	IsLeapYear bool     `json:"is_leap_year"`
	TotalDays  int      `json:"total_days"`
	Days       []DayDTO `json:"days"`
	Warnings   []string `json:"warnings,omitempty"`
}

// SummaryDTO is the aggregate statistics over a generated calendar.
type SummaryDTO struct {
	Year           int                `json:"year"`
	TotalHours     float64            `json:"total_hours"`
	ContractHours  float64            `json:"contract_hours,omitempty"`
	Balance        float64            `json:"balance"`
	DaysByStatus   map[string]int     `json:"days_by_status"`
	HoursByMonth   map[string]float64 `json:"hours_by_month"`
	HoursByWeekday map[string]float64 `json:"hours_by_weekday"`
	Warnings       []string           `json:"warnings,omitempty"`
}

// =============================================================================
// CONFIGURATION TYPES
// =============================================================================

// ConfigDTO is a saved configuration in API responses. Config carries the
// raw blob so clients round-trip exactly what they saved.
type ConfigDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Year      int             `json:"year"`
	Config    json.RawMessage `json:"config"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// SaveConfigRequest creates or updates a saved configuration.
type SaveConfigRequest struct {
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config"`
}

// =============================================================================
// MAPPERS
// =============================================================================

func dayToDTO(d calendar.Day) DayDTO {
	hours, _ := d.Hours.Float64()
	return DayDTO{
		Date:        d.Date.String(),
		Weekday:     d.Weekday,
		WeekdayName: d.WeekdayName,
		Month:       d.Month,
		MonthName:   d.MonthName,
		ISOWeek:     d.ISOWeek,
		Status:      string(d.Status),
		Hours:       hours,
		Description: d.Description,
		Metadata:    d.Metadata,
	}
}

func resultToDTO(res *calendar.Result, warnings []string) CalendarDTO {
	days := make([]DayDTO, len(res.Days))
	for i, d := range res.Days {
		days[i] = dayToDTO(d)
	}
	return CalendarDTO{
		Year:       res.Year,
		IsLeapYear: res.IsLeapYear,
		TotalDays:  res.TotalDays,
		Days:       days,
		Warnings:   warnings,
	}
}

func summaryToDTO(year int, s calendar.Summary, warnings []string) SummaryDTO {
	total, _ := s.TotalHours.Float64()
	contract, _ := s.ContractHours.Float64()
	balance, _ := s.Balance.Float64()

	dto := SummaryDTO{
		Year:           year,
		TotalHours:     total,
		ContractHours:  contract,
		Balance:        balance,
		DaysByStatus:   make(map[string]int, len(s.DaysByStatus)),
		HoursByMonth:   make(map[string]float64, len(s.HoursByMonth)),
		HoursByWeekday: make(map[string]float64, len(s.HoursByWeekday)),
		Warnings:       warnings,
	}
	for status, n := range s.DaysByStatus {
		key := string(status)
		if key == "" {
			key = "unassigned"
		}
		dto.DaysByStatus[key] = n
	}
	for month, hours := range s.HoursByMonth {
		v, _ := hours.Float64()
		dto.HoursByMonth[monthKeys[month-1]] = v
	}
	for weekday, hours := range s.HoursByWeekday {
		v, _ := hours.Float64()
		dto.HoursByWeekday[weekdayKeys[weekday]] = v
	}
	return dto
}

var monthKeys = [12]string{
	"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12",
}

var weekdayKeys = [7]string{"0", "1", "2", "3", "4", "5", "6"}

func configToDTO(rec sqlite.ConfigRecord) ConfigDTO {
	return ConfigDTO{
		ID:        rec.ID,
		Name:      rec.Name,
		Year:      rec.Year,
		Config:    json.RawMessage(rec.ConfigJSON),
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: rec.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
