package get_business_hours

import (
	"sort"

	"github.com/techydad05/nail-artist-website/internal/schedule"
)

// HoursOverrideResponse часы работы для отдельной даты
type HoursOverrideResponse struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	DailyOpen           string                           `json:"dailyOpen"`
	DailyClose          string                           `json:"dailyClose"`
	SlotDurationMinutes int                              `json:"slotDurationMinutes"`
	BufferMinutes       int                              `json:"bufferMinutes"`
	ClosedWeekdays      []int                            `json:"closedWeekdays"`
	Holidays            []string                         `json:"holidays"`
	SpecialHours        map[string]HoursOverrideResponse `json:"specialHours"`
	MinAdvanceHours     int                              `json:"minAdvanceHours"`
	MaxAdvanceDays      int                              `json:"maxAdvanceDays"`
}

// FromCalendar собирает ответ из календаря салона
func FromCalendar(cal *schedule.Calendar) *BusinessHoursResponse {
	closedWeekdays := make([]int, 0, len(cal.ClosedWeekdays))
	for _, wd := range cal.ClosedWeekdays {
		closedWeekdays = append(closedWeekdays, int(wd))
	}
	sort.Ints(closedWeekdays)

	holidays := make([]string, 0, len(cal.Holidays))
	for date := range cal.Holidays {
		holidays = append(holidays, date)
	}
	sort.Strings(holidays)

	specialHours := make(map[string]HoursOverrideResponse, len(cal.SpecialHours))
	for date, hours := range cal.SpecialHours {
		specialHours[date] = HoursOverrideResponse{
			Open:  hours.Open.String(),
			Close: hours.Close.String(),
		}
	}

	return &BusinessHoursResponse{
		DailyOpen:           cal.DailyOpen.String(),
		DailyClose:          cal.DailyClose.String(),
		SlotDurationMinutes: cal.SlotDurationMinutes,
		BufferMinutes:       cal.BufferMinutes,
		ClosedWeekdays:      closedWeekdays,
		Holidays:            holidays,
		SpecialHours:        specialHours,
		MinAdvanceHours:     cal.MinAdvanceHours,
		MaxAdvanceDays:      cal.MaxAdvanceDays,
	}
}
