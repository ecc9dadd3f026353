package catalog

import "time"

// Default weekday hours, minutes from venue-local midnight. Monday and Tuesday
// are dark unless a date override grants a window.
var defaultWeekHours = map[time.Weekday]*OperatingWindow{
	time.Sunday:    {OpenMin: 720, CloseMin: 1320}, // 12:00-22:00
	time.Monday:    nil,
	time.Tuesday:   nil,
	time.Wednesday: {OpenMin: 960, CloseMin: 1380}, // 16:00-23:00
	time.Thursday:  {OpenMin: 960, CloseMin: 1380}, // 16:00-23:00
	time.Friday:    {OpenMin: 960, CloseMin: 1440}, // 16:00-24:00
	time.Saturday:  {OpenMin: 600, CloseMin: 1440}, // 10:00-24:00
}

// How many guests one unit of each type seats. Party areas are booked by
// explicit area count, never derived from party size.
var perUnitGuests = map[ResourceType]int{
	TypeAxeBay:      4,
	TypeDuckpinLane: 6,
}

// Activities on quarter-hour-capable resources accept :15/:45 starts; the
// rest step on the half hour.
var quarterHourStarts = map[ResourceType]bool{
	TypeAxeBay:      true,
	TypeDuckpinLane: false,
	TypePartyArea:   false,
}

// BlackoutLiftWindow is the window a date gets when an override suppresses
// a blackout without supplying explicit hours: the standard weekday evening
// service.
func BlackoutLiftWindow() OperatingWindow {
	return OperatingWindow{OpenMin: 960, CloseMin: 1380} // 16:00-23:00
}

// DateKeyLayout is the canonical calendar-date format used across the API
// and the reservation store.
const DateKeyLayout = "2006-01-02"

// ParseDateKey parses a YYYY-MM-DD date key.
func ParseDateKey(dateKey string) (time.Time, error) {
	return time.Parse(DateKeyLayout, dateKey)
}
