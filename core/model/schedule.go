package model

import "fmt"

// WeekSchedule holds one TimeWindow set per weekday, Sunday first. The same
// type carries a staff member's available windows and a client's requested
// windows.
type WeekSchedule [7]TimeWindow

// NewWeekSchedule parses seven day codes, Sunday through Saturday. A parse
// failure is reported with the offending day and is fatal to the whole
// schedule.
func NewWeekSchedule(sunday, monday, tuesday, wednesday, thursday, friday, saturday string) (WeekSchedule, error) {
	codes := [7]string{sunday, monday, tuesday, wednesday, thursday, friday, saturday}
	var s WeekSchedule
	for _, day := range Weekdays {
		w, err := ParseDayCode(codes[day])
		if err != nil {
			return WeekSchedule{}, fmt.Errorf("%s: %w", day, err)
		}
		s[day] = w
	}
	return s, nil
}

// NewWorkWeek parses Monday through Friday codes and leaves the weekend
// empty. Rosters only carry weekday columns.
func NewWorkWeek(monday, tuesday, wednesday, thursday, friday string) (WeekSchedule, error) {
	return NewWeekSchedule("", monday, tuesday, wednesday, thursday, friday, "")
}

// On returns the window set for the given day. It is total over all seven
// weekday values.
func (s WeekSchedule) On(day Weekday) TimeWindow {
	return s[day]
}
