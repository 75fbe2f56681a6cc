package utils

import (
	"fmt"
	"strconv"
	"time"
)

// FormatReservationTime renders t like "April 5th 2024, 3:00 pm": full month
// name, ordinal day, 12-hour clock, lowercase meridiem.
func FormatReservationTime(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "am"
	if t.Hour() >= 12 {
		meridiem = "pm"
	}
	return fmt.Sprintf("%s %s %d, %d:%02d %s",
		t.Month().String(), OrdinalDay(t.Day()), t.Year(), hour, t.Minute(), meridiem)
}

// OrdinalDay returns the day of month with its English ordinal suffix
// (1st, 2nd, 3rd, 4th, ..., 11th, 12th, 13th, ..., 21st).
func OrdinalDay(day int) string {
	suffix := "th"
	switch day % 10 {
	case 1:
		if day%100 != 11 {
			suffix = "st"
		}
	case 2:
		if day%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if day%100 != 13 {
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix
}
