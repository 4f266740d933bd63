// Package dates provides booking-date helpers: enumeration of upcoming
// working days, fixed appointment time slots and Ukrainian date formatting.
package dates

import (
	"fmt"
	"time"
)

// Working hours for appointments. The last slot starts so that a full
// appointment still ends within working hours.
const (
	WorkStartHour     = 8
	WorkEndHour       = 18
	SlotIntervalHours = 2
	CleaningDuration  = 2 * time.Hour
)

var dayNames = [...]string{"Нед", "Пон", "Вів", "Сер", "Чет", "П'ят", "Суб"}

var monthNames = [...]string{
	"", "січня", "лютого", "березня", "квітня", "травня", "червня",
	"липня", "серпня", "вересня", "жовтня", "листопада", "грудня",
}

// FormatUkrainian renders a date as "Пон, 1 лютого 2026".
func FormatUkrainian(d time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", dayNames[d.Weekday()], d.Day(), monthNames[d.Month()], d.Year())
}

// NextWorkingDays returns the next count working days after the given day,
// skipping Saturdays and Sundays.
func NextWorkingDays(from time.Time, count int) []time.Time {
	days := make([]time.Time, 0, count)
	d := from.AddDate(0, 0, 1)
	for len(days) < count {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			days = append(days, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	return days
}

// TimeSlots returns the appointment start times within working hours,
// formatted as "08:00". No availability is checked; the operator confirms
// every booking by hand.
func TimeSlots() []string {
	lastStart := WorkEndHour - int(CleaningDuration.Hours())
	var slots []string
	for h := WorkStartHour; h <= lastStart; h += SlotIntervalHours {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}
