package service

import (
	"fmt"
	"time"
)

const slotMinutes = 30

// Service windows in minutes from midnight, inclusive of the last slot.
var slotWindows = []struct{ open, last int }{
	{12 * 60, 14*60 + 30}, // lunch 12:00 - 14:30
	{18 * 60, 22*60 + 30}, // dinner 18:00 - 22:30
}

// SlotCalendar derives the day's bookable times. The schedule is fixed and
// date-independent.
type SlotCalendar struct{}

func NewSlotCalendar() *SlotCalendar {
	return &SlotCalendar{}
}

func (c *SlotCalendar) SlotsForDate(_ time.Time) []string {
	var slots []string
	for _, w := range slotWindows {
		for m := w.open; m <= w.last; m += slotMinutes {
			slots = append(slots, formatTimeOfDay(m))
		}
	}
	return slots
}

// Contains reports whether t ("HH:MM") is one of the canonical slot times.
func (c *SlotCalendar) Contains(t string) bool {
	m, err := parseTimeOfDay(t)
	if err != nil {
		return false
	}
	for _, w := range slotWindows {
		if m >= w.open && m <= w.last && (m-w.open)%slotMinutes == 0 {
			return true
		}
	}
	return false
}

func parseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
