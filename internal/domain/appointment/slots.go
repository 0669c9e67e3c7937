package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// ===============================
// Slot universe
// ===============================

// slotUniverse is every bookable time of day, half-hour marks from
// 09:00 to 19:00 inclusive. Slot granularity does not vary by service.
var slotUniverse = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	"18:00", "18:30", "19:00",
}

// SlotUniverse returns a fresh copy of the daily slot template.
func SlotUniverse() []string {
	out := make([]string, len(slotUniverse))
	copy(out, slotUniverse)
	return out
}

// AvailableSlots subtracts the times of confirmed appointments on the
// given date from the slot universe, preserving universe order.
func AvailableSlots(appointments []models.Appointment, date string) []string {
	booked := make(map[string]bool)
	for _, ap := range appointments {
		if ap.Date == date && Status(ap.Status) == StatusConfirmed {
			booked[ap.Time] = true
		}
	}

	free := make([]string, 0, len(slotUniverse))
	for _, slot := range slotUniverse {
		if !booked[slot] {
			free = append(free, slot)
		}
	}
	return free
}

// CutoffPast removes slots at or before now's wall-clock HH:MM when
// date is today in now's location. Other dates pass through untouched.
// The original site did this in the browser; it is part of the
// advertised availability contract, so the boundary reproduces it.
func CutoffPast(slots []string, date string, now time.Time) []string {
	if date != now.Format("2006-01-02") {
		return slots
	}

	current := now.Format("15:04")
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		if slot >= current {
			out = append(out, slot)
		}
	}
	return out
}
