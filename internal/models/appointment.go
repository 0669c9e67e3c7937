package models

import "time"

// DefaultBarber is written into rows booked through the public form,
// which does not let the client pick a barber.
const DefaultBarber = "default_barber"

type Appointment struct {
	ID string `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Service string `json:"service"`
	Barber  string `json:"barber"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM, 24h

	Notes  string `json:"notes"`
	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// StartsAt combines Date and Time in the given location. Rows with a
// malformed date or time report ok=false and are skipped by callers.
func (a *Appointment) StartsAt(loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
