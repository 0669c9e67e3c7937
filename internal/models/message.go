package models

import "time"

// Message is a contact form submission. Append-only from the public
// side; admins only list them.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Handled   bool      `json:"handled"`
}
