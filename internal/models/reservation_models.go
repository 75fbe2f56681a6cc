package models

import (
	"time"

	"tablebook_backend/pkg/utils"
)

// Reservation represents one party's booking at a start time, owned by
// exactly one customer. CustomerID is set when the reservation is created
// and never written again; updates touch start_at, num_guests and notes only.
type Reservation struct {
	ID         int64     `json:"id" db:"id"`
	CustomerID int64     `json:"customer_id" db:"customer_id"`
	NumGuests  int       `json:"num_guests" db:"num_guests"`
	StartAt    time.Time `json:"start_at" db:"start_at"`
	Notes      string    `json:"notes" db:"notes"`
}

// FormattedStartAt renders the start time like "April 5th 2024, 3:00 pm".
func (r *Reservation) FormattedStartAt() string {
	return utils.FormatReservationTime(r.StartAt)
}
