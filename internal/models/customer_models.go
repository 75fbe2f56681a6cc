package models

// Customer represents a diner who may hold reservations.
type Customer struct {
	ID         int64   `json:"id" db:"id"`
	FirstName  string  `json:"first_name" db:"first_name" binding:"required"`
	MiddleName string  `json:"middle_name" db:"middle_name"`
	LastName   string  `json:"last_name" db:"last_name" binding:"required"`
	Phone      *string `json:"phone,omitempty" db:"phone"`
	Notes      string  `json:"notes" db:"notes"`

	// Reservations is populated by list endpoints that eager-load the
	// association; it stays nil elsewhere.
	Reservations []Reservation `json:"reservations,omitempty"`

	// ReservationCount is only set by the top-customers query.
	ReservationCount int `json:"reservation_count,omitempty"`
}

// FullName joins first, middle and last name with single spaces. An empty
// middle name yields a double space; the raw concatenation is intentional.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.MiddleName + " " + c.LastName
}
