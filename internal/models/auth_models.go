package models

import "time"

// User represents a staff account that may manage customers and reservations.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     *string   `json:"full_name,omitempty" db:"full_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
