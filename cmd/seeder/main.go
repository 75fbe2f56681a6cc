package main

import (
	"database/sql"
	"fmt"
	"log"

	"tablebook_backend/pkg/utils"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type seedReservation struct {
	startAt   string
	numGuests int
	notes     string
}

type seedCustomer struct {
	firstName, middleName, lastName string
	phone                           *string
	notes                           string
	reservations                    []seedReservation
}

// Loads a handful of customers and reservations so the API has data to serve
// during development.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		utils.Getenv("DB_HOST", "localhost"),
		utils.Getenv("DB_PORT", "5432"),
		utils.Getenv("DB_USER", "tablebook_user"),
		utils.Getenv("DB_PASSWORD", "tablebook_password"),
		utils.Getenv("DB_NAME", "tablebook_db"),
		utils.Getenv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	customers := []seedCustomer{
		{
			firstName: "Ada", lastName: "Lovelace",
			phone: utils.NewNullString("555-1234"),
			reservations: []seedReservation{
				{startAt: "2026-04-05 15:00:00", numGuests: 2, notes: "window table"},
				{startAt: "2026-04-12 19:30:00", numGuests: 4},
			},
		},
		{
			firstName: "Grace", middleName: "Brewster", lastName: "Hopper",
			phone: utils.NewNullString("555-9876"),
			notes: "prefers booth seating",
			reservations: []seedReservation{
				{startAt: "2026-04-07 18:00:00", numGuests: 3},
			},
		},
		{
			firstName: "Alan", lastName: "Turing",
		},
	}

	for _, c := range customers {
		var customerID int64
		err := db.QueryRow(
			`INSERT INTO customers (first_name, middle_name, last_name, phone, notes)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			c.firstName, c.middleName, c.lastName, c.phone, c.notes,
		).Scan(&customerID)
		if err != nil {
			log.Fatalf("failed to seed customer %s %s: %v", c.firstName, c.lastName, err)
		}

		for _, r := range c.reservations {
			_, err := db.Exec(
				`INSERT INTO reservations (customer_id, start_at, num_guests, notes)
				 VALUES ($1, $2, $3, $4)`,
				customerID, r.startAt, r.numGuests, r.notes,
			)
			if err != nil {
				log.Fatalf("failed to seed reservation for customer %d: %v", customerID, err)
			}
		}
		fmt.Printf("Seeded: %s %s (%d reservations)\n", c.firstName, c.lastName, len(c.reservations))
	}

	fmt.Println("Database seeding completed successfully!")
}
