package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"tablebook_backend/internal/models"

	"github.com/lib/pq"
)

// ReservationRepository defines the interface for reservation-related
// database operations.
type ReservationRepository interface {
	GetByID(id int64) (*models.Reservation, error)
	GetForCustomer(customerID int64) ([]models.Reservation, error)
	Create(executor SQLExecutor, reservation *models.Reservation) (int64, error)
	Update(executor SQLExecutor, reservation *models.Reservation) error
}

type reservationRepository struct {
	db *sql.DB
}

// NewReservationRepository creates a new instance of ReservationRepository.
func NewReservationRepository(db *sql.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// GetByID retrieves a single reservation by its ID.
func (r *reservationRepository) GetByID(id int64) (*models.Reservation, error) {
	reservation := &models.Reservation{}
	query := `SELECT id, customer_id, num_guests, start_at, notes
	          FROM reservations
	          WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&reservation.ID, &reservation.CustomerID, &reservation.NumGuests,
		&reservation.StartAt, &reservation.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting reservation by ID %d: %v", ErrDatabaseError, id, err)
	}
	return reservation, nil
}

// GetForCustomer retrieves all reservations belonging to a customer,
// ordered by id.
func (r *reservationRepository) GetForCustomer(customerID int64) ([]models.Reservation, error) {
	query := `SELECT id, customer_id, num_guests, start_at, notes
	          FROM reservations
	          WHERE customer_id = $1
	          ORDER BY id`

	rows, err := r.db.Query(query, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying reservations for customer %d: %v", ErrDatabaseError, customerID, err)
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var reservation models.Reservation
		if err := rows.Scan(
			&reservation.ID, &reservation.CustomerID, &reservation.NumGuests,
			&reservation.StartAt, &reservation.Notes,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning reservation: %v", ErrDatabaseError, err)
		}
		reservations = append(reservations, reservation)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating reservation rows: %v", ErrDatabaseError, err)
	}
	return reservations, nil
}

// Create inserts a new reservation and returns the generated id. A foreign
// key violation on customer_id is reported as ErrForeignKeyViolation.
func (r *reservationRepository) Create(executor SQLExecutor, reservation *models.Reservation) (int64, error) {
	query := `INSERT INTO reservations (customer_id, start_at, num_guests, notes)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := executor.QueryRow(query,
		reservation.CustomerID, reservation.StartAt, reservation.NumGuests,
		reservation.Notes,
	).Scan(&reservation.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return 0, fmt.Errorf("%w: customer %d (constraint: %s)", ErrForeignKeyViolation, reservation.CustomerID, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating reservation: %v", ErrDatabaseError, err)
	}
	return reservation.ID, nil
}

// Update rewrites start_at, num_guests and notes of an existing reservation
// by id. customer_id is write-once and deliberately absent from the statement.
func (r *reservationRepository) Update(executor SQLExecutor, reservation *models.Reservation) error {
	query := `UPDATE reservations
	          SET start_at = $1, num_guests = $2, notes = $3
	          WHERE id = $4`

	result, err := executor.Exec(query,
		reservation.StartAt, reservation.NumGuests, reservation.Notes,
		reservation.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating reservation ID %d: %v", ErrDatabaseError, reservation.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for reservation ID %d: %v", ErrDatabaseError, reservation.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
