package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tablebook_backend/internal/models"
	"tablebook_backend/internal/repositories"
)

// --- Custom Service Errors for Reservation ---
var (
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrReservationValidation = errors.New("reservation data validation error")
	ErrStartAtFormat         = errors.New("invalid start time, expected an ISO date or datetime")
)

// startAtLayouts are the accepted start_at formats, most specific first.
var startAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// --- Reservation DTOs ---
type CreateReservationRequest struct {
	CustomerID int64   `json:"customer_id" binding:"required"`
	NumGuests  int     `json:"num_guests" binding:"required"`
	StartAt    string  `json:"start_at" binding:"required"`
	Notes      *string `json:"notes"`
}

// UpdateReservationRequest carries the mutable fields of a reservation.
// CustomerID is present only so that attempts to reassign it can be rejected;
// the persisted customer_id is write-once.
type UpdateReservationRequest struct {
	CustomerID *int64  `json:"customer_id"`
	NumGuests  int     `json:"num_guests" binding:"required"`
	StartAt    string  `json:"start_at" binding:"required"`
	Notes      *string `json:"notes"`
}

// --- ReservationService Interface ---
type ReservationService interface {
	GetReservationByID(reservationID int64) (*models.Reservation, error)
	CreateReservation(req CreateReservationRequest) (*models.Reservation, error)
	UpdateReservation(reservationID int64, req UpdateReservationRequest) (*models.Reservation, error)
}

// --- reservationService Implementation ---
type reservationService struct {
	reservationRepo repositories.ReservationRepository
	db              *sql.DB
}

// NewReservationService creates a new instance of ReservationService.
func NewReservationService(reservationRepo repositories.ReservationRepository, db *sql.DB) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		db:              db,
	}
}

// GetReservationByID fetches a single reservation.
func (s *reservationService) GetReservationByID(reservationID int64) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

// CreateReservation validates and inserts a new reservation.
func (s *reservationService) CreateReservation(req CreateReservationRequest) (*models.Reservation, error) {
	if err := validateNumGuests(req.NumGuests); err != nil {
		return nil, err
	}
	startAt, err := parseStartAt(req.StartAt)
	if err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		CustomerID: req.CustomerID,
		NumGuests:  req.NumGuests,
		StartAt:    startAt,
		Notes:      derefOrEmpty(req.Notes),
	}

	if _, err := s.reservationRepo.Create(s.db, reservation); err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return reservation, nil
}

// UpdateReservation validates and rewrites the mutable fields of an existing
// reservation. Supplying customer_id is rejected: it cannot be reassigned.
func (s *reservationService) UpdateReservation(reservationID int64, req UpdateReservationRequest) (*models.Reservation, error) {
	if req.CustomerID != nil {
		return nil, fmt.Errorf("%w: cannot reassign customer id", ErrReservationValidation)
	}
	if err := validateNumGuests(req.NumGuests); err != nil {
		return nil, err
	}
	startAt, err := parseStartAt(req.StartAt)
	if err != nil {
		return nil, err
	}

	reservation, err := s.GetReservationByID(reservationID)
	if err != nil {
		return nil, err
	}

	reservation.NumGuests = req.NumGuests
	reservation.StartAt = startAt
	reservation.Notes = derefOrEmpty(req.Notes)

	if err := s.reservationRepo.Update(s.db, reservation); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func validateNumGuests(numGuests int) error {
	if numGuests < 1 {
		return fmt.Errorf("%w: must have at least one guest for reservation", ErrReservationValidation)
	}
	return nil
}

func parseStartAt(value string) (time.Time, error) {
	for _, layout := range startAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrStartAtFormat
}
