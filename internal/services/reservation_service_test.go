package services

import (
	"fmt"
	"testing"
	"time"

	"tablebook_backend/internal/models"
	"tablebook_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(n int64) *int64 { return &n }

func TestCreateReservationRejectsNonPositiveGuests(t *testing.T) {
	repoCalled := false
	reservationRepo := &reservationRepoStub{
		createFn: func(reservation *models.Reservation) (int64, error) {
			repoCalled = true
			return 1, nil
		},
	}
	svc := NewReservationService(reservationRepo, nil)

	for _, numGuests := range []int{0, -3} {
		_, err := svc.CreateReservation(CreateReservationRequest{
			CustomerID: 1,
			NumGuests:  numGuests,
			StartAt:    "2026-04-05 15:00:00",
		})
		assert.ErrorIs(t, err, ErrReservationValidation)
	}
	assert.False(t, repoCalled, "invalid reservations must not reach storage")
}

func TestCreateReservationSingleGuestAllowed(t *testing.T) {
	reservationRepo := &reservationRepoStub{
		createFn: func(reservation *models.Reservation) (int64, error) {
			reservation.ID = 3
			return 3, nil
		},
	}
	svc := NewReservationService(reservationRepo, nil)

	reservation, err := svc.CreateReservation(CreateReservationRequest{
		CustomerID: 1,
		NumGuests:  1,
		StartAt:    "2026-04-05 15:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), reservation.ID)
	assert.Equal(t, 1, reservation.NumGuests)
}

func TestCreateReservationRejectsUnparseableStartAt(t *testing.T) {
	svc := NewReservationService(&reservationRepoStub{}, nil)

	_, err := svc.CreateReservation(CreateReservationRequest{
		CustomerID: 1,
		NumGuests:  2,
		StartAt:    "not a date",
	})
	assert.ErrorIs(t, err, ErrStartAtFormat)
}

func TestCreateReservationParsesISOStartAt(t *testing.T) {
	var stored models.Reservation
	reservationRepo := &reservationRepoStub{
		createFn: func(reservation *models.Reservation) (int64, error) {
			stored = *reservation
			return 1, nil
		},
	}
	svc := NewReservationService(reservationRepo, nil)

	_, err := svc.CreateReservation(CreateReservationRequest{
		CustomerID: 1,
		NumGuests:  2,
		StartAt:    "2026-04-05T15:00:00Z",
	})
	require.NoError(t, err)
	assert.True(t, stored.StartAt.Equal(time.Date(2026, time.April, 5, 15, 0, 0, 0, time.UTC)))
}

func TestCreateReservationNormalizesNilNotes(t *testing.T) {
	var stored models.Reservation
	reservationRepo := &reservationRepoStub{
		createFn: func(reservation *models.Reservation) (int64, error) {
			stored = *reservation
			return 1, nil
		},
	}
	svc := NewReservationService(reservationRepo, nil)

	_, err := svc.CreateReservation(CreateReservationRequest{
		CustomerID: 1,
		NumGuests:  2,
		StartAt:    "2026-04-05 15:00:00",
		Notes:      nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "", stored.Notes)
}

func TestCreateReservationUnknownCustomer(t *testing.T) {
	reservationRepo := &reservationRepoStub{
		createFn: func(reservation *models.Reservation) (int64, error) {
			return 0, fmt.Errorf("%w: customer 999", repositories.ErrForeignKeyViolation)
		},
	}
	svc := NewReservationService(reservationRepo, nil)

	_, err := svc.CreateReservation(CreateReservationRequest{
		CustomerID: 999,
		NumGuests:  2,
		StartAt:    "2026-04-05 15:00:00",
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestUpdateReservationRejectsCustomerReassignment(t *testing.T) {
	updateCalled := false
	reservationRepo := &reservationRepoStub{
		getByIDFn: func(id int64) (*models.Reservation, error) {
			return &models.Reservation{ID: id, CustomerID: 5}, nil
		},
		updateFn: func(reservation *models.Reservation) error {
			updateCalled = true
			return nil
		},
	}
	svc := NewReservationService(reservationRepo, nil)

	_, err := svc.UpdateReservation(3, UpdateReservationRequest{
		CustomerID: int64Ptr(7),
		NumGuests:  2,
		StartAt:    "2026-04-05 15:00:00",
	})
	assert.ErrorIs(t, err, ErrReservationValidation)
	assert.False(t, updateCalled, "rejected updates must not reach storage")
}

func TestUpdateReservationWritesOnlyMutableFields(t *testing.T) {
	var stored models.Reservation
	reservationRepo := &reservationRepoStub{
		getByIDFn: func(id int64) (*models.Reservation, error) {
			return &models.Reservation{
				ID:         id,
				CustomerID: 5,
				NumGuests:  2,
				StartAt:    time.Date(2026, time.April, 5, 15, 0, 0, 0, time.UTC),
				Notes:      "old",
			}, nil
		},
		updateFn: func(reservation *models.Reservation) error {
			stored = *reservation
			return nil
		},
	}
	svc := NewReservationService(reservationRepo, nil)

	reservation, err := svc.UpdateReservation(3, UpdateReservationRequest{
		NumGuests: 6,
		StartAt:   "2026-05-01 19:00:00",
		Notes:     strPtr("anniversary"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), stored.CustomerID, "customer id survives updates unchanged")
	assert.Equal(t, 6, stored.NumGuests)
	assert.Equal(t, "anniversary", stored.Notes)
	assert.True(t, stored.StartAt.Equal(time.Date(2026, time.May, 1, 19, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(5), reservation.CustomerID)
}

func TestUpdateReservationNotFound(t *testing.T) {
	reservationRepo := &reservationRepoStub{
		getByIDFn: func(id int64) (*models.Reservation, error) {
			return nil, repositories.ErrNotFound
		},
	}
	svc := NewReservationService(reservationRepo, nil)

	_, err := svc.UpdateReservation(99, UpdateReservationRequest{
		NumGuests: 2,
		StartAt:   "2026-04-05 15:00:00",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetReservationByIDNotFound(t *testing.T) {
	reservationRepo := &reservationRepoStub{
		getByIDFn: func(id int64) (*models.Reservation, error) {
			return nil, repositories.ErrNotFound
		},
	}
	svc := NewReservationService(reservationRepo, nil)

	_, err := svc.GetReservationByID(99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
