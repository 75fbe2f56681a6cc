package repositories

import (
	"testing"
	"time"

	"tablebook_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationRepoWithMock(t *testing.T) (ReservationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReservationRepository(db), mock
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_id", "num_guests", "start_at", "notes"})
}

func TestReservationGetByID(t *testing.T) {
	repo, mock := newReservationRepoWithMock(t)

	startAt := time.Date(2026, time.April, 5, 15, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM reservations\s+WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(reservationRows().AddRow(3, 1, 2, startAt, "window table"))

	reservation, err := repo.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reservation.CustomerID)
	assert.Equal(t, 2, reservation.NumGuests)
	assert.True(t, startAt.Equal(reservation.StartAt))
	assert.Equal(t, "window table", reservation.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationGetByIDNotFound(t *testing.T) {
	repo, mock := newReservationRepoWithMock(t)

	mock.ExpectQuery(`FROM reservations\s+WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(reservationRows())

	_, err := repo.GetByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationGetForCustomer(t *testing.T) {
	repo, mock := newReservationRepoWithMock(t)

	startAt := time.Date(2026, time.April, 5, 15, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM reservations\s+WHERE customer_id = \$1\s+ORDER BY id`).
		WithArgs(int64(1)).
		WillReturnRows(reservationRows().
			AddRow(3, 1, 2, startAt, "").
			AddRow(5, 1, 4, startAt.Add(7*24*time.Hour), ""))

	reservations, err := repo.GetForCustomer(1)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, int64(3), reservations[0].ID)
	assert.Equal(t, int64(5), reservations[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationGetForCustomerEmpty(t *testing.T) {
	repo, mock := newReservationRepoWithMock(t)

	mock.ExpectQuery(`FROM reservations\s+WHERE customer_id = \$1`).
		WithArgs(int64(8)).
		WillReturnRows(reservationRows())

	reservations, err := repo.GetForCustomer(8)
	require.NoError(t, err)
	assert.Empty(t, reservations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationCreateForeignKeyViolation(t *testing.T) {
	repo, mock := newReservationRepoWithMock(t)

	reservation := &models.Reservation{
		CustomerID: 999,
		NumGuests:  2,
		StartAt:    time.Date(2026, time.April, 5, 15, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(`INSERT INTO reservations \(customer_id, start_at, num_guests, notes\)`).
		WithArgs(int64(999), reservation.StartAt, 2, "").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "reservations_customer_id_fkey"})

	_, err := repo.Create(reservationRepoDB(repo), reservation)
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationUpdateLeavesCustomerIDUntouched(t *testing.T) {
	repo, mock := newReservationRepoWithMock(t)

	reservation := &models.Reservation{
		ID:         3,
		CustomerID: 1,
		NumGuests:  6,
		StartAt:    time.Date(2026, time.May, 1, 19, 0, 0, 0, time.UTC),
		Notes:      "anniversary",
	}

	// The statement binds start_at, num_guests, notes and id only; there is
	// no placeholder for customer_id.
	mock.ExpectExec(`UPDATE reservations\s+SET start_at = \$1, num_guests = \$2, notes = \$3\s+WHERE id = \$4`).
		WithArgs(reservation.StartAt, 6, "anniversary", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(reservationRepoDB(repo), reservation)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationUpdateMissingRow(t *testing.T) {
	repo, mock := newReservationRepoWithMock(t)

	reservation := &models.Reservation{ID: 99, NumGuests: 2, StartAt: time.Now()}

	mock.ExpectExec(`UPDATE reservations`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(reservationRepoDB(repo), reservation)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func reservationRepoDB(repo ReservationRepository) SQLExecutor {
	return repo.(*reservationRepository).db
}
