package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"tablebook_backend/internal/models"
)

// CustomerRepository defines the interface for customer-related database
// operations.
type CustomerRepository interface {
	GetAll() ([]models.Customer, error)
	GetByID(id int64) (*models.Customer, error)
	Search(term string) ([]models.Customer, error)
	GetTopTen() ([]models.Customer, error)
	Create(executor SQLExecutor, customer *models.Customer) (int64, error)
	Update(executor SQLExecutor, customer *models.Customer) error
}

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new instance of CustomerRepository.
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, first_name, middle_name, last_name, phone, notes`

// GetAll retrieves every customer ordered by last name, then first name.
func (r *customerRepository) GetAll() ([]models.Customer, error) {
	query := `SELECT ` + customerColumns + `
	          FROM customers
	          ORDER BY last_name, first_name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying customers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}

// GetByID retrieves a single customer by their ID.
func (r *customerRepository) GetByID(id int64) (*models.Customer, error) {
	customer := &models.Customer{}
	query := `SELECT ` + customerColumns + `
	          FROM customers
	          WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&customer.ID, &customer.FirstName, &customer.MiddleName,
		&customer.LastName, &customer.Phone, &customer.Notes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting customer by ID %d: %v", ErrDatabaseError, id, err)
	}
	return customer, nil
}

// Search retrieves customers whose first or last name contains term,
// case-insensitively, ordered like GetAll.
func (r *customerRepository) Search(term string) ([]models.Customer, error) {
	query := `SELECT ` + customerColumns + `
	          FROM customers
	          WHERE first_name ILIKE $1 OR last_name ILIKE $1
	          ORDER BY last_name, first_name`

	rows, err := r.db.Query(query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("%w: searching customers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}

// GetTopTen retrieves up to 10 customers ordered by descending reservation
// count, ties broken by ascending customer id.
func (r *customerRepository) GetTopTen() ([]models.Customer, error) {
	query := `SELECT customers.id, first_name, middle_name, last_name, phone, customers.notes,
	                 COUNT(*) AS reservation_count
	          FROM customers
	          JOIN reservations ON customers.id = reservations.customer_id
	          GROUP BY customers.id
	          ORDER BY COUNT(*) DESC, customers.id ASC
	          LIMIT 10`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying top customers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var customer models.Customer
		if err := rows.Scan(
			&customer.ID, &customer.FirstName, &customer.MiddleName,
			&customer.LastName, &customer.Phone, &customer.Notes,
			&customer.ReservationCount,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning top customer: %v", ErrDatabaseError, err)
		}
		customers = append(customers, customer)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating top customer rows: %v", ErrDatabaseError, err)
	}
	return customers, nil
}

// Create inserts a new customer and returns the generated id.
func (r *customerRepository) Create(executor SQLExecutor, customer *models.Customer) (int64, error) {
	query := `INSERT INTO customers (first_name, middle_name, last_name, phone, notes)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := executor.QueryRow(query,
		customer.FirstName, customer.MiddleName, customer.LastName,
		customer.Phone, customer.Notes,
	).Scan(&customer.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating customer: %v", ErrDatabaseError, err)
	}
	return customer.ID, nil
}

// Update rewrites all mutable fields of an existing customer by id.
func (r *customerRepository) Update(executor SQLExecutor, customer *models.Customer) error {
	query := `UPDATE customers
	          SET first_name = $1, middle_name = $2, last_name = $3, phone = $4, notes = $5
	          WHERE id = $6`

	result, err := executor.Exec(query,
		customer.FirstName, customer.MiddleName, customer.LastName,
		customer.Phone, customer.Notes, customer.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating customer ID %d: %v", ErrDatabaseError, customer.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for customer ID %d: %v", ErrDatabaseError, customer.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCustomerRows(rows *sql.Rows) ([]models.Customer, error) {
	customers := []models.Customer{}
	for rows.Next() {
		var customer models.Customer
		if err := rows.Scan(
			&customer.ID, &customer.FirstName, &customer.MiddleName,
			&customer.LastName, &customer.Phone, &customer.Notes,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning customer: %v", ErrDatabaseError, err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating customer rows: %v", ErrDatabaseError, err)
	}
	return customers, nil
}
