package services

import (
	"database/sql"
	"errors"
	"fmt"

	"tablebook_backend/internal/models"
	"tablebook_backend/internal/repositories"
	"tablebook_backend/pkg/utils"
)

// --- Custom Service Errors for Customer ---
var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerValidation = errors.New("customer data validation error")
)

// --- Customer DTOs ---
type CreateCustomerRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name" binding:"required"`
	Phone      *string `json:"phone"`
	Notes      *string `json:"notes"`
}

// UpdateCustomerRequest replaces every mutable field; a save rewrites the
// whole row, last writer wins.
type UpdateCustomerRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name" binding:"required"`
	Phone      *string `json:"phone"`
	Notes      *string `json:"notes"`
}

// --- CustomerService Interface ---
type CustomerService interface {
	GetAllCustomers(searchTerm *string) ([]models.Customer, error)
	GetCustomerByID(customerID int64) (*models.Customer, error)
	GetTopCustomers() ([]models.Customer, error)
	GetCustomerReservations(customerID int64) ([]models.Reservation, error)
	CreateCustomer(req CreateCustomerRequest) (*models.Customer, error)
	UpdateCustomer(customerID int64, req UpdateCustomerRequest) (*models.Customer, error)
}

// --- customerService Implementation ---
type customerService struct {
	customerRepo    repositories.CustomerRepository
	reservationRepo repositories.ReservationRepository
	db              *sql.DB
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(customerRepo repositories.CustomerRepository, reservationRepo repositories.ReservationRepository, db *sql.DB) CustomerService {
	return &customerService{
		customerRepo:    customerRepo,
		reservationRepo: reservationRepo,
		db:              db,
	}
}

// GetAllCustomers lists every customer, or — when searchTerm is set — those
// whose first or last name contains the term. Each result has its
// reservations populated with one lookup per customer (1 + N queries).
func (s *customerService) GetAllCustomers(searchTerm *string) ([]models.Customer, error) {
	var customers []models.Customer
	var err error

	if searchTerm != nil && !utils.IsEmpty(*searchTerm) {
		customers, err = s.customerRepo.Search(*searchTerm)
	} else {
		customers, err = s.customerRepo.GetAll()
	}
	if err != nil {
		return nil, err
	}

	for i := range customers {
		reservations, err := s.reservationRepo.GetForCustomer(customers[i].ID)
		if err != nil {
			return nil, err
		}
		customers[i].Reservations = reservations
	}
	return customers, nil
}

// GetCustomerByID fetches a single customer. Reservations are not populated;
// use GetCustomerReservations for those.
func (s *customerService) GetCustomerByID(customerID int64) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

// GetTopCustomers returns up to 10 customers by descending reservation count.
func (s *customerService) GetTopCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetTopTen()
}

// GetCustomerReservations returns the reservations belonging to one customer.
func (s *customerService) GetCustomerReservations(customerID int64) ([]models.Reservation, error) {
	if _, err := s.GetCustomerByID(customerID); err != nil {
		return nil, err
	}
	return s.reservationRepo.GetForCustomer(customerID)
}

// CreateCustomer validates and inserts a new customer.
func (s *customerService) CreateCustomer(req CreateCustomerRequest) (*models.Customer, error) {
	if err := validateCustomerNames(req.FirstName, req.LastName); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FirstName:  req.FirstName,
		MiddleName: derefOrEmpty(req.MiddleName),
		LastName:   req.LastName,
		Phone:      req.Phone,
		Notes:      derefOrEmpty(req.Notes),
	}

	if _, err := s.customerRepo.Create(s.db, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer validates and rewrites an existing customer's fields.
func (s *customerService) UpdateCustomer(customerID int64, req UpdateCustomerRequest) (*models.Customer, error) {
	if err := validateCustomerNames(req.FirstName, req.LastName); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:         customerID,
		FirstName:  req.FirstName,
		MiddleName: derefOrEmpty(req.MiddleName),
		LastName:   req.LastName,
		Phone:      req.Phone,
		Notes:      derefOrEmpty(req.Notes),
	}

	if err := s.customerRepo.Update(s.db, customer); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func validateCustomerNames(firstName, lastName string) error {
	if utils.IsEmpty(firstName) {
		return fmt.Errorf("%w: first name cannot be empty", ErrCustomerValidation)
	}
	if utils.IsEmpty(lastName) {
		return fmt.Errorf("%w: last name cannot be empty", ErrCustomerValidation)
	}
	return nil
}

// derefOrEmpty normalizes optional text input: absent notes and middle names
// become empty strings, never nil.
func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
