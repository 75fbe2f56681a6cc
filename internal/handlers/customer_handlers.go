package handlers

import (
	"errors"
	"net/http"

	"tablebook_backend/internal/services"
	"tablebook_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CustomerHandler holds the customer service.
type CustomerHandler struct {
	customerService services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: cs}
}

// GetCustomers handles listing all customers, or searching by name when a
// search query parameter is present. Results include their reservations.
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	var pSearchTerm *string
	if searchTerm := c.Query("search"); searchTerm != "" {
		pSearchTerm = &searchTerm
	}

	customers, err := h.customerService.GetAllCustomers(pSearchTerm)
	if err != nil {
		utils.LogError(err, "GetCustomers: Error from customerService.GetAllCustomers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch customers.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customers})
}

// GetTopCustomers handles fetching the top 10 customers by reservation count.
func (h *CustomerHandler) GetTopCustomers(c *gin.Context) {
	customers, err := h.customerService.GetTopCustomers()
	if err != nil {
		utils.LogError(err, "GetTopCustomers: Error from customerService.GetTopCustomers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch top customers.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customers})
}

// GetCustomerByID handles fetching a single customer by ID.
func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	customerID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	customer, err := h.customerService.GetCustomerByID(customerID)
	if err != nil {
		utils.LogError(err, "GetCustomerByID: Error from customerService.GetCustomerByID")
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch customer.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":  customer,
		"full_name": customer.FullName(),
	})
}

// GetCustomerReservations handles fetching one customer's reservations.
func (h *CustomerHandler) GetCustomerReservations(c *gin.Context) {
	customerID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	reservations, err := h.customerService.GetCustomerReservations(customerID)
	if err != nil {
		utils.LogError(err, "GetCustomerReservations: Error from customerService.GetCustomerReservations")
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch reservations.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reservations})
}

// CreateCustomer handles the creation of a new customer.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCustomer: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	customer, err := h.customerService.CreateCustomer(req)
	if err != nil {
		utils.LogError(err, "CreateCustomer: Error from customerService.CreateCustomer")
		if errors.Is(err, services.ErrCustomerValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create customer.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer handles rewriting an existing customer's fields.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	customerID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	var req services.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateCustomer: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	customer, err := h.customerService.UpdateCustomer(customerID, req)
	if err != nil {
		utils.LogError(err, "UpdateCustomer: Error from customerService.UpdateCustomer")
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrCustomerValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update customer.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}
