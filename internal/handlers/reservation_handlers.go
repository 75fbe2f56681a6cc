package handlers

import (
	"errors"
	"net/http"

	"tablebook_backend/internal/services"
	"tablebook_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler holds the reservation service.
type ReservationHandler struct {
	reservationService services.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(rs services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: rs}
}

// GetReservationByID handles fetching a single reservation by ID. The
// response carries the start time both raw and in its display form.
func (h *ReservationHandler) GetReservationByID(c *gin.Context) {
	reservationID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid reservation ID format.", err.Error()))
		return
	}

	reservation, err := h.reservationService.GetReservationByID(reservationID)
	if err != nil {
		utils.LogError(err, "GetReservationByID: Error from reservationService.GetReservationByID")
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Reservation not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch reservation.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation":        reservation,
		"start_at_formatted": reservation.FormattedStartAt(),
	})
}

// CreateReservation handles the creation of a new reservation.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req services.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateReservation: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	reservation, err := h.reservationService.CreateReservation(req)
	if err != nil {
		utils.LogError(err, "CreateReservation: Error from reservationService.CreateReservation")
		if errors.Is(err, services.ErrReservationValidation) || errors.Is(err, services.ErrStartAtFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found for reservation.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create reservation.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation handles rewriting the mutable fields of a reservation.
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	reservationID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid reservation ID format.", err.Error()))
		return
	}

	var req services.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateReservation: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	reservation, err := h.reservationService.UpdateReservation(reservationID, req)
	if err != nil {
		utils.LogError(err, "UpdateReservation: Error from reservationService.UpdateReservation")
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Reservation not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrReservationValidation) || errors.Is(err, services.ErrStartAtFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update reservation.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}
