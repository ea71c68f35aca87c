package handlers

import (
	"errors"
	"net/http"

	"broheal/models"
	"broheal/services/booking"
	"broheal/services/wizard"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes slot discovery, holds and the booking lifecycle.
type BookingHandler struct {
	Bookings booking.BookingService
}

type holdRequest struct {
	TherapistID string `json:"therapistId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	SlotTime    string `json:"slotTime" binding:"required"`
}

// GetSlots returns available slots for a therapist and date.
// GET /slots?therapistId=...&date=YYYY-MM-DD
func (h *BookingHandler) GetSlots(c *gin.Context) {
	therapistID := c.Query("therapistId")
	date := c.Query("date")
	if therapistID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "therapistId and date are required", "")
		return
	}

	slots, err := h.Bookings.GetAvailableSlots(c.Request.Context(), therapistID, date)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidTherapistID) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid therapist id", "")
			return
		}
		getLogger(c).Error("failed to fetch slots", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch slots", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// HoldSlot reserves a slot for the caller ahead of submission.
func (h *BookingHandler) HoldSlot(c *gin.Context) {
	var req holdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	hold, err := h.Bookings.HoldSlot(c.Request.Context(), principal(c), req.TherapistID, req.Date, req.SlotTime)
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable), errors.Is(err, booking.ErrHoldNotOwned):
		utils.JSONError(c, http.StatusConflict, "Slot unavailable", err.Error())
	case errors.Is(err, booking.ErrInvalidTherapistID):
		utils.JSONError(c, http.StatusBadRequest, "Invalid therapist id", "")
	case err != nil:
		getLogger(c).Error("failed to hold slot", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to hold slot", "")
	default:
		c.JSON(http.StatusOK, hold)
	}
}

// CreateBooking submits the accumulated booking request.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := h.Bookings.CreateBooking(c.Request.Context(), principal(c), &req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingClosed):
		utils.JSONError(c, http.StatusServiceUnavailable, "Booking closed", err.Error())
	case errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrHoldNotOwned),
		errors.Is(err, booking.ErrHoldExpired):
		utils.JSONError(c, http.StatusConflict, "Slot unavailable", err.Error())
	case errors.Is(err, booking.ErrInvalidTherapistID),
		errors.Is(err, booking.ErrInvalidServiceID):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
	default:
		var stepErr *wizard.StepError
		if errors.As(err, &stepErr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
			return
		}
		getLogger(c).Error("failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", "")
	}
}

// ListBookings returns the caller's bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListUserBookings(c.Request.Context(), principal(c))
	if err != nil {
		getLogger(c).Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one of the caller's bookings.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Bookings.GetBooking(c.Request.Context(), principal(c), c.Param("bookingId"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		getLogger(c).Error("failed to get booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get booking", "")
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking cancels one of the caller's bookings and frees its slot.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	err := h.Bookings.CancelBooking(c.Request.Context(), principal(c), c.Param("bookingId"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Cannot cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
