package handlers

import (
	"errors"
	"net/http"

	"broheal/models"
	"broheal/services/booking"
	"broheal/services/therapist"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TherapistHandler exposes the provider-side endpoints: profile, weekly
// schedule and assigned bookings.
type TherapistHandler struct {
	Therapists therapist.TherapistService
	Bookings   booking.BookingService
}

type scheduleRequest struct {
	Templates []models.SlotTemplate `json:"templates" binding:"required"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetProfile returns the caller's provider profile.
func (h *TherapistHandler) GetProfile(c *gin.Context) {
	t, err := h.Therapists.GetByUserID(c.Request.Context(), principal(c))
	if err != nil {
		if errors.Is(err, therapist.ErrTherapistNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Therapist profile not found", "")
			return
		}
		getLogger(c).Error("failed to get therapist profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve profile", "")
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateProfile applies the submitted provider profile fields.
func (h *TherapistHandler) UpdateProfile(c *gin.Context) {
	var req models.TherapistUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	t, err := h.Therapists.UpdateProfile(c.Request.Context(), principal(c), req)
	if err != nil {
		if errors.Is(err, therapist.ErrTherapistNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Therapist profile not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, t)
}

// SetSchedule replaces the caller's weekly slot templates.
func (h *TherapistHandler) SetSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	schedule, err := h.Therapists.SetSchedule(c.Request.Context(), principal(c), req.Templates)
	if err != nil {
		if errors.Is(err, therapist.ErrTherapistNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Therapist profile not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// GetSchedule returns the caller's stored weekly templates.
func (h *TherapistHandler) GetSchedule(c *gin.Context) {
	schedule, err := h.Therapists.GetSchedule(c.Request.Context(), principal(c))
	if err != nil {
		if errors.Is(err, therapist.ErrTherapistNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Therapist profile not found", "")
			return
		}
		getLogger(c).Error("failed to get schedule", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve schedule", "")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// ListBookings returns the bookings assigned to the caller.
func (h *TherapistHandler) ListBookings(c *gin.Context) {
	t, err := h.Therapists.GetByUserID(c.Request.Context(), principal(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Therapist profile not found", "")
		return
	}

	bookings, err := h.Bookings.ListTherapistBookings(c.Request.Context(), t.ID)
	if err != nil {
		getLogger(c).Error("failed to list therapist bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus lets the caller complete or cancel an assigned booking.
func (h *TherapistHandler) UpdateBookingStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	t, err := h.Therapists.GetByUserID(c.Request.Context(), principal(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Therapist profile not found", "")
		return
	}

	bookingID := c.Param("bookingId")
	b, err := h.Bookings.GetBooking(c.Request.Context(), "", bookingID)
	if err != nil || b.TherapistID != t.ID {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}

	if err := h.Bookings.UpdateStatus(c.Request.Context(), bookingID, req.Status); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to update booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}
