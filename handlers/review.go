package handlers

import (
	"errors"
	"net/http"
	"time"

	settingsRepo "broheal/database/repository/settings"
	"broheal/models"
	"broheal/services/booking"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewHandler lets users review completed bookings. Reviews stay hidden
// until an admin approves them.
type ReviewHandler struct {
	SettingsRepo settingsRepo.SettingsRepository
	Bookings     booking.BookingService
}

type createReviewRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// CreateReview records a review of one of the caller's completed bookings.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		utils.JSONError(c, http.StatusBadRequest, "Rating must be between 1 and 5", "")
		return
	}

	b, err := h.Bookings.GetBooking(c.Request.Context(), principal(c), req.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		getLogger(c).Error("failed to load booking for review", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create review", "")
		return
	}
	if b.Status != models.BookingStatusCompleted {
		utils.JSONError(c, http.StatusBadRequest, "Only completed bookings can be reviewed", "")
		return
	}

	rev := &models.Review{
		ID:          uuid.New().String(),
		BookingID:   b.ID,
		UserID:      principal(c),
		TherapistID: b.TherapistID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		Approved:    false,
		CreatedAt:   time.Now(),
	}
	if err := h.SettingsRepo.CreateReview(rev); err != nil {
		getLogger(c).Error("failed to create review", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create review", "")
		return
	}
	c.JSON(http.StatusCreated, rev)
}
