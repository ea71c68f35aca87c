package handlers

import (
	"errors"
	"net/http"
	"time"

	bookingRepo "broheal/database/repository/booking"
	catalogRepo "broheal/database/repository/catalog"
	settingsRepo "broheal/database/repository/settings"
	therapistRepo "broheal/database/repository/therapist"
	userRepo "broheal/database/repository/user"
	"broheal/models"
	kycsvc "broheal/services/kyc"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the back-office endpoints: settings, catalogue
// management, users, therapists, KYC review, bookings and review moderation.
type AdminHandler struct {
	SettingsRepo  settingsRepo.SettingsRepository
	CatalogRepo   catalogRepo.CatalogRepository
	UserRepo      userRepo.UserRepository
	TherapistRepo therapistRepo.TherapistRepository
	BookingRepo   bookingRepo.BookingRepository
	KYC           kycsvc.KYCService
}

// UpdateSettings replaces the platform settings document.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.SettingsRepo.UpdateSettings(&settings); err != nil {
		getLogger(c).Error("failed to update settings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update settings", "")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpsertService creates or updates a catalogue service.
func (h *AdminHandler) UpsertService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if svc.ID == "" {
		svc.ID = utils.NewHexID()
		svc.CreatedAt = time.Now()
	}
	if !utils.IsValidObjectID(svc.ID) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service id", "")
		return
	}

	if err := h.CatalogRepo.UpsertService(&svc); err != nil {
		getLogger(c).Error("failed to upsert service", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save service", "")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// UpsertAddon creates or updates a catalogue addon.
func (h *AdminHandler) UpsertAddon(c *gin.Context) {
	var addon models.Addon
	if err := c.ShouldBindJSON(&addon); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if !utils.IsValidObjectID(addon.ServiceID) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service id", "")
		return
	}
	if addon.ID == "" {
		addon.ID = utils.NewHexID()
	}

	if err := h.CatalogRepo.UpsertAddon(&addon); err != nil {
		getLogger(c).Error("failed to upsert addon", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save addon", "")
		return
	}
	c.JSON(http.StatusOK, addon)
}

// ListUsers returns accounts of one role, defaulting to customers.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	role := c.DefaultQuery("role", models.RoleUser)
	users, err := h.UserRepo.ListByRole(role)
	if err != nil {
		getLogger(c).Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListTherapists returns every provider profile, verified or not.
func (h *AdminHandler) ListTherapists(c *gin.Context) {
	therapists, err := h.TherapistRepo.ListAll()
	if err != nil {
		getLogger(c).Error("failed to list therapists", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list therapists", "")
		return
	}
	c.JSON(http.StatusOK, therapists)
}

// ListPendingKYC returns submissions awaiting review, oldest first.
func (h *AdminHandler) ListPendingKYC(c *gin.Context) {
	subs, err := h.KYC.ListPending(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to list pending kyc", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list submissions", "")
		return
	}
	c.JSON(http.StatusOK, subs)
}

// ReviewKYC records the approve/reject decision on a submission.
func (h *AdminHandler) ReviewKYC(c *gin.Context) {
	var review models.KYCReview
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	err := h.KYC.Review(c.Request.Context(), c.Param("submissionId"), principal(c), review)
	if err != nil {
		if errors.Is(err, kycsvc.ErrNoSubmission) {
			utils.JSONError(c, http.StatusNotFound, "Submission not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to review submission", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review recorded"})
}

// ListBookings returns all bookings, optionally filtered by status.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var (
		bookings []models.Booking
		err      error
	)
	if status := c.Query("status"); status != "" {
		bookings, err = h.BookingRepo.ListByStatus(status)
	} else {
		bookings, err = h.BookingRepo.ListAll()
	}
	if err != nil {
		getLogger(c).Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListReviews returns every review, approved or not.
func (h *AdminHandler) ListReviews(c *gin.Context) {
	reviews, err := h.SettingsRepo.ListAllReviews()
	if err != nil {
		getLogger(c).Error("failed to list reviews", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reviews", "")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ApproveReview publishes a review and folds its rating into the therapist's
// aggregate.
func (h *AdminHandler) ApproveReview(c *gin.Context) {
	rev, err := h.SettingsRepo.ApproveReview(c.Param("reviewId"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Review not found", err.Error())
		return
	}

	if err := h.TherapistRepo.ApplyRating(rev.TherapistID, rev.Rating); err != nil {
		getLogger(c).Warn("failed to apply rating",
			zap.String("therapist_id", rev.TherapistID), zap.Error(err))
	}
	c.JSON(http.StatusOK, rev)
}
