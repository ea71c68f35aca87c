package handlers

import (
	"errors"
	"net/http"

	"broheal/models"
	kycsvc "broheal/services/kyc"
	"broheal/services/therapist"
	"broheal/services/wizard"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// KYCHandler exposes the therapist verification endpoints.
type KYCHandler struct {
	KYC        kycsvc.KYCService
	Therapists therapist.TherapistService
}

// therapistID resolves the caller's provider profile.
func (h *KYCHandler) therapistID(c *gin.Context) (string, bool) {
	t, err := h.Therapists.GetByUserID(c.Request.Context(), principal(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Therapist profile not found", "")
		return "", false
	}
	return t.ID, true
}

// Submit accepts the complete KYC submission.
func (h *KYCHandler) Submit(c *gin.Context) {
	therapistID, ok := h.therapistID(c)
	if !ok {
		return
	}

	var sub models.KYCSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.KYC.Submit(c.Request.Context(), therapistID, &sub)
	if err != nil {
		switch {
		case errors.Is(err, kycsvc.ErrAlreadyApproved), errors.Is(err, kycsvc.ErrPendingReview):
			utils.JSONError(c, http.StatusConflict, "Submission not allowed", err.Error())
		default:
			var stepErr *wizard.StepError
			if errors.As(err, &stepErr) {
				utils.JSONError(c, http.StatusBadRequest, "Invalid submission", err.Error())
				return
			}
			getLogger(c).Error("failed to submit kyc", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to submit", "")
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetStatus returns the caller's latest submission and its review state.
func (h *KYCHandler) GetStatus(c *gin.Context) {
	therapistID, ok := h.therapistID(c)
	if !ok {
		return
	}

	sub, err := h.KYC.GetStatus(c.Request.Context(), therapistID)
	if err != nil {
		if errors.Is(err, kycsvc.ErrNoSubmission) {
			c.JSON(http.StatusOK, gin.H{"status": "none"})
			return
		}
		getLogger(c).Error("failed to fetch kyc status", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch status", "")
		return
	}
	c.JSON(http.StatusOK, sub)
}
