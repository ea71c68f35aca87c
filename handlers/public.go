package handlers

import (
	"net/http"

	catalogRepo "broheal/database/repository/catalog"
	settingsRepo "broheal/database/repository/settings"
	"broheal/services/therapist"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PublicHandler serves the unauthenticated endpoints the SPA loads before
// login: settings, the service catalogue, verified therapists and approved
// reviews.
type PublicHandler struct {
	SettingsRepo settingsRepo.SettingsRepository
	CatalogRepo  catalogRepo.CatalogRepository
	Therapists   therapist.TherapistService
}

// GetSettings returns the platform settings document.
func (h *PublicHandler) GetSettings(c *gin.Context) {
	settings, err := h.SettingsRepo.GetSettings()
	if err != nil {
		getLogger(c).Error("failed to fetch settings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch settings", "")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ListServices returns the active service catalogue.
func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.CatalogRepo.ListActiveServices()
	if err != nil {
		getLogger(c).Error("failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", "")
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListAddons returns the active addons of one service.
func (h *PublicHandler) ListAddons(c *gin.Context) {
	serviceID := c.Param("serviceId")
	if !utils.IsValidObjectID(serviceID) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service id", "")
		return
	}
	addons, err := h.CatalogRepo.ListAddonsByService(serviceID)
	if err != nil {
		getLogger(c).Error("failed to list addons", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list addons", "")
		return
	}
	c.JSON(http.StatusOK, addons)
}

// ListTherapists returns verified therapist profiles.
func (h *PublicHandler) ListTherapists(c *gin.Context) {
	therapists, err := h.Therapists.ListVerified(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to list therapists", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list therapists", "")
		return
	}
	c.JSON(http.StatusOK, therapists)
}

// ListReviews returns approved reviews for the public site.
func (h *PublicHandler) ListReviews(c *gin.Context) {
	reviews, err := h.SettingsRepo.ListApprovedReviews()
	if err != nil {
		getLogger(c).Error("failed to list reviews", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reviews", "")
		return
	}
	c.JSON(http.StatusOK, reviews)
}
