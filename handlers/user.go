package handlers

import (
	"errors"
	"net/http"

	"broheal/models"
	"broheal/services/user"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the authenticated account profile endpoints, shared by
// all roles.
type UserHandler struct {
	Users user.UserService
}

// GetProfile returns the caller's account profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.Users.GetProfile(c.Request.Context(), principal(c))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Profile not found", "")
			return
		}
		getLogger(c).Error("failed to get profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve profile", "")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies the submitted profile fields.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	profile, err := h.Users.UpdateProfile(c.Request.Context(), principal(c), req)
	if err != nil {
		getLogger(c).Error("failed to update profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", "")
		return
	}
	c.JSON(http.StatusOK, profile)
}
