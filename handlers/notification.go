package handlers

import (
	"net/http"

	"broheal/services/notification"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the per-recipient notification endpoints,
// shared by all roles.
type NotificationHandler struct {
	Notifications notification.NotificationService
}

// List returns the caller's recent notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.Notifications.List(c.Request.Context(), principal(c), principalRole(c))
	if err != nil {
		getLogger(c).Error("failed to list notifications", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list notifications", "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// MarkRead flips one notification owned by the caller.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Notifications.MarkRead(c.Request.Context(), principal(c), c.Param("notificationId")); err != nil {
		getLogger(c).Error("failed to mark notification read", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to mark read", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked read"})
}

// MarkAllRead flips every unread notification for the caller in one update.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	count, err := h.Notifications.MarkAllRead(c.Request.Context(), principal(c), principalRole(c))
	if err != nil {
		getLogger(c).Error("failed to mark all notifications read", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to mark all read", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": count})
}
