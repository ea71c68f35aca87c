package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"broheal/config"
	"broheal/models"
	"broheal/services/payment"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes payment intent creation, the gateway callback and
// order lookups.
type PaymentHandler struct {
	Payments payment.PaymentService
}

type intentRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

// CreateIntent creates a payment intent for the caller's order and returns
// its client secret.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req intentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	order, clientSecret, err := h.Payments.CreateIntent(c.Request.Context(), principal(c), req.OrderID)
	switch {
	case errors.Is(err, payment.ErrOrderNotFound):
		utils.JSONError(c, http.StatusNotFound, "Order not found", "")
	case errors.Is(err, payment.ErrOrderClosed):
		utils.JSONError(c, http.StatusConflict, "Order no longer payable", "")
	case err != nil:
		getLogger(c).Error("failed to create payment intent", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment intent", "")
	default:
		c.JSON(http.StatusOK, gin.H{"order": order, "clientSecret": clientSecret})
	}
}

// CallbackTokenHeader carries the shared secret the payment gateway sends
// with its server-to-server callbacks.
const CallbackTokenHeader = "X-Callback-Token"

// Callback settles the gateway's server-to-server result. The route is
// public, so the request must carry the configured callback token; without a
// configured token every callback is rejected.
func (h *PaymentHandler) Callback(c *gin.Context) {
	token := config.AppConfig.StripeCallbackToken
	header := c.GetHeader(CallbackTokenHeader)
	if token == "" || subtle.ConstantTimeCompare([]byte(header), []byte(token)) != 1 {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid callback token", "")
		return
	}

	var cb models.PaymentCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid callback", err.Error())
		return
	}

	if err := h.Payments.HandleCallback(c.Request.Context(), cb); err != nil {
		if errors.Is(err, payment.ErrOrderNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Order not found", "")
			return
		}
		getLogger(c).Error("failed to handle payment callback", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process callback", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Processed"})
}

// GetOrder returns one of the caller's orders with its payment status.
func (h *PaymentHandler) GetOrder(c *gin.Context) {
	order, err := h.Payments.GetOrder(c.Request.Context(), principal(c), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, payment.ErrOrderNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Order not found", "")
			return
		}
		getLogger(c).Error("failed to get order", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get order", "")
		return
	}
	c.JSON(http.StatusOK, order)
}
