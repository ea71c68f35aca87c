package handlers

import (
	"errors"
	"net/http"

	"broheal/models"
	"broheal/services/auth"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the OTP, password and session endpoints.
type AuthHandler struct {
	Auth auth.AuthService
}

type sendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Role  string `json:"role"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
	Role  string `json:"role"`
}

type firebaseLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	Role    string `json:"role"`
}

type passwordLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func normalizeRole(role string) string {
	switch role {
	case models.RoleTherapist:
		return models.RoleTherapist
	default:
		return models.RoleUser
	}
}

// SendOTP starts the phone login flow for users and therapists.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	err := h.Auth.SendOTP(c.Request.Context(), normalizeRole(req.Role), req.Phone)
	switch {
	case errors.Is(err, auth.ErrInvalidPhone):
		utils.JSONError(c, http.StatusBadRequest, "Invalid phone", err.Error())
	case errors.Is(err, utils.ErrOTPCooldown):
		utils.JSONError(c, http.StatusTooManyRequests, "Too many requests", err.Error())
	case err != nil:
		getLogger(c).Error("failed to send OTP", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send OTP", "")
	default:
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
	}
}

// VerifyOTP completes the phone login flow, creating the account on first
// login.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Auth.VerifyOTP(c.Request.Context(), normalizeRole(req.Role), req.Phone, req.OTP)
	if err != nil {
		if errors.Is(err, auth.ErrOTPMismatch) || errors.Is(err, auth.ErrInvalidPhone) {
			utils.JSONError(c, http.StatusUnauthorized, "OTP verification failed", err.Error())
			return
		}
		getLogger(c).Error("failed to verify OTP", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FirebaseLogin accepts a Firebase phone-auth ID token in place of an OTP.
func (h *AuthHandler) FirebaseLogin(c *gin.Context) {
	var req firebaseLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Auth.VerifyFirebaseToken(c.Request.Context(), normalizeRole(req.Role), req.IDToken)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Token verification failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PasswordLogin is the email/password path.
func (h *AuthHandler) PasswordLogin(c *gin.Context) {
	var req passwordLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Auth.LoginWithPassword(c.Request.Context(), normalizeRole(req.Role), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
			return
		}
		getLogger(c).Error("password login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SendAdminOTP starts the admin login flow; only the configured admin phone
// is accepted.
func (h *AuthHandler) SendAdminOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	err := h.Auth.SendAdminOTP(c.Request.Context(), req.Phone)
	switch {
	case errors.Is(err, auth.ErrNotAdminPhone):
		// Same answer as success, so the endpoint does not confirm which
		// number is the admin's.
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
	case errors.Is(err, utils.ErrOTPCooldown):
		utils.JSONError(c, http.StatusTooManyRequests, "Too many requests", err.Error())
	case err != nil:
		getLogger(c).Error("failed to send admin OTP", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send OTP", "")
	default:
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
	}
}

// VerifyAdminOTP completes the admin login flow.
func (h *AuthHandler) VerifyAdminOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Auth.VerifyAdminOTP(c.Request.Context(), req.Phone, req.OTP)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "OTP verification failed", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh rotates the access token from a refresh token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	tokens, err := h.Auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Refresh failed", "")
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Logout clears the caller's role-scoped session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(c.Request.Context(), principalRole(c), principal(c)); err != nil {
		getLogger(c).Error("logout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
