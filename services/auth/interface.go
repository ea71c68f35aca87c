package auth

import (
	"context"

	"broheal/models"
)

// AuthResponse is what a completed login returns to the client.
type AuthResponse struct {
	Profile models.SessionProfile `json:"profile"`
	Role    string                `json:"role"`
	Tokens  models.Tokens         `json:"tokens"`
}

// AuthService drives the OTP and password login flows for all three roles.
type AuthService interface {
	// SendOTP validates the phone and initiates an OTP for the given role.
	SendOTP(ctx context.Context, role, phone string) error
	// VerifyOTP checks the OTP, creating the account on first login for the
	// user role, and issues a role-scoped session.
	VerifyOTP(ctx context.Context, role, phone, otp string) (*AuthResponse, error)
	// VerifyFirebaseToken accepts a Firebase phone-auth ID token in place of a
	// platform OTP.
	VerifyFirebaseToken(ctx context.Context, role, idToken string) (*AuthResponse, error)
	// LoginWithPassword is the email/password path.
	LoginWithPassword(ctx context.Context, role, email, password string) (*AuthResponse, error)
	// SendAdminOTP gates the OTP on the configured admin phone.
	SendAdminOTP(ctx context.Context, phone string) error
	// VerifyAdminOTP completes the admin OTP flow.
	VerifyAdminOTP(ctx context.Context, phone, otp string) (*AuthResponse, error)
	// Refresh rotates the access token from a refresh token.
	Refresh(ctx context.Context, refreshToken string) (*models.Tokens, error)
	// Logout clears the role-scoped session.
	Logout(ctx context.Context, role, userID string) error
}
