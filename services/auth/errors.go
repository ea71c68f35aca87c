package auth

import "errors"

var (
	// ErrInvalidPhone rejects numbers that fail the mobile validation rules.
	ErrInvalidPhone = errors.New("invalid mobile number")
	// ErrInvalidCredentials covers both unknown accounts and bad passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrOTPMismatch signals a wrong or expired OTP.
	ErrOTPMismatch = errors.New("OTP verification failed")
	// ErrNotAdminPhone rejects admin OTP requests for unknown numbers.
	ErrNotAdminPhone = errors.New("phone is not registered for admin access")
	// ErrInvalidRefreshToken rejects refresh attempts with a bad token.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
