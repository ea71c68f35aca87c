package models

import "time"

// Tokens is the access/refresh token pair issued on login.
type Tokens struct {
	Access  string `json:"accessToken"`
	Refresh string `json:"refreshToken"`
}

// SessionProfile is the slim profile blob carried inside a session.
type SessionProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Session is the role-scoped server-side session. At most one session per
// (role, principal) is trusted at a time.
type Session struct {
	Role      string         `json:"role"`
	Profile   SessionProfile `json:"profile"`
	Tokens    Tokens         `json:"tokens"`
	ExpiresAt time.Time      `json:"expiresAt"`
}
