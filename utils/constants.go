package utils

import "time"

// AccessTokenTTL and RefreshTokenTTL bound issued JWT lifetimes.
const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)
