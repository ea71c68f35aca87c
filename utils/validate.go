package utils

import "regexp"

var (
	phonePattern    = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	pincodePattern  = regexp.MustCompile(`^[0-9]{6}$`)
	objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// IsValidPhone reports whether s is a plausible 10-digit Indian mobile
// number: it must start with 6-9 and must not be a single repeated digit.
func IsValidPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return true
		}
	}
	return false
}

// IsValidPincode reports whether s is a 6-digit postal code.
func IsValidPincode(s string) bool {
	return pincodePattern.MatchString(s)
}

// IsValidObjectID reports whether s is a 24-character hex identifier.
func IsValidObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}
