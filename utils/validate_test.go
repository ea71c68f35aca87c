package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{"9876543210", "6000000001", "7123456789", "8912345670"}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), "expected %s to be valid", phone)
	}

	invalid := []string{
		"",
		"1234567890", // leading digit below 6
		"5876543210",
		"987654321",   // too short
		"98765432100", // too long
		"9999999999",  // all repeated
		"98765abcde",
		"+919876543210",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), "expected %s to be invalid", phone)
	}
}

func TestIsValidPincode(t *testing.T) {
	assert.True(t, IsValidPincode("560001"))
	assert.True(t, IsValidPincode("110001"))

	assert.False(t, IsValidPincode(""))
	assert.False(t, IsValidPincode("5600"))
	assert.False(t, IsValidPincode("5600011"))
	assert.False(t, IsValidPincode("56000a"))
}

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID("507f1f77bcf86cd799439011"))
	assert.True(t, IsValidObjectID(NewHexID()))

	assert.False(t, IsValidObjectID("abc"))
	assert.False(t, IsValidObjectID(""))
	assert.False(t, IsValidObjectID("507f1f77bcf86cd79943901")) // 23 chars
	assert.False(t, IsValidObjectID("507f1f77bcf86cd79943901z"))
}
