package auth

import (
	"testing"

	"broheal/models"

	"github.com/stretchr/testify/assert"
)

func TestSessionKeyIsRoleScoped(t *testing.T) {
	userKey := SessionKey(models.RoleUser, "u1")
	therapistKey := SessionKey(models.RoleTherapist, "u1")

	assert.Equal(t, "session:user:u1", userKey)
	assert.Equal(t, "session:therapist:u1", therapistKey)
	assert.NotEqual(t, userKey, therapistKey,
		"the same principal must get distinct keys per role")
}

func TestStaleRoleKeysExcludeActiveRole(t *testing.T) {
	keys := StaleRoleKeys(models.RoleUser, "u1")

	assert.ElementsMatch(t, []string{
		"session:therapist:u1",
		"session:admin:u1",
	}, keys)
	assert.NotContains(t, keys, "session:user:u1")
}

func TestLegacyTokenKeys(t *testing.T) {
	assert.Equal(t, []string{
		"accessToken:u1",
		"refreshToken:u1",
	}, LegacyTokenKeys("u1"))
}
