package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *StorageServiceImpl {
	return &StorageServiceImpl{
		cloudName: "demo-cloud",
		apiKey:    "key123",
		apiSecret: "shhh",
	}
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestGetSecureDownloadURLShape(t *testing.T) {
	s := testService()

	url, err := s.GetSecureDownloadURL(context.Background(), "image", "kyc/doc-front", 15*time.Minute)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://res.cloudinary.com/demo-cloud/image/authenticated/s--"))
	assert.True(t, strings.HasSuffix(url, "/kyc/doc-front"))

	// The embedded signature must cover the embedded expiry and public ID.
	parts := strings.Split(url, "/")
	var sig string
	var expiresAt int64
	for _, p := range parts {
		if strings.HasPrefix(p, "s--") {
			sig = strings.TrimSuffix(strings.TrimPrefix(p, "s--"), "--")
		}
		if strings.HasPrefix(p, "expires_") {
			v, err := strconv.ParseInt(strings.TrimPrefix(p, "expires_"), 10, 64)
			require.NoError(t, err)
			expiresAt = v
		}
	}
	require.NotEmpty(t, sig)
	require.NotZero(t, expiresAt)
	assert.Greater(t, expiresAt, time.Now().Unix())

	want := sha1Hex(fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, "kyc/doc-front", "shhh"))
	assert.Equal(t, want, sig)
}

func TestSignUploadParams(t *testing.T) {
	s := testService()

	params := s.SignUploadParams("kyc")

	assert.Equal(t, "demo-cloud", params.CloudName)
	assert.Equal(t, "key123", params.APIKey)
	assert.Equal(t, "kyc", params.Folder)
	require.NotZero(t, params.Timestamp)

	want := sha1Hex(fmt.Sprintf("folder=%s&timestamp=%d%s", "kyc", params.Timestamp, "shhh"))
	assert.Equal(t, want, params.Signature)
}
