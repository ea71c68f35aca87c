package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubGeocoder(t *testing.T, body string) *GoogleGeocodeService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return &GoogleGeocodeService{APIKey: "test", BaseURL: srv.URL, Client: srv.Client()}
}

func TestReverseResolvesAddressComponents(t *testing.T) {
	g := stubGeocoder(t, `{
		"status": "OK",
		"results": [{
			"formatted_address": "12 MG Road, Bengaluru, Karnataka 560001, India",
			"address_components": [
				{"long_name": "Bengaluru", "types": ["locality", "political"]},
				{"long_name": "Karnataka", "types": ["administrative_area_level_1"]},
				{"long_name": "560001", "types": ["postal_code"]}
			]
		}]
	}`)

	result, err := g.Reverse(context.Background(), 12.9716, 77.5946)
	require.NoError(t, err)
	assert.Equal(t, "12 MG Road, Bengaluru, Karnataka 560001, India", result.FormattedAddress)
	assert.Equal(t, "Bengaluru", result.City)
	assert.Equal(t, "Karnataka", result.State)
	assert.Equal(t, "560001", result.Pincode)
}

func TestReverseZeroResults(t *testing.T) {
	g := stubGeocoder(t, `{"status": "ZERO_RESULTS", "results": []}`)
	_, err := g.Reverse(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestReverseRequestDenied(t *testing.T) {
	g := stubGeocoder(t, `{"status": "REQUEST_DENIED"}`)
	_, err := g.Reverse(context.Background(), 12.9, 77.5)
	assert.ErrorIs(t, err, ErrDenied)
}

func TestReverseOverQueryLimit(t *testing.T) {
	g := stubGeocoder(t, `{"status": "OVER_QUERY_LIMIT"}`)
	_, err := g.Reverse(context.Background(), 12.9, 77.5)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestReverseUnreachableUpstream(t *testing.T) {
	g := &GoogleGeocodeService{
		APIKey:  "test",
		BaseURL: "http://127.0.0.1:1",
		Client:  &http.Client{},
	}
	_, err := g.Reverse(context.Background(), 12.9, 77.5)
	assert.ErrorIs(t, err, ErrUnavailable)
}
