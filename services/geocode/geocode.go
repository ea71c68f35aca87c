package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Reverse lookup outcomes other than success. Each maps to a distinct API
// response, so clients can tell "no address here" from "service trouble".
var (
	// ErrNoResult means the lookup worked but nothing is at that point.
	ErrNoResult = errors.New("no address found for coordinates")
	// ErrUnavailable means the upstream geocoder could not be reached or is
	// over quota.
	ErrUnavailable = errors.New("geocoding service unavailable")
	// ErrDenied means the request was rejected, usually a bad or restricted
	// API key.
	ErrDenied = errors.New("geocoding request denied")
)

// Result is a successful reverse lookup.
type Result struct {
	FormattedAddress string `json:"formattedAddress"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	Pincode          string `json:"pincode,omitempty"`
}

// GeocodeService resolves coordinates to addresses.
type GeocodeService interface {
	Reverse(ctx context.Context, lat, lng float64) (*Result, error)
}

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocodeService calls the Google Maps Geocoding REST API.
type GoogleGeocodeService struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewGoogleGeocodeService creates a geocoder with a bounded request timeout.
func NewGoogleGeocodeService(apiKey string) *GoogleGeocodeService {
	return &GoogleGeocodeService{
		APIKey:  apiKey,
		BaseURL: googleGeocodeURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type googleGeocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// Reverse resolves the coordinates. The upstream status is folded into the
// tagged errors above; only a genuinely found address returns a Result.
func (s *GoogleGeocodeService) Reverse(ctx context.Context, lat, lng float64) (*Result, error) {
	q := url.Values{}
	q.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("key", s.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	var body googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, ErrUnavailable
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, ErrNoResult
	case "REQUEST_DENIED":
		return nil, ErrDenied
	default:
		return nil, ErrUnavailable
	}
	if len(body.Results) == 0 {
		return nil, ErrNoResult
	}

	top := body.Results[0]
	out := &Result{FormattedAddress: top.FormattedAddress}
	for _, comp := range top.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality":
				out.City = comp.LongName
			case "administrative_area_level_1":
				out.State = comp.LongName
			case "postal_code":
				out.Pincode = comp.LongName
			}
		}
	}
	return out, nil
}
