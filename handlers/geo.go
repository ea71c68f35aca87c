package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"broheal/services/geocode"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeoHandler exposes reverse geocoding for the address step of the booking
// flow.
type GeoHandler struct {
	Geocoder geocode.GeocodeService
}

// Reverse resolves lat/lng query params to an address. The three failure
// modes map to distinct statuses so the client can tell "nothing here" from
// "try again later".
func (h *GeoHandler) Reverse(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		utils.JSONError(c, http.StatusBadRequest, "lat and lng are required", "")
		return
	}

	result, err := h.Geocoder.Reverse(c.Request.Context(), lat, lng)
	switch {
	case errors.Is(err, geocode.ErrNoResult):
		utils.JSONError(c, http.StatusNotFound, "No address found", "")
	case errors.Is(err, geocode.ErrDenied):
		getLogger(c).Error("geocoding request denied", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Geocoding unavailable", "")
	case errors.Is(err, geocode.ErrUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "Geocoding unavailable", "")
	case err != nil:
		getLogger(c).Error("reverse geocode failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to resolve address", "")
	default:
		c.JSON(http.StatusOK, result)
	}
}
