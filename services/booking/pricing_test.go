package booking

import (
	"testing"

	"broheal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	svc := &models.Service{Price: 100, Duration: 60}
	addons := []models.SelectedAddon{
		{AddonID: "a1", Price: 250, Duration: 30},
	}

	price, duration := ComputeTotals(svc, addons)
	assert.Equal(t, 350.0, price)
	assert.Equal(t, 90, duration)
}

func TestComputeTotalsZeroPriceAddon(t *testing.T) {
	svc := &models.Service{Price: 10, Duration: 30}
	addons := []models.SelectedAddon{
		{AddonID: "a1", Price: 0, Duration: 15},
	}

	price, duration := ComputeTotals(svc, addons)
	assert.Equal(t, 10.0, price)
	assert.Equal(t, 45, duration)
}

func TestComputeTotalsNoAddons(t *testing.T) {
	price, duration := ComputeTotals(&models.Service{Price: 499, Duration: 45}, nil)
	assert.Equal(t, 499.0, price)
	assert.Equal(t, 45, duration)
}

func TestDedupeAddons(t *testing.T) {
	addons := []models.SelectedAddon{
		{AddonID: "a1", Price: 100},
		{AddonID: "a2", Price: 200},
		{AddonID: "a1", Price: 999}, // duplicate toggle, first wins
		{AddonID: ""},               // unkeyed entries dropped
	}

	deduped := DedupeAddons(addons)
	assert.Len(t, deduped, 2)
	assert.Equal(t, 100.0, deduped[0].Price)
	assert.Equal(t, "a2", deduped[1].AddonID)
}
