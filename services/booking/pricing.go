package booking

import "broheal/models"

// DedupeAddons keeps the first selection per addonId, mirroring the toggle
// semantics of the booking flow.
func DedupeAddons(addons []models.SelectedAddon) []models.SelectedAddon {
	seen := make(map[string]bool, len(addons))
	out := make([]models.SelectedAddon, 0, len(addons))
	for _, a := range addons {
		if a.AddonID == "" || seen[a.AddonID] {
			continue
		}
		seen[a.AddonID] = true
		out = append(out, a)
	}
	return out
}

// AddonTotals sums the price and duration of the selected addons.
func AddonTotals(addons []models.SelectedAddon) (price float64, duration int) {
	for _, a := range addons {
		price += a.Price
		duration += a.Duration
	}
	return price, duration
}

// ComputeTotals folds the base service and the selected addons into the
// booking's total price and duration.
func ComputeTotals(svc *models.Service, addons []models.SelectedAddon) (price float64, duration int) {
	price, duration = AddonTotals(addons)
	if svc != nil {
		price += svc.Price
		duration += svc.Duration
	}
	return price, duration
}
