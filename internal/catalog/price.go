package catalog

import (
	"math"

	"talad/internal/models"
)

// ResolvePrice computes the final unit price for a product given the buyer's
// selected option values and an optional percentage discount.
//
// Options are folded in list order: an "add" value accumulates onto the
// running price, a "replace" value overwrites it (the last replace in
// iteration order wins). Determinism therefore depends on the option list
// keeping its persisted order; never pass options through an unordered map.
// Selections that name no option, or a label with no matching value, are
// silently ignored; carts may hold selections for options edited after the
// item was added.
//
// A positive discount is applied after the option pass and rounded half away
// from zero to the nearest whole baht (math.Round); prices in this domain
// are integral THB with no fractional subunit. No floor at zero is applied:
// a replace-to-0 value or an aggressive discount can legitimately resolve
// to 0, and that is surfaced rather than patched here.
func ResolvePrice(basePrice float64, selected map[string]string, options []models.ProductOption, discountPercent float64) float64 {
	price := basePrice
	for _, opt := range options {
		label, ok := selected[opt.Name]
		if !ok {
			continue
		}
		for _, val := range opt.Values {
			if val.Value != label {
				continue
			}
			if val.PriceType == models.PriceTypeReplace {
				price = val.Price
			} else {
				price += val.Price
			}
			break
		}
	}
	if discountPercent > 0 {
		price = math.Round(price * (1 - discountPercent/100))
	}
	return price
}
