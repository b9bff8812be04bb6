package catalog

import (
	"fmt"
	"strings"

	"talad/internal/models"
)

// ValidationError identifies the option and value that made a product
// submission unacceptable. The API layer maps it to a client error.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidateOptions enforces field-level invariants on a normalized,
// deduplicated option list before persistence. The first violation aborts
// validation; there is no partial-success mode. Unlike NormalizeOptions,
// which clamps negative numbers for non-API callers, this gate rejects them
// outright. Validation is authoritative at the API boundary.
func ValidateOptions(options []models.ProductOption) error {
	for _, opt := range options {
		// Blank names are already stripped by normalization; re-checked here
		// because persistence must never depend on who called us.
		if strings.TrimSpace(opt.Name) == "" {
			return validationErrorf("option name must not be blank")
		}
		if len(opt.Values) == 0 {
			return validationErrorf("option %q must have at least one value", opt.Name)
		}
		for _, val := range opt.Values {
			if strings.TrimSpace(val.Value) == "" {
				return validationErrorf("value of option %q must not be blank", opt.Name)
			}
			if val.Price < 0 {
				return validationErrorf("price of option \"%s: %s\" must not be negative", opt.Name, val.Value)
			}
			if val.PriceType != models.PriceTypeAdd && val.PriceType != models.PriceTypeReplace {
				return validationErrorf("priceType of option \"%s: %s\" must be either %q or %q",
					opt.Name, val.Value, models.PriceTypeAdd, models.PriceTypeReplace)
			}
			if val.Stock < 0 {
				return validationErrorf("stock of option \"%s: %s\" must not be negative", opt.Name, val.Value)
			}
		}
	}
	return nil
}
