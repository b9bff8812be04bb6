package catalog_test

import (
	"errors"
	"testing"

	"talad/internal/catalog"
	"talad/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() []models.ProductOption {
	return []models.ProductOption{
		{Name: "ขนาด", Values: []models.ProductOptionValue{
			{Value: "S", Price: 0, PriceType: "add", Stock: 5},
			{Value: "M", Price: 50, PriceType: "add", Stock: 10},
		}},
		{Name: "สี", Values: []models.ProductOptionValue{
			{Value: "แดง", Price: 350, PriceType: "replace", Stock: 3, SKU: "TS-RED"},
		}},
	}
}

func TestValidateOptions_Valid(t *testing.T) {
	assert.NoError(t, catalog.ValidateOptions(validOptions()))
	assert.NoError(t, catalog.ValidateOptions(nil))
}

func TestValidateOptions_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(opts []models.ProductOption)
		message string
	}{
		{
			name:    "blank option name",
			mutate:  func(opts []models.ProductOption) { opts[0].Name = "   " },
			message: "option name must not be blank",
		},
		{
			name:    "empty values list",
			mutate:  func(opts []models.ProductOption) { opts[1].Values = nil },
			message: `option "สี" must have at least one value`,
		},
		{
			name:    "blank value label",
			mutate:  func(opts []models.ProductOption) { opts[0].Values[1].Value = " \t" },
			message: `value of option "ขนาด" must not be blank`,
		},
		{
			name:    "negative price",
			mutate:  func(opts []models.ProductOption) { opts[0].Values[1].Price = -1 },
			message: `price of option "ขนาด: M" must not be negative`,
		},
		{
			name:    "unknown price type",
			mutate:  func(opts []models.ProductOption) { opts[1].Values[0].PriceType = "minus" },
			message: `priceType of option "สี: แดง" must be either "add" or "replace"`,
		},
		{
			name:    "negative stock",
			mutate:  func(opts []models.ProductOption) { opts[0].Values[0].Stock = -5 },
			message: `stock of option "ขนาด: S" must not be negative`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(opts)
			err := catalog.ValidateOptions(opts)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())

			var verr *catalog.ValidationError
			assert.True(t, errors.As(err, &verr), "expected a *ValidationError")
		})
	}
}

func TestValidateOptions_FirstViolationWins(t *testing.T) {
	opts := validOptions()
	opts[0].Values[0].Price = -1 // earlier in iteration order
	opts[1].Values[0].Stock = -1
	err := catalog.ValidateOptions(opts)
	require.Error(t, err)
	assert.Equal(t, `price of option "ขนาด: S" must not be negative`, err.Error())
}

func TestValidateOptions_RejectsWhatNormalizationWouldClamp(t *testing.T) {
	// Normalization clamps negative numbers for non-API callers; the API
	// boundary must reject the same input instead of saving a silently
	// altered product.
	opts := []models.ProductOption{
		{Name: "ขนาด", Values: []models.ProductOptionValue{
			{Value: "M", Price: -50, PriceType: "add"},
		}},
	}
	assert.Error(t, catalog.ValidateOptions(opts))

	normalized := catalog.NormalizeOptions([]any{
		map[string]any{"name": "ขนาด", "values": []any{
			map[string]any{"value": "M", "price": -50.0},
		}},
	})
	assert.NoError(t, catalog.ValidateOptions(normalized))
}
