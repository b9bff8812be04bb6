package catalog_test

import (
	"testing"

	"talad/internal/catalog"
	"talad/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOptions_StructuredList(t *testing.T) {
	raw := []any{
		map[string]any{
			"name": " ขนาด ",
			"values": []any{
				map[string]any{"value": "S"},
				map[string]any{"value": "M", "price": 50.0, "priceType": "add", "stock": 10.0, "sku": "TS-M"},
				map[string]any{"value": "XL", "price": 350.0, "priceType": "replace"},
			},
		},
		map[string]any{
			"name":   "สี",
			"values": []any{"แดง", "ดำ"},
		},
	}

	options := catalog.NormalizeOptions(raw)
	require.Len(t, options, 2)

	assert.Equal(t, "ขนาด", options[0].Name)
	require.Len(t, options[0].Values, 3)
	assert.Equal(t, models.ProductOptionValue{Value: "S", Price: 0, PriceType: "add", Stock: 0, Position: 0}, options[0].Values[0])
	assert.Equal(t, models.ProductOptionValue{Value: "M", Price: 50, PriceType: "add", Stock: 10, SKU: "TS-M", Position: 1}, options[0].Values[1])
	assert.Equal(t, models.ProductOptionValue{Value: "XL", Price: 350, PriceType: "replace", Stock: 0, Position: 2}, options[0].Values[2])

	// Bare labels inside a structured option are promoted with defaults.
	assert.Equal(t, "สี", options[1].Name)
	require.Len(t, options[1].Values, 2)
	assert.Equal(t, "แดง", options[1].Values[0].Value)
	assert.Equal(t, models.PriceTypeAdd, options[1].Values[0].PriceType)
}

func TestNormalizeOptions_JSONString(t *testing.T) {
	options := catalog.NormalizeOptions(`[{"name":"ขนาด","values":[{"value":"M","price":50}]}]`)
	require.Len(t, options, 1)
	assert.Equal(t, "ขนาด", options[0].Name)
	require.Len(t, options[0].Values, 1)
	assert.Equal(t, 50.0, options[0].Values[0].Price)
}

func TestNormalizeOptions_FlatLabelList(t *testing.T) {
	options := catalog.NormalizeOptions([]any{"S", "M", 42.0})
	require.Len(t, options, 1)
	assert.Equal(t, catalog.DefaultOptionName, options[0].Name)
	require.Len(t, options[0].Values, 3)
	assert.Equal(t, "S", options[0].Values[0].Value)
	assert.Equal(t, "42", options[0].Values[2].Value)
	for _, v := range options[0].Values {
		assert.Equal(t, models.PriceTypeAdd, v.PriceType)
		assert.Zero(t, v.Price)
		assert.Zero(t, v.Stock)
	}
}

func TestNormalizeOptions_LabelMap(t *testing.T) {
	options := catalog.NormalizeOptions(map[string]any{
		"สี":   []any{"แดง", "ดำ"},
		"ขนาด": []any{"S", "M"},
	})
	require.Len(t, options, 2)
	// Map shapes carry no reliable order; keys are emitted sorted.
	assert.Equal(t, "ขนาด", options[0].Name)
	assert.Equal(t, "สี", options[1].Name)
	assert.Len(t, options[0].Values, 2)
	assert.Len(t, options[1].Values, 2)
}

func TestNormalizeOptions_MalformedInputDegradesToEmpty(t *testing.T) {
	cases := map[string]any{
		"nil":             nil,
		"garbage string":  "not json at all {",
		"empty string":    "   ",
		"number":          42.0,
		"bool":            true,
		"list of nulls":   []any{nil, nil},
		"empty list":      []any{},
		"map of scalars":  map[string]any{"ขนาด": "M"},
		"nameless option": []any{map[string]any{"values": []any{"S"}}},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, catalog.NormalizeOptions(raw))
		})
	}
}

func TestNormalizeOptions_DropsBlankValuesAndEmptyOptions(t *testing.T) {
	raw := []any{
		map[string]any{"name": "ขนาด", "values": []any{"  ", map[string]any{"value": "\t"}, "M"}},
		map[string]any{"name": "สี", "values": []any{"", "   "}},
	}
	options := catalog.NormalizeOptions(raw)
	// An option whose every value is dropped is itself absent.
	require.Len(t, options, 1)
	assert.Equal(t, "ขนาด", options[0].Name)
	require.Len(t, options[0].Values, 1)
	assert.Equal(t, "M", options[0].Values[0].Value)
}

func TestNormalizeOptions_ClampsNegativeNumbers(t *testing.T) {
	raw := []any{
		map[string]any{"name": "ขนาด", "values": []any{
			map[string]any{"value": "M", "price": -50.0, "stock": -3.0},
		}},
	}
	options := catalog.NormalizeOptions(raw)
	require.Len(t, options, 1)
	require.Len(t, options[0].Values, 1)
	assert.Zero(t, options[0].Values[0].Price)
	assert.Zero(t, options[0].Values[0].Stock)
}

func TestNormalizeOptions_FlatLabelIdempotence(t *testing.T) {
	first := catalog.NormalizeOptions([]any{"S", "M", "L"})
	second := catalog.NormalizeOptions(first)
	assert.Equal(t, first, second)
}

func TestNormalizeOptions_CanonicalIdempotence(t *testing.T) {
	raw := `[{"name":"ขนาด","values":[{"value":"M","price":50,"priceType":"add","stock":5}]},{"name":"สี","values":["แดง"]}]`
	first := catalog.NormalizeOptions(raw)
	second := catalog.NormalizeOptions(first)
	assert.Equal(t, first, second)
}

func TestDedupeOptionNames(t *testing.T) {
	options := []models.ProductOption{
		{Name: "ขนาด", Values: []models.ProductOptionValue{{Value: "S"}}},
		{Name: "ขนาด", Values: []models.ProductOptionValue{{Value: "M"}}},
		{Name: "ขนาด", Values: []models.ProductOptionValue{{Value: "L"}}},
		{Name: "สี", Values: []models.ProductOptionValue{{Value: "แดง"}}},
	}

	deduped := catalog.DedupeOptionNames(options)
	require.Len(t, deduped, 4)
	assert.Equal(t, "ขนาด", deduped[0].Name) // first occurrence keeps its name
	assert.Equal(t, "ขนาด (2)", deduped[1].Name)
	assert.Equal(t, "ขนาด (3)", deduped[2].Name)
	assert.Equal(t, "สี", deduped[3].Name)

	names := make(map[string]bool)
	for _, opt := range deduped {
		assert.False(t, names[opt.Name], "duplicate name %q survived", opt.Name)
		names[opt.Name] = true
	}
}

func TestDedupeOptionNames_CaseSensitive(t *testing.T) {
	options := []models.ProductOption{
		{Name: "Size"},
		{Name: "size"},
	}
	deduped := catalog.DedupeOptionNames(options)
	assert.Equal(t, "Size", deduped[0].Name)
	assert.Equal(t, "size", deduped[1].Name)
}

func TestDedupeOptionNames_CollisionWithGeneratedName(t *testing.T) {
	// A pre-existing "ขนาด (2)" must not be reused for the renamed duplicate.
	options := []models.ProductOption{
		{Name: "ขนาด"},
		{Name: "ขนาด (2)"},
		{Name: "ขนาด"},
	}
	deduped := catalog.DedupeOptionNames(options)
	assert.Equal(t, "ขนาด", deduped[0].Name)
	assert.Equal(t, "ขนาด (2)", deduped[1].Name)
	assert.Equal(t, "ขนาด (3)", deduped[2].Name)
}
