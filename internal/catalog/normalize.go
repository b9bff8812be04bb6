// Package catalog implements the product option and pricing model: payload
// normalization, option name deduplication, field validation, and price
// resolution. All functions are pure transformations over in-memory data.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"talad/internal/models"
)

// DefaultOptionName names the synthetic option a bare list of labels is
// promoted to.
const DefaultOptionName = "ตัวเลือก"

// NormalizeOptions coerces a raw option payload into the canonical option
// list. It accepts any of the shapes that have existed historically:
//
//   - a JSON-encoded string of any of the shapes below,
//   - a list of option objects ({name, values}),
//   - a flat list of bare labels, promoted to one option named "ตัวเลือก",
//   - a map from option name to a list of labels.
//
// Normalization never fails: malformed or unrecognized input degrades to an
// empty list so a product submission with garbage option data still saves.
// Negative prices and stocks are clamped to 0 here; the API boundary rejects
// them instead via ValidateOptions.
func NormalizeOptions(raw any) []models.ProductOption {
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return []models.ProductOption{}
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return []models.ProductOption{}
		}
		raw = decoded
	}

	switch v := raw.(type) {
	case []any:
		return normalizeList(v)
	case map[string]any:
		return normalizeLabelMap(v)
	case []models.ProductOption:
		return normalizeCanonical(v)
	default:
		return []models.ProductOption{}
	}
}

// normalizeList handles the two list shapes. A list made up entirely of bare
// scalar labels is the legacy flat shape and becomes a single synthetic
// option; any other list is treated as a list of candidate option objects,
// with non-object and nameless entries dropped.
func normalizeList(items []any) []models.ProductOption {
	if len(items) == 0 {
		return []models.ProductOption{}
	}

	allScalar := true
	for _, item := range items {
		if _, ok := scalarLabel(item); !ok {
			allScalar = false
			break
		}
	}
	if allScalar {
		opt := models.ProductOption{Name: DefaultOptionName, Values: normalizeValues(items)}
		if len(opt.Values) == 0 {
			return []models.ProductOption{}
		}
		return []models.ProductOption{opt}
	}

	options := make([]models.ProductOption, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := strings.TrimSpace(stringField(obj, "name"))
		if name == "" {
			continue
		}
		rawValues, _ := obj["values"].([]any)
		values := normalizeValues(rawValues)
		if len(values) == 0 {
			continue // an option with no surviving values is dropped entirely
		}
		options = append(options, models.ProductOption{Name: name, Values: values})
	}
	reindex(options)
	return options
}

// normalizeLabelMap handles the legacy {optionName: [labels...]} shape.
// Decoding JSON into a Go map loses document order, so options are emitted
// in sorted-key order to keep output deterministic.
func normalizeLabelMap(m map[string]any) []models.ProductOption {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	options := make([]models.ProductOption, 0, len(keys))
	for _, k := range keys {
		name := strings.TrimSpace(k)
		if name == "" {
			continue
		}
		labels, ok := m[k].([]any)
		if !ok {
			continue
		}
		values := normalizeValues(labels)
		if len(values) == 0 {
			continue
		}
		options = append(options, models.ProductOption{Name: name, Values: values})
	}
	reindex(options)
	return options
}

// normalizeCanonical re-normalizes an already-canonical list, so callers can
// run the pipeline on data read back from the database.
func normalizeCanonical(opts []models.ProductOption) []models.ProductOption {
	out := make([]models.ProductOption, 0, len(opts))
	for _, opt := range opts {
		name := strings.TrimSpace(opt.Name)
		if name == "" {
			continue
		}
		values := make([]models.ProductOptionValue, 0, len(opt.Values))
		for _, val := range opt.Values {
			if v, ok := normalizeValueStruct(val); ok {
				v.Position = len(values)
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		out = append(out, models.ProductOption{Name: name, Values: values})
	}
	reindex(out)
	return out
}

// normalizeValues coerces a list of raw value entries. A bare label becomes
// a value with defaults; an object has its missing fields defaulted. A value
// whose label is blank after trimming is dropped (only that value, not the
// whole option).
func normalizeValues(items []any) []models.ProductOptionValue {
	values := make([]models.ProductOptionValue, 0, len(items))
	for _, item := range items {
		if label, ok := scalarLabel(item); ok {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			values = append(values, models.ProductOptionValue{
				Value:     label,
				Price:     0,
				PriceType: models.PriceTypeAdd,
				Stock:     0,
				Position:  len(values),
			})
			continue
		}

		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		val := models.ProductOptionValue{
			Value:     stringField(obj, "value"),
			Price:     numberField(obj, "price"),
			PriceType: stringField(obj, "priceType", "price_type"),
			Stock:     int(numberField(obj, "stock")),
			SKU:       stringField(obj, "sku"),
		}
		if v, ok := normalizeValueStruct(val); ok {
			v.Position = len(values)
			values = append(values, v)
		}
	}
	return values
}

func normalizeValueStruct(val models.ProductOptionValue) (models.ProductOptionValue, bool) {
	val.Value = strings.TrimSpace(val.Value)
	if val.Value == "" {
		return val, false
	}
	if val.Price < 0 {
		val.Price = 0
	}
	if val.Stock < 0 {
		val.Stock = 0
	}
	if val.PriceType == "" {
		val.PriceType = models.PriceTypeAdd
	}
	return val, true
}

// scalarLabel reports whether item is a bare label (string or number) and
// returns its string form. JSON numbers arrive as float64; integral ones
// must not grow a trailing ".0".
func scalarLabel(item any) (string, bool) {
	switch v := item.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	default:
		return "", false
	}
}

func stringField(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if raw, ok := obj[k]; ok {
			if s, ok := scalarLabel(raw); ok {
				return s
			}
		}
	}
	return ""
}

func numberField(obj map[string]any, key string) float64 {
	switch v := obj[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}

func reindex(opts []models.ProductOption) {
	for i := range opts {
		opts[i].Position = i
	}
}

// DedupeOptionNames makes option names unique within one product. A name
// colliding (case-sensitive exact match) with an earlier option is suffixed
// " (2)", " (3)", and so on until unique. The first occurrence keeps its
// name; order of appearance is preserved.
func DedupeOptionNames(options []models.ProductOption) []models.ProductOption {
	seen := make(map[string]bool, len(options))
	for i := range options {
		name := options[i].Name
		if seen[name] {
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s (%d)", name, n)
				if !seen[candidate] {
					name = candidate
					break
				}
			}
			options[i].Name = name
		}
		seen[name] = true
	}
	return options
}
