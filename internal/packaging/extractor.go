package packaging

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"carrier-booking-api-server/internal/models"
)

// ErrMalformedPackageData means package metadata is present but a field is
// missing for an index slot. Callers book without packages rather than
// aborting.
var ErrMalformedPackageData = errors.New("packaging: malformed package metadata")

// fields are the four metadata fields of one package. Every index slot
// must carry all four.
var fields = [...]string{"width", "height", "length", "weightInGrams"}

// MetadataSource reads and recomputes per-item package metadata.
type MetadataSource interface {
	ItemPackages(ctx context.Context, orderID, itemID string) (map[string]string, error)
	SetItemPackages(ctx context.Context, orderID, itemID string, packages map[string]string) error
}

// Extractor turns the flat indexed package metadata of a shipping line
// into typed packages.
type Extractor struct {
	source MetadataSource
}

func NewExtractor(source MetadataSource) *Extractor {
	return &Extractor{source: source}
}

// Extract reads the package metadata for one shipping line. When the item
// carries no metadata it recomputes the packages from the order once and
// retries; if still empty the result is an empty sequence.
func (e *Extractor) Extract(ctx context.Context, order *models.Order, itemID string) ([]models.Package, error) {
	meta, err := e.source.ItemPackages(ctx, order.OrderID, itemID)
	if err != nil {
		return nil, err
	}
	if len(meta) == 0 {
		if err := e.recompute(ctx, order, itemID); err != nil {
			return nil, err
		}
		meta, err = e.source.ItemPackages(ctx, order.OrderID, itemID)
		if err != nil {
			return nil, err
		}
	}
	if len(meta) == 0 {
		return []models.Package{}, nil
	}
	return FromFlatMap(meta)
}

// recompute rebuilds and persists the default package metadata for a
// shipping line: one package slot per order item.
func (e *Extractor) recompute(ctx context.Context, order *models.Order, itemID string) error {
	meta := make(map[string]string)
	index := 0
	for _, item := range order.Items {
		for n := 0; n < item.Quantity; n++ {
			meta[fmt.Sprintf("width%d", index)] = formatDim(item.WidthCm)
			meta[fmt.Sprintf("height%d", index)] = formatDim(item.HeightCm)
			meta[fmt.Sprintf("length%d", index)] = formatDim(item.LengthCm)
			meta[fmt.Sprintf("weightInGrams%d", index)] = strconv.Itoa(item.WeightGrams)
			index++
		}
	}
	if index == 0 {
		return nil
	}
	return e.source.SetItemPackages(ctx, order.OrderID, itemID, meta)
}

func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FromFlatMap converts a flat {field+index: value} map into an ordered
// package sequence. The package count is the entry count divided by the
// field count; a missing field for an otherwise present index is
// ErrMalformedPackageData, never a silent zero.
func FromFlatMap(meta map[string]string) ([]models.Package, error) {
	if len(meta)%len(fields) != 0 {
		return nil, ErrMalformedPackageData
	}
	packageCount := len(meta) / len(fields)
	packages := make([]models.Package, 0, packageCount)

	for i := 0; i < packageCount; i++ {
		values := make(map[string]string, len(fields))
		for _, field := range fields {
			value, ok := meta[fmt.Sprintf("%s%d", field, i)]
			if !ok {
				return nil, ErrMalformedPackageData
			}
			values[field] = value
		}

		width, err := parseDim(values["width"])
		if err != nil {
			return nil, err
		}
		height, err := parseDim(values["height"])
		if err != nil {
			return nil, err
		}
		length, err := parseDim(values["length"])
		if err != nil {
			return nil, err
		}
		grams, err := parseGrams(values["weightInGrams"])
		if err != nil {
			return nil, err
		}

		packages = append(packages, models.Package{
			WeightInKg: float64(grams) / 1000,
			Dimensions: models.Dimensions{
				WidthInCm:  width,
				HeightInCm: height,
				LengthInCm: length,
			},
		})
	}
	return packages, nil
}

func parseDim(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrMalformedPackageData
	}
	return v, nil
}

// parseGrams truncates toward zero, grams are integral on the wire.
func parseGrams(raw string) (int, error) {
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrMalformedPackageData
	}
	return int(f), nil
}
