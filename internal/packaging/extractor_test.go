package packaging

import (
	"context"
	"testing"

	"carrier-booking-api-server/internal/models"
	"carrier-booking-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFlatMap(t *testing.T) {
	packages, err := FromFlatMap(map[string]string{
		"width0": "30", "height0": "20", "length0": "10", "weightInGrams0": "2500",
		"width1": "15", "height1": "15", "length1": "15", "weightInGrams1": "400",
	})
	require.NoError(t, err)
	require.Len(t, packages, 2)

	assert.Equal(t, 30.0, packages[0].Dimensions.WidthInCm)
	assert.Equal(t, 20.0, packages[0].Dimensions.HeightInCm)
	assert.Equal(t, 10.0, packages[0].Dimensions.LengthInCm)
	assert.Equal(t, 2.5, packages[0].WeightInKg)
	assert.Equal(t, 0.4, packages[1].WeightInKg)
}

func TestFromFlatMapTruncatesGrams(t *testing.T) {
	packages, err := FromFlatMap(map[string]string{
		"width0": "10", "height0": "10", "length0": "10", "weightInGrams0": "1234.9",
	})
	require.NoError(t, err)
	assert.Equal(t, 1.234, packages[0].WeightInKg)
}

func TestFromFlatMapCountMismatch(t *testing.T) {
	_, err := FromFlatMap(map[string]string{
		"width0": "10", "height0": "10", "length0": "10", "weightInGrams0": "100",
		"width1": "10",
	})
	assert.ErrorIs(t, err, ErrMalformedPackageData)
}

func TestFromFlatMapMissingIndexedField(t *testing.T) {
	// Entry count is a clean multiple but the second slot is missing its
	// weight; the stray key must not hide that.
	_, err := FromFlatMap(map[string]string{
		"width0": "10", "height0": "10", "length0": "10", "weightInGrams0": "100",
		"width1": "10", "height1": "10", "length1": "10", "width9": "10",
	})
	assert.ErrorIs(t, err, ErrMalformedPackageData)
}

func TestExtractRecomputesFromOrderItems(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	order := &models.Order{
		OrderID: "1001",
		Items: []models.OrderItem{
			{ProductID: "p1", Quantity: 2, WidthCm: 30, HeightCm: 20, LengthCm: 10, WeightGrams: 1500},
		},
		ShippingItems: []models.ShippingItem{{ItemID: "7", MethodID: "carrier_booking:servicepakke"}},
	}
	require.NoError(t, st.CreateOrder(ctx, order))

	packages, err := NewExtractor(st).Extract(ctx, order, "7")
	require.NoError(t, err)
	require.Len(t, packages, 2)
	for _, pkg := range packages {
		assert.Equal(t, 30.0, pkg.Dimensions.WidthInCm)
		assert.Equal(t, 1.5, pkg.WeightInKg)
	}

	// The recomputed metadata is persisted on the shipping line.
	meta, err := st.ItemPackages(ctx, "1001", "7")
	require.NoError(t, err)
	assert.Len(t, meta, 8)
}

func TestExtractStoredMetadataWins(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	order := &models.Order{
		OrderID: "1001",
		Items: []models.OrderItem{
			{ProductID: "p1", Quantity: 3, WidthCm: 30, HeightCm: 20, LengthCm: 10, WeightGrams: 1500},
		},
		ShippingItems: []models.ShippingItem{{
			ItemID:   "7",
			MethodID: "carrier_booking:servicepakke",
			Packages: map[string]string{
				"width0": "50", "height0": "40", "length0": "30", "weightInGrams0": "9000",
			},
		}},
	}
	require.NoError(t, st.CreateOrder(ctx, order))

	packages, err := NewExtractor(st).Extract(ctx, order, "7")
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, 9.0, packages[0].WeightInKg)
}

func TestExtractEmptyWhenNothingToRecompute(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	order := &models.Order{
		OrderID:       "1001",
		ShippingItems: []models.ShippingItem{{ItemID: "7", MethodID: "carrier_booking:servicepakke"}},
	}
	require.NoError(t, st.CreateOrder(ctx, order))

	packages, err := NewExtractor(st).Extract(ctx, order, "7")
	require.NoError(t, err)
	assert.Empty(t, packages)
}
