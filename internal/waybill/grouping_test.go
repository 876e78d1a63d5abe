package waybill

import (
	"testing"

	"carrier-booking-api-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(customerNumber string, labelIDs ...string) map[string]*models.Consignment {
	m := make(map[string]*models.Consignment, len(labelIDs))
	for _, labelID := range labelIDs {
		m[labelID] = &models.Consignment{LabelID: labelID, CustomerNumber: customerNumber}
	}
	return m
}

func TestFoldVariantIntoCanonical(t *testing.T) {
	consignments := map[string]map[string]*models.Consignment{
		"12345":      group("12345", "l1"),
		"TEST-12345": group("TEST-12345", "l2", "l3"),
	}

	folded := Fold(consignments)

	require.Len(t, folded, 1)
	merged := folded["12345"]
	require.Len(t, merged, 3)
	for _, consignment := range merged {
		assert.Equal(t, "12345", consignment.CustomerNumber)
	}
}

func TestFoldVariantWithoutCanonicalStays(t *testing.T) {
	consignments := map[string]map[string]*models.Consignment{
		"TEST-99": group("TEST-99", "l1"),
	}

	folded := Fold(consignments)

	require.Len(t, folded, 1)
	assert.Contains(t, folded, "TEST-99")
}

func TestFoldRequiresNumericSuffix(t *testing.T) {
	// Only a trailing numeric suffix marks a variant; an alphabetic
	// suffix is an independent customer number.
	consignments := map[string]map[string]*models.Consignment{
		"123":      group("123", "l1"),
		"123-test": group("123-test", "l2"),
	}

	folded := Fold(consignments)

	assert.Len(t, folded, 2)
	assert.Contains(t, folded, "123")
	assert.Contains(t, folded, "123-test")
}

func TestFoldSuffixMustMatchExistingKey(t *testing.T) {
	consignments := map[string]map[string]*models.Consignment{
		"500":      group("500", "l1"),
		"TEST-600": group("TEST-600", "l2"),
	}

	folded := Fold(consignments)

	assert.Len(t, folded, 2)
	assert.Contains(t, folded, "TEST-600")
}
