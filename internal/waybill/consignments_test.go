package waybill

import (
	"context"
	"testing"

	"carrier-booking-api-server/internal/models"
	"carrier-booking-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnbookedGroupsByCustomerNumber(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	labelA := newDraftLabel(t, st, "500", "A1")
	labelB := newDraftLabel(t, st, "500", "A2")
	labelC := newDraftLabel(t, st, "600", "B1")
	claimed := newDraftLabel(t, st, "600", "B2")
	require.NoError(t, st.ClaimLabel(ctx, claimed, "some-waybill"))

	unbooked, err := NewConsignments(st).Unbooked(ctx, false)
	require.NoError(t, err)

	require.Len(t, unbooked, 2)
	assert.Len(t, unbooked["500"], 2)
	assert.Len(t, unbooked["600"], 1)
	assert.Equal(t, "A1", unbooked["500"][labelA].ConsignmentNumber)
	assert.Equal(t, "A2", unbooked["500"][labelB].ConsignmentNumber)
	assert.Equal(t, "B1", unbooked["600"][labelC].ConsignmentNumber)
	assert.NotContains(t, unbooked["600"], claimed)
}

func TestUnbookedSeparatesTestMode(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	_, err := st.CreateLabel(ctx, &models.Label{
		OrderID: "1001", CustomerNumber: "500", ConsignmentNumber: "T1",
		Status: "draft", TestMode: true,
	})
	require.NoError(t, err)
	newDraftLabel(t, st, "500", "A1")

	live, err := NewConsignments(st).Unbooked(ctx, false)
	require.NoError(t, err)
	require.Len(t, live["500"], 1)

	test, err := NewConsignments(st).Unbooked(ctx, true)
	require.NoError(t, err)
	require.Len(t, test["500"], 1)
}

func TestForRequestDataResolvesLabels(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	labelA := newDraftLabel(t, st, "500", "A1")

	data := models.RequestData{
		"500": {ConsignmentNumbers: map[string]string{labelA: "A1", "gone": "A9"}},
	}

	views, err := NewConsignments(st).ForRequestData(ctx, data)
	require.NoError(t, err)

	require.Len(t, views["500"], 2)
	assert.Equal(t, "1001", views["500"][labelA].OrderID)
	// A label that no longer exists still lists its consignment number.
	assert.Equal(t, "A9", views["500"]["gone"].ConsignmentNumber)
	assert.Equal(t, "", views["500"]["gone"].OrderID)
}
