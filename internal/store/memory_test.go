package store

import (
	"context"
	"testing"

	"carrier-booking-api-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLabelLifecycle(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	id, err := st.CreateLabel(ctx, &models.Label{
		OrderID: "1001", CustomerNumber: "500", ConsignmentNumber: "A1", Status: "draft",
	})
	require.NoError(t, err)

	unbooked, err := st.UnbookedLabels(ctx, false)
	require.NoError(t, err)
	require.Len(t, unbooked, 1)

	require.NoError(t, st.ClaimLabel(ctx, id, "wb-doc"))

	label, err := st.GetLabel(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "wb-doc", label.WaybillID)
	assert.Equal(t, "published", label.Status)

	unbooked, err = st.UnbookedLabels(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, unbooked)

	_, err = st.GetLabel(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRequestDataIsolation(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	id, err := st.CreateWaybill(ctx, &models.Waybill{Status: "draft"})
	require.NoError(t, err)

	data := models.RequestData{
		"500": {ConsignmentNumbers: map[string]string{"l1": "A1"}},
	}
	require.NoError(t, st.SaveRequestData(ctx, id, data))

	// Mutating the caller's copy must not leak into the store.
	data["500"].ConsignmentNumbers["l2"] = "A2"

	stored, err := st.RequestData(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"l1": "A1"}, stored["500"].ConsignmentNumbers)

	// And mutating a read result must not either.
	stored["500"].ConsignmentNumbers["l3"] = "A3"
	again, err := st.RequestData(ctx, id)
	require.NoError(t, err)
	assert.Len(t, again["500"].ConsignmentNumbers, 1)
}

func TestMemoryStoreMessagesDeduplicate(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.AddMessage(ctx, "Waybill WB-1 booked for customer 500"))
	require.NoError(t, st.AddMessage(ctx, "Waybill WB-1 booked for customer 500"))
	require.NoError(t, st.AddMessage(ctx, "Waybill WB-2 booked for customer 600"))

	messages, err := st.Messages(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 2)

	limited, err := st.Messages(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
