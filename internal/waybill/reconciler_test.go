package waybill

import (
	"context"
	"testing"

	"carrier-booking-api-server/internal/models"
	"carrier-booking-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBooker returns canned results per customer number and records the
// order of carrier calls.
type stubBooker struct {
	errors   map[string][]string
	waybills map[string]*models.WaybillData
	calls    []string
}

func (b *stubBooker) BookWaybill(ctx context.Context, customerNumber string, consignmentNumbers map[string]string) ([]string, *models.WaybillData) {
	b.calls = append(b.calls, customerNumber)
	return b.errors[customerNumber], b.waybills[customerNumber]
}

func waybillData(id string) *models.WaybillData {
	return &models.WaybillData{Data: models.WaybillInfo{ID: id}}
}

func newDraftWaybill(t *testing.T, st *store.MemoryStore) string {
	t.Helper()
	id, err := st.CreateWaybill(context.Background(), &models.Waybill{Status: "draft"})
	require.NoError(t, err)
	return id
}

func newDraftLabel(t *testing.T, st *store.MemoryStore, customerNumber, consignmentNumber string) string {
	t.Helper()
	id, err := st.CreateLabel(context.Background(), &models.Label{
		OrderID:           "1001",
		CustomerNumber:    customerNumber,
		ConsignmentNumber: consignmentNumber,
		Status:            "draft",
	})
	require.NoError(t, err)
	return id
}

func TestReconcileEmptySubmission(t *testing.T) {
	st := store.NewMemoryStore()
	reconciler := NewReconciler(st, st, st, &stubBooker{})

	_, err := reconciler.Reconcile(context.Background(), newDraftWaybill(t, st), map[string]map[string]string{}, false)
	assert.ErrorIs(t, err, ErrNoSubmission)
}

func TestReconcileFirstBooking(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	waybillID := newDraftWaybill(t, st)
	labelA := newDraftLabel(t, st, "500", "A1")
	labelB := newDraftLabel(t, st, "500", "A2")

	booker := &stubBooker{waybills: map[string]*models.WaybillData{"500": waybillData("WB-1")}}
	reconciler := NewReconciler(st, st, st, booker)

	data, err := reconciler.Reconcile(ctx, waybillID, map[string]map[string]string{
		"500": {labelA: "A1", labelB: "A2"},
	}, false)
	require.NoError(t, err)

	record := data["500"]
	require.NotNil(t, record)
	assert.Equal(t, map[string]string{labelA: "A1", labelB: "A2"}, record.ConsignmentNumbers)
	assert.Empty(t, record.InactiveConsignmentNumbers)
	assert.Empty(t, record.Errors)
	require.NotNil(t, record.Waybill)
	assert.Equal(t, "WB-1", record.Waybill.Data.ID)

	// Both labels are now attached to the waybill.
	for _, labelID := range []string{labelA, labelB} {
		label, err := st.GetLabel(ctx, labelID)
		require.NoError(t, err)
		assert.Equal(t, waybillID, label.WaybillID)
		assert.Equal(t, "published", label.Status)
	}

	doc, err := st.GetWaybill(ctx, waybillID)
	require.NoError(t, err)
	assert.Equal(t, "Waybill WB-1", doc.Title)

	messages, err := st.Messages(ctx, 0)
	require.NoError(t, err)
	assert.Contains(t, messages, "Waybill WB-1 booked for customer 500")
}

func TestReconcileNoOpWithoutRetry(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	waybillID := newDraftWaybill(t, st)
	labelA := newDraftLabel(t, st, "500", "A1")

	booker := &stubBooker{waybills: map[string]*models.WaybillData{"500": waybillData("WB-1")}}
	reconciler := NewReconciler(st, st, st, booker)

	submitted := map[string]map[string]string{"500": {labelA: "A1"}}
	_, err := reconciler.Reconcile(ctx, waybillID, submitted, false)
	require.NoError(t, err)
	require.Len(t, booker.calls, 1)

	// Resubmitting without the retry flag leaves the record set alone.
	data, err := reconciler.Reconcile(ctx, waybillID, submitted, false)
	require.NoError(t, err)
	assert.Len(t, booker.calls, 1)
	assert.Equal(t, "WB-1", data["500"].Waybill.Data.ID)
}

func TestReconcileRetryCarriesForwardUnsubmitted(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	waybillID := newDraftWaybill(t, st)
	labelA := newDraftLabel(t, st, "500", "A1")
	labelB := newDraftLabel(t, st, "500", "A2")

	booker := &stubBooker{waybills: map[string]*models.WaybillData{"500": waybillData("WB-1")}}
	reconciler := NewReconciler(st, st, st, booker)

	_, err := reconciler.Reconcile(ctx, waybillID, map[string]map[string]string{
		"500": {labelA: "A1", labelB: "A2"},
	}, false)
	require.NoError(t, err)

	// Retry resubmits only one of the two consignments; the other must
	// survive as active instead of disappearing.
	booker.waybills["500"] = waybillData("WB-2")
	data, err := reconciler.Reconcile(ctx, waybillID, map[string]map[string]string{
		"500": {labelA: "A1"},
	}, true)
	require.NoError(t, err)

	record := data["500"]
	assert.Equal(t, map[string]string{labelA: "A1", labelB: "A2"}, record.ConsignmentNumbers)
	assert.Empty(t, record.InactiveConsignmentNumbers)
	assert.Equal(t, "WB-2", record.Waybill.Data.ID)
}

func TestReconcileFailedRetryKeepsWaybill(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	waybillID := newDraftWaybill(t, st)
	labelA := newDraftLabel(t, st, "500", "A1")

	booker := &stubBooker{waybills: map[string]*models.WaybillData{"500": waybillData("WB-1")}}
	reconciler := NewReconciler(st, st, st, booker)

	submitted := map[string]map[string]string{"500": {labelA: "A1"}}
	_, err := reconciler.Reconcile(ctx, waybillID, submitted, false)
	require.NoError(t, err)

	booker.waybills = map[string]*models.WaybillData{}
	booker.errors = map[string][]string{"500": {"E1: Invalid address"}}

	data, err := reconciler.Reconcile(ctx, waybillID, submitted, true)
	require.NoError(t, err)

	record := data["500"]
	assert.Equal(t, []string{"E1: Invalid address"}, record.Errors)
	assert.Equal(t, map[string]string{labelA: "A1"}, record.ConsignmentNumbers)
	// The previously booked waybill value survives the failed retry.
	require.NotNil(t, record.Waybill)
	assert.Equal(t, "WB-1", record.Waybill.Data.ID)

	messages, err := st.Messages(ctx, 0)
	require.NoError(t, err)
	assert.Contains(t, messages, "Waybill booking failed for customer 500: E1: Invalid address")
}

func TestReconcileFailureStillClaimsLabels(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	waybillID := newDraftWaybill(t, st)
	labelA := newDraftLabel(t, st, "500", "A1")

	booker := &stubBooker{errors: map[string][]string{"500": {"E1: Invalid address"}}}
	reconciler := NewReconciler(st, st, st, booker)

	_, err := reconciler.Reconcile(ctx, waybillID, map[string]map[string]string{
		"500": {labelA: "A1"},
	}, false)
	require.NoError(t, err)

	label, err := st.GetLabel(ctx, labelA)
	require.NoError(t, err)
	assert.Equal(t, waybillID, label.WaybillID)
	assert.Equal(t, "published", label.Status)
}

func TestReconcileGroupFailureIsIsolated(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	waybillID := newDraftWaybill(t, st)
	labelA := newDraftLabel(t, st, "500", "A1")
	labelB := newDraftLabel(t, st, "600", "B1")

	booker := &stubBooker{
		waybills: map[string]*models.WaybillData{"500": waybillData("WB-1")},
		errors:   map[string][]string{"600": {"E2: Unknown customer"}},
	}
	reconciler := NewReconciler(st, st, st, booker)

	var events []Event
	reconciler.OnOutcome = func(event Event) { events = append(events, event) }

	data, err := reconciler.Reconcile(ctx, waybillID, map[string]map[string]string{
		"500": {labelA: "A1"},
		"600": {labelB: "B1"},
	}, false)
	require.NoError(t, err)

	// Groups are booked in sorted customer-number order.
	assert.Equal(t, []string{"500", "600"}, booker.calls)

	assert.Empty(t, data["500"].Errors)
	assert.Equal(t, "WB-1", data["500"].Waybill.Data.ID)
	assert.Equal(t, []string{"E2: Unknown customer"}, data["600"].Errors)
	assert.Nil(t, data["600"].Waybill)

	doc, err := st.GetWaybill(ctx, waybillID)
	require.NoError(t, err)
	assert.Equal(t, "Waybill WB-1", doc.Title)

	require.Len(t, events, 2)
	assert.Equal(t, "500", events[0].CustomerNumber)
	assert.Equal(t, "WB-1", events[0].WaybillNumber)
	assert.Equal(t, "600", events[1].CustomerNumber)
	assert.Equal(t, []string{"E2: Unknown customer"}, events[1].Errors)
}

func TestTitle(t *testing.T) {
	data := models.RequestData{
		"600": {Waybill: waybillData("WB-2")},
		"500": {Waybill: waybillData("WB-1")},
		"700": {},
	}
	assert.Equal(t, "Waybill WB-1 WB-2", Title(data))
	assert.Equal(t, "", Title(models.RequestData{"500": {}}))
}
