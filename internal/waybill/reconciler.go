package waybill

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"carrier-booking-api-server/internal/models"
	"carrier-booking-api-server/internal/store"
)

// ErrNoSubmission means the submitted consignment map was empty; the
// whole reconciliation is a no-op.
var ErrNoSubmission = errors.New("waybill: nothing submitted")

// Booker books one customer-number group into a waybill. Failures come
// back as flattened error strings, never as a Go error: a failed group
// must not abort the others.
type Booker interface {
	BookWaybill(ctx context.Context, customerNumber string, consignmentNumbers map[string]string) ([]string, *models.WaybillData)
}

// Event is one per-group booking outcome, fed to the operator live feed.
type Event struct {
	WaybillID      string   `json:"waybillID"`
	CustomerNumber string   `json:"customerNumber"`
	WaybillNumber  string   `json:"waybillNumber,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

// Reconciler owns every transition on a waybill document's persisted
// record set. Booking attempts are merged group by group so that retries
// and partial failures never lose a consignment number.
type Reconciler struct {
	waybills store.WaybillStore
	labels   store.LabelStore
	messages store.MessageStore
	booker   Booker

	// OnOutcome, when set, observes each group's result.
	OnOutcome func(Event)
}

func NewReconciler(waybills store.WaybillStore, labels store.LabelStore, messages store.MessageStore, booker Booker) *Reconciler {
	return &Reconciler{
		waybills: waybills,
		labels:   labels,
		messages: messages,
		booker:   booker,
	}
}

// Reconcile books the submitted consignment numbers, grouped by customer
// number, against the carrier and merges the results into the waybill
// document's record set.
//
// An existing record set makes the call a no-op unless forceRetry is set,
// guarding against duplicate submissions. Before any carrier call every
// active consignment number is moved to the inactive map, so a number not
// reconfirmed by this attempt is provably inactive rather than silently
// dropped. Groups are processed sequentially in sorted order; one group's
// failure is recorded in its errors and does not abort the rest.
func (r *Reconciler) Reconcile(ctx context.Context, waybillID string, submitted map[string]map[string]string, forceRetry bool) (models.RequestData, error) {
	if len(submitted) == 0 {
		return nil, ErrNoSubmission
	}

	data, err := r.waybills.RequestData(ctx, waybillID)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 && !forceRetry {
		return data, nil
	}
	if data == nil {
		data = models.RequestData{}
	}

	// Deactivation pass over every existing record.
	for _, record := range data {
		record.InactiveConsignmentNumbers = record.ConsignmentNumbers
		record.ConsignmentNumbers = map[string]string{}
		record.Errors = []string{}
	}

	for _, customerNumber := range sortedKeys(submitted) {
		consignments := submitted[customerNumber]

		bookingErrors, waybillData := r.booker.BookWaybill(ctx, customerNumber, consignments)
		merge(data, customerNumber, consignments, bookingErrors, waybillData)

		// The labels are claimed even when the carrier call failed; the
		// errors array plus a forced retry is the correction path.
		for _, labelID := range sortedKeys(consignments) {
			if err := r.labels.ClaimLabel(ctx, labelID, waybillID); err != nil {
				log.Printf("could not claim label %s for waybill %s: %v", labelID, waybillID, err)
			}
		}

		r.report(ctx, waybillID, customerNumber, waybillData, bookingErrors)
	}

	if err := r.waybills.SaveRequestData(ctx, waybillID, data); err != nil {
		return nil, err
	}

	if title := Title(data); title != "" {
		if err := r.waybills.SetTitle(ctx, waybillID, title); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// merge folds one group's booking result into the record set. The record
// is created on first contact; on a retry the previously active numbers
// sit in the inactive map (deactivation pass) and are either reactivated
// by resubmission or carried forward so nothing is lost.
func merge(data models.RequestData, customerNumber string, consignments map[string]string, bookingErrors []string, waybillData *models.WaybillData) {
	if bookingErrors == nil {
		bookingErrors = []string{}
	}

	record, ok := data[customerNumber]
	if !ok {
		data[customerNumber] = &models.ConsignmentRecord{
			ConsignmentNumbers:         copyMap(consignments),
			InactiveConsignmentNumbers: map[string]string{},
			Errors:                     bookingErrors,
			Waybill:                    waybillData,
		}
		return
	}

	record.ConsignmentNumbers = copyMap(consignments)
	record.Errors = bookingErrors

	// Reactivation: a number resubmitted in this attempt is no longer
	// inactive. Remove the first match per number, in key order.
	for _, number := range sortedValues(consignments) {
		for _, labelID := range sortedKeys(record.InactiveConsignmentNumbers) {
			if record.InactiveConsignmentNumbers[labelID] == number {
				delete(record.InactiveConsignmentNumbers, labelID)
				break
			}
		}
	}

	// Carry-forward: inactive numbers untouched by this attempt stay
	// listed as active rather than disappearing from the waybill.
	for _, labelID := range sortedKeys(record.InactiveConsignmentNumbers) {
		number := record.InactiveConsignmentNumbers[labelID]
		if containsValue(record.ConsignmentNumbers, number) {
			continue
		}
		record.ConsignmentNumbers[labelID] = number
		delete(record.InactiveConsignmentNumbers, labelID)
	}

	// A failed retry keeps the previously booked waybill value.
	if waybillData != nil {
		record.Waybill = waybillData
	}
}

// Title joins the booked waybill identifiers of the record set, empty
// when nothing booked yet.
func Title(data models.RequestData) string {
	var ids []string
	for _, customerNumber := range sortedKeys(data) {
		record := data[customerNumber]
		if record.Waybill == nil {
			continue
		}
		ids = append(ids, record.Waybill.Data.ID)
	}
	if len(ids) == 0 {
		return ""
	}
	return "Waybill " + strings.Join(ids, " ")
}

func (r *Reconciler) report(ctx context.Context, waybillID, customerNumber string, waybillData *models.WaybillData, bookingErrors []string) {
	event := Event{
		WaybillID:      waybillID,
		CustomerNumber: customerNumber,
		Errors:         bookingErrors,
	}
	if waybillData != nil {
		event.WaybillNumber = waybillData.Data.ID
	}

	var message string
	if len(bookingErrors) > 0 {
		message = fmt.Sprintf("Waybill booking failed for customer %s: %s", customerNumber, strings.Join(bookingErrors, "; "))
	} else if waybillData != nil {
		message = fmt.Sprintf("Waybill %s booked for customer %s", waybillData.Data.ID, customerNumber)
	}
	if message != "" && r.messages != nil {
		if err := r.messages.AddMessage(ctx, message); err != nil {
			log.Printf("could not record admin message: %v", err)
		}
	}

	if r.OnOutcome != nil {
		r.OnOutcome(event)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedValues(m map[string]string) []string {
	values := make([]string, 0, len(m))
	for _, labelID := range sortedKeys(m) {
		values = append(values, m[labelID])
	}
	return values
}

func containsValue(m map[string]string, value string) bool {
	for _, v := range m {
		if v == value {
			return true
		}
	}
	return false
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
