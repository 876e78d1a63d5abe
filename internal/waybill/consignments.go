package waybill

import (
	"context"

	"carrier-booking-api-server/internal/models"
	"carrier-booking-api-server/internal/store"
)

// Consignments assembles display-level consignment views for operators:
// the active consignments of a waybill document, or the labels not yet
// attached to any waybill.
type Consignments struct {
	labels store.LabelStore
}

func NewConsignments(labels store.LabelStore) *Consignments {
	return &Consignments{labels: labels}
}

// ForRequestData resolves the active consignment numbers of a record set
// back to their labels, grouped by customer number.
func (c *Consignments) ForRequestData(ctx context.Context, data models.RequestData) (map[string]map[string]*models.Consignment, error) {
	consignments := make(map[string]map[string]*models.Consignment)

	for customerNumber, record := range data {
		for labelID, consignmentNumber := range record.ConsignmentNumbers {
			view := &models.Consignment{
				LabelID:           labelID,
				ConsignmentNumber: consignmentNumber,
				CustomerNumber:    customerNumber,
			}
			if label, err := c.labels.GetLabel(ctx, labelID); err == nil {
				view.OrderID = label.OrderID
			}

			if consignments[customerNumber] == nil {
				consignments[customerNumber] = make(map[string]*models.Consignment)
			}
			consignments[customerNumber][labelID] = view
		}
	}

	return consignments, nil
}

// Unbooked lists the labels with no waybill back-reference, grouped by
// customer number. Feeds the new-waybill form.
func (c *Consignments) Unbooked(ctx context.Context, testMode bool) (map[string]map[string]*models.Consignment, error) {
	labels, err := c.labels.UnbookedLabels(ctx, testMode)
	if err != nil {
		return nil, err
	}

	consignments := make(map[string]map[string]*models.Consignment)
	for _, label := range labels {
		customerNumber := label.CustomerNumber
		if consignments[customerNumber] == nil {
			consignments[customerNumber] = make(map[string]*models.Consignment)
		}
		consignments[customerNumber][label.ID.Hex()] = &models.Consignment{
			LabelID:           label.ID.Hex(),
			OrderID:           label.OrderID,
			ConsignmentNumber: label.ConsignmentNumber,
			CustomerNumber:    customerNumber,
		}
	}

	return consignments, nil
}
