package models

// RecipientNotification asks the carrier to notify the recipient by
// email/SMS when the consignment is booked.
type RecipientNotification struct {
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// ServiceOptions carries the optional value-added services of a booking.
// An empty struct marshals to an empty services object.
type ServiceOptions struct {
	RecipientNotification *RecipientNotification `json:"recipientNotification,omitempty"`
}

// Product identifies the carrier service a consignment is booked under.
type Product struct {
	ID             string         `json:"id"`
	CustomerNumber string         `json:"customerNumber"`
	Services       ServiceOptions `json:"services"`
	// CustomsDeclaration is always null, customs are not modelled.
	CustomsDeclaration interface{} `json:"customsDeclaration"`
}

// Parties groups the addresses of a consignment request. PickupPoint is
// omitted when the shipping line has no stored pickup point.
type Parties struct {
	Sender      Address      `json:"sender"`
	Recipient   Address      `json:"recipient"`
	PickupPoint *PickupPoint `json:"pickupPoint,omitempty"`
}

// BookingPayload is the outbound consignment request for the carrier's
// booking API.
type BookingPayload struct {
	ShippingDateTime string    `json:"shippingDateTime"`
	Parties          Parties   `json:"parties"`
	Product          Product   `json:"product"`
	PurchaseOrder    string    `json:"purchaseOrder"`
	CorrelationID    string    `json:"correlationId"`
	Packages         []Package `json:"packages"`
}

// ConsignmentConfirmation is the per-consignment section of a successful
// booking response.
type ConsignmentConfirmation struct {
	ConsignmentNumber string            `json:"consignmentNumber"`
	Links             map[string]string `json:"links,omitempty"`
}

// BookedConsignment pairs a confirmation with the correlation id it was
// requested under.
type BookedConsignment struct {
	CorrelationID string                   `json:"correlationId"`
	Confirmation  *ConsignmentConfirmation `json:"confirmation"`
	Errors        []CarrierError           `json:"errors,omitempty"`
}

// BookingResponse is the decoded body of a carrier booking call.
type BookingResponse struct {
	Consignments []BookedConsignment `json:"consignments"`
}

// CarrierError is one entry of the structured errors array the carrier
// returns on a failed call.
type CarrierError struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}
