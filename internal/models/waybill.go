package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WaybillInfo is the payload of a successful waybill booking. ID is the
// carrier-assigned waybill identifier.
type WaybillInfo struct {
	ID    string            `bson:"id" json:"id"`
	Links map[string]string `bson:"links,omitempty" json:"links,omitempty"`
}

// WaybillData wraps the carrier's successful waybill response body.
type WaybillData struct {
	Data WaybillInfo `bson:"data" json:"data"`
}

// ConsignmentRecord is the reconciliation state of one customer number on
// a waybill document. It is created on the first booking attempt and only
// ever mutated afterwards, never deleted.
type ConsignmentRecord struct {
	// ConsignmentNumbers maps label id to the currently active/claimed
	// consignment number.
	ConsignmentNumbers map[string]string `bson:"consignmentNumbers" json:"consignmentNumbers"`
	// InactiveConsignmentNumbers holds consignments superseded by a retry
	// or not reconfirmed by the latest attempt.
	InactiveConsignmentNumbers map[string]string `bson:"inactiveConsignmentNumbers" json:"inactiveConsignmentNumbers"`
	// Errors are the flattened carrier errors of the last attempt.
	Errors []string `bson:"errors" json:"errors"`
	// Waybill is the carrier's successful response, nil if never booked.
	Waybill *WaybillData `bson:"waybill" json:"waybill"`
}

// RequestData is the full persisted record set of a waybill document,
// keyed by customer number.
type RequestData map[string]*ConsignmentRecord

// Waybill is one waybill document. RequestData survives retries and
// partial failures, see the reconciler.
type Waybill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Status      string             `bson:"status" json:"status"` // "draft", "booked"
	RequestData RequestData        `bson:"requestData" json:"requestData"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Consignment is the display-level view of one bookable shipment unit,
// assembled from a label and its order.
type Consignment struct {
	LabelID           string `bson:"labelID" json:"labelID"`
	OrderID           string `bson:"orderID" json:"orderID"`
	ConsignmentNumber string `bson:"consignmentNumber" json:"consignmentNumber"`
	CustomerNumber    string `bson:"customerNumber" json:"customerNumber"`
}
