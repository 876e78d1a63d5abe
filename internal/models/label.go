package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Label is one order-line-scoped shipping label. WaybillID is the
// back-reference set once the label has been included in a waybill
// booking attempt.
type Label struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID           string             `bson:"orderID" json:"orderID"`
	ConsignmentNumber string             `bson:"consignmentNumber" json:"consignmentNumber"`
	CustomerNumber    string             `bson:"customerNumber" json:"customerNumber"`
	WaybillID         string             `bson:"waybillID,omitempty" json:"waybillID,omitempty"`
	TestMode          bool               `bson:"testMode" json:"testMode"`
	Status            string             `bson:"status" json:"status"` // "draft", "published"
	PDFURL            string             `bson:"pdfURL,omitempty" json:"pdfURL,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
