package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShippingAddress is the order's delivery address as pushed by the
// storefront.
type ShippingAddress struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Company   string `bson:"company" json:"company"`
	Address1  string `bson:"address1" json:"address1"`
	Address2  string `bson:"address2" json:"address2"`
	PostCode  string `bson:"postCode" json:"postCode"`
	City      string `bson:"city" json:"city"`
	Country   string `bson:"country" json:"country"`
}

// ShippingItem is one shipping line of an order. Packages is the flat
// per-item package metadata map, keys are field name plus index slot,
// e.g. "weightInGrams0".
type ShippingItem struct {
	ItemID        string            `bson:"itemID" json:"itemID"`
	MethodID      string            `bson:"methodID" json:"methodID"` // e.g. "carrier_booking:servicepakke"
	PickupPointID string            `bson:"pickupPointID,omitempty" json:"pickupPointID,omitempty"`
	Packages      map[string]string `bson:"packages,omitempty" json:"packages,omitempty"`
}

// OrderItem is one purchasable line of the order, carrying the product
// dimensions the package recompute falls back to.
type OrderItem struct {
	ProductID   string  `bson:"productID" json:"productID"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	WidthCm     float64 `bson:"widthCm" json:"widthCm"`
	HeightCm    float64 `bson:"heightCm" json:"heightCm"`
	LengthCm    float64 `bson:"lengthCm" json:"lengthCm"`
	WeightGrams int     `bson:"weightGrams" json:"weightGrams"`
}

// Order mirrors the storefront order, reduced to the fields booking needs.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID       string             `bson:"orderID" json:"orderID"`
	Shipping      ShippingAddress    `bson:"shipping" json:"shipping"`
	CustomerNote  string             `bson:"customerNote" json:"customerNote"`
	BillingEmail  string             `bson:"billingEmail" json:"billingEmail"`
	BillingPhone  string             `bson:"billingPhone" json:"billingPhone"`
	Items         []OrderItem        `bson:"items" json:"items"`
	ShippingItems []ShippingItem     `bson:"shippingItems" json:"shippingItems"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// RecipientName prefers the company name and falls back to the full name.
func (o *Order) RecipientName() string {
	if o.Shipping.Company != "" {
		return o.Shipping.Company
	}
	return o.FullName()
}

// FullName is the order's shipping first and last name joined.
func (o *Order) FullName() string {
	return o.Shipping.FirstName + " " + o.Shipping.LastName
}
