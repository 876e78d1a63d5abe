package models

// Contact is the person attached to a sender or recipient party.
type Contact struct {
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	PhoneNumber string `bson:"phoneNumber" json:"phoneNumber"`
}

// Address is one party of a consignment request, shaped the way the
// carrier's booking API expects it.
type Address struct {
	Name                  string  `bson:"name" json:"name"`
	AddressLine           string  `bson:"addressLine" json:"addressLine"`
	AddressLine2          string  `bson:"addressLine2" json:"addressLine2"`
	PostalCode            string  `bson:"postalCode" json:"postalCode"`
	City                  string  `bson:"city" json:"city"`
	CountryCode           string  `bson:"countryCode" json:"countryCode"`
	Reference             *string `bson:"reference" json:"reference"`
	AdditionalAddressInfo string  `bson:"additionalAddressInfo" json:"additionalAddressInfo"`
	Contact               Contact `bson:"contact" json:"contact"`
}

// PickupPoint is an alternate delivery location attached to a consignment.
type PickupPoint struct {
	ID          string `bson:"id" json:"id"`
	CountryCode string `bson:"countryCode" json:"countryCode"`
}
