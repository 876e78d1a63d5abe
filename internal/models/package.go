package models

// Dimensions of a single parcel in centimetres.
type Dimensions struct {
	WidthInCm  float64 `bson:"widthInCm" json:"widthInCm"`
	HeightInCm float64 `bson:"heightInCm" json:"heightInCm"`
	LengthInCm float64 `bson:"lengthInCm" json:"lengthInCm"`
}

// Package is one physical parcel of a consignment request. The nullable
// fields are part of the carrier's wire format and are never populated by
// this integration.
type Package struct {
	WeightInKg       float64    `bson:"weightInKg" json:"weightInKg"`
	GoodsDescription *string    `bson:"goodsDescription" json:"goodsDescription"`
	Dimensions       Dimensions `bson:"dimensions" json:"dimensions"`
	ContainerID      *string    `bson:"containerId" json:"containerId"`
	PackageType      *string    `bson:"packageType" json:"packageType"`
	NumberOfItems    *int       `bson:"numberOfItems" json:"numberOfItems"`
	CorrelationID    *string    `bson:"correlationId" json:"correlationId"`
}
