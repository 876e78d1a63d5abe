package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an operator account for the booking API.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Password   string             `bson:"password" json:"-"`
	Role       string             `bson:"role" json:"role"` // "superadmin", "operator"
	OperatorID string             `bson:"operatorID" json:"operatorID"`
	Status     string             `bson:"status" json:"status"` // "active", "disabled"
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
