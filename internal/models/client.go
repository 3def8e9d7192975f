package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record sources. Every record returned by the API carries one of
// these tags so callers never have to guess where an id came from.
const (
	SourceMongo  = "MongoDB"
	SourceLegacy = "Legacy"
)

// Client statuses.
const (
	ClientStatusActive   = "Active"
	ClientStatusInactive = "Inactive"
	ClientStatusPending  = "Pending"
)

// Client represents an active account.
//
// ClientID is the human-facing sequential display id ("001".."999"),
// assigned at creation and distinct from the Mongo primary key.
type Client struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ClientID  string             `json:"clientId" bson:"clientId,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Revenue   float64            `json:"revenue" bson:"revenue"`
	Status    string             `json:"status" bson:"status"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Company   string             `json:"company,omitempty" bson:"company,omitempty"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	Source    string             `json:"source" bson:"source"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
