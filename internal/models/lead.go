package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Values accepted for Lead.HowDidYouFindOut.
const (
	LeadSourceWebsite   = "website"
	LeadSourceMarketing = "marketing campaign"
	LeadSourceReferral  = "from someone"
)

// Lead is a prospective contact that has not been promoted to a
// client yet.
type Lead struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Email            string             `json:"email" bson:"email"`
	HowDidYouFindOut string             `json:"howDidYouFindOut" bson:"howDidYouFindOut"`
	Status           string             `json:"status" bson:"status"`
	Phone            string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Company          string             `json:"company,omitempty" bson:"company,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}
