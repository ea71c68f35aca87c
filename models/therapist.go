package models

import "time"

// Therapist is the provider-side profile attached to a therapist account.
type Therapist struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	DisplayName string    `bson:"display_name" json:"displayName"`
	Bio         string    `bson:"bio,omitempty" json:"bio,omitempty"`
	ServiceIDs  []string  `bson:"service_ids,omitempty" json:"serviceIds,omitempty"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	Rating      float64   `bson:"rating" json:"rating"`
	RatingCount int       `bson:"rating_count" json:"ratingCount"`
	Verified    bool      `bson:"verified" json:"verified"`
	KYCStatus   string    `bson:"kyc_status" json:"kycStatus"` // "none", "pending", "approved", "rejected"
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// TherapistUpdate is the mutable subset of a therapist profile.
type TherapistUpdate struct {
	DisplayName string   `json:"displayName,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	ServiceIDs  []string `json:"serviceIds,omitempty"`
	City        string   `json:"city,omitempty"`
}
