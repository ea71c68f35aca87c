package models

import "time"

// Settings is the single platform-settings document served publicly and
// edited by admins.
type Settings struct {
	ID              string    `bson:"id" json:"id"`
	SiteName        string    `bson:"site_name" json:"siteName"`
	SupportEmail    string    `bson:"support_email" json:"supportEmail"`
	SupportPhone    string    `bson:"support_phone" json:"supportPhone"`
	BookingOpen     bool      `bson:"booking_open" json:"bookingOpen"`
	Currency        string    `bson:"currency" json:"currency"`
	ServiceTaxRate  float64   `bson:"service_tax_rate" json:"serviceTaxRate"`
	MinBookingLead  int       `bson:"min_booking_lead" json:"minBookingLead"` // minutes
	AnnouncementMsg string    `bson:"announcement_msg,omitempty" json:"announcementMsg,omitempty"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// Review is a customer review of a completed booking; only approved reviews
// are served publicly.
type Review struct {
	ID          string    `bson:"id" json:"id"`
	BookingID   string    `bson:"booking_id" json:"bookingId"`
	UserID      string    `bson:"user_id" json:"userId"`
	TherapistID string    `bson:"therapist_id" json:"therapistId"`
	Rating      int       `bson:"rating" json:"rating"` // 1..5
	Comment     string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Approved    bool      `bson:"approved" json:"approved"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
