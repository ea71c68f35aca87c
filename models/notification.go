package models

import "time"

// Notification types.
const (
	NotificationBookingCreated   = "booking_created"
	NotificationBookingConfirmed = "booking_confirmed"
	NotificationBookingCancelled = "booking_cancelled"
	NotificationBookingReminder  = "booking_reminder"
	NotificationKYCReviewed      = "kyc_reviewed"
	NotificationPayment          = "payment"
)

// Notification is a persisted per-recipient notification. A copy may also be
// pushed via FCM when the recipient has a device token.
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"user_id" json:"userId"`
	Role      string            `bson:"role" json:"role"`
	Type      string            `bson:"type" json:"type"`
	Title     string            `bson:"title" json:"title"`
	Body      string            `bson:"body" json:"body"`
	Data      map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool              `bson:"read" json:"read"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
}
