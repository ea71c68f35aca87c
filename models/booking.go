package models

import "time"

// Booking statuses.
const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusConfirmed      = "confirmed"
	BookingStatusCompleted      = "completed"
	BookingStatusCancelled      = "cancelled"
)

// Address is the home-visit destination captured at the final booking step.
type Address struct {
	Street    string  `bson:"street" json:"street"`
	City      string  `bson:"city" json:"city"`
	State     string  `bson:"state" json:"state"`
	ZipCode   string  `bson:"zip_code" json:"zipCode"`
	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// Booking is a confirmed booking record.
type Booking struct {
	ID              string          `bson:"id" json:"id"`
	UserID          string          `bson:"user_id" json:"userId"`
	TherapistID     string          `bson:"therapist_id" json:"therapistId"`
	ServiceID       string          `bson:"service_id" json:"serviceId"`
	BookingDateTime time.Time       `bson:"booking_date_time" json:"bookingDateTime"`
	Date            string          `bson:"date" json:"date"`
	SlotTime        string          `bson:"slot_time" json:"slotTime"`
	Addons          []SelectedAddon `bson:"addons,omitempty" json:"addons,omitempty"`
	Address         Address         `bson:"address" json:"address"`
	TotalPrice      float64         `bson:"total_price" json:"totalPrice"`
	TotalDuration   int             `bson:"total_duration" json:"totalDuration"` // minutes
	Status          string          `bson:"status" json:"status"`
	OrderID         string          `bson:"order_id,omitempty" json:"orderId,omitempty"`
	CreatedAt       time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updatedAt"`
}

// BookingRequest is the composed payload the client submits at the end of the
// booking flow: service, schedule, addons and address accumulated across the
// four wizard steps.
type BookingRequest struct {
	TherapistID string          `json:"therapistId"`
	ServiceID   string          `json:"serviceId"`
	Date        string          `json:"date"`     // "2006-01-02"
	SlotTime    string          `json:"slotTime"` // "15:04"
	HoldID      string          `json:"holdId,omitempty"`
	Addons      []SelectedAddon `json:"addons,omitempty"`
	Address     Address         `json:"address"`
}
