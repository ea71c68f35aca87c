package models

import "time"

// Service is a primary bookable wellness service.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// Addon is an optional extra attached to a primary booking.
type Addon struct {
	ID          string  `bson:"id" json:"id"`
	ServiceID   string  `bson:"service_id" json:"serviceId"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Duration    int     `bson:"duration" json:"duration"` // minutes
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string  `bson:"icon,omitempty" json:"icon,omitempty"`
	Active      bool    `bson:"active" json:"active"`
}

// SelectedAddon is an addon choice embedded in a booking, keyed by AddonID.
type SelectedAddon struct {
	AddonID  string  `bson:"addon_id" json:"addonId"`
	Title    string  `bson:"title" json:"title"`
	Price    float64 `bson:"price" json:"price"`
	Duration int     `bson:"duration" json:"duration"`
}
