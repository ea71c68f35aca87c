package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// RawSlot carries the three legacy slot shapes the old API produced: a bare
// time string, an object keyed by slotTime/status, or an object keyed by
// time/available. It exists only at the storage and decode boundary; handlers
// never see it; they work with the canonical Slot.
type RawSlot struct {
	Time      string `bson:"time,omitempty" json:"time,omitempty"`
	SlotTime  string `bson:"slotTime,omitempty" json:"slotTime,omitempty"`
	StartTime string `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime   string `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Status    string `bson:"status,omitempty" json:"status,omitempty"`
	Available *bool  `bson:"available,omitempty" json:"available,omitempty"`
}

// rawSlotDoc mirrors RawSlot without its unmarshal methods.
type rawSlotDoc RawSlot

// UnmarshalJSON accepts either a bare time string or a slot object.
func (rs *RawSlot) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*rs = RawSlot{Time: s}
		return nil
	}
	var doc rawSlotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*rs = RawSlot(doc)
	return nil
}

// UnmarshalBSONValue accepts either a BSON string or an embedded document.
func (rs *RawSlot) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	if s, ok := rv.StringValueOK(); ok {
		*rs = RawSlot{Time: s}
		return nil
	}
	var doc rawSlotDoc
	if err := rv.Unmarshal(&doc); err != nil {
		return err
	}
	*rs = RawSlot(doc)
	return nil
}

// Slot is the canonical bookable interval exposed by the API.
type Slot struct {
	Time      string `json:"time"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// SlotTemplate is a therapist's recurring schedule for one weekday.
// Slots are kept in raw form because the legacy writer produced mixed shapes.
type SlotTemplate struct {
	Weekday int       `bson:"weekday" json:"weekday"` // 0 = Sunday
	Slots   []RawSlot `bson:"slots" json:"slots"`
}

// TherapistSchedule is the full weekly schedule document for a therapist.
type TherapistSchedule struct {
	ID          string         `bson:"id" json:"id"`
	TherapistID string         `bson:"therapist_id" json:"therapistId"`
	Templates   []SlotTemplate `bson:"templates" json:"templates"`
	UpdatedAt   time.Time      `bson:"updated_at" json:"updatedAt"`
}

// BookedSlot marks one (therapist, date, time) as taken. Its Mongo _id is the
// composite key, so a duplicate insert is the conflict signal.
type BookedSlot struct {
	Key         string    `bson:"_id" json:"key"`
	TherapistID string    `bson:"therapist_id" json:"therapistId"`
	Date        string    `bson:"date" json:"date"` // "2006-01-02"
	Time        string    `bson:"time" json:"time"` // "15:04"
	BookingID   string    `bson:"booking_id" json:"bookingId"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// SlotHold is a short-lived reservation on a slot, stored in Redis.
type SlotHold struct {
	HoldID      string    `json:"holdId"`
	UserID      string    `json:"userId"`
	TherapistID string    `json:"therapistId"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
