package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"broheal/database"
	"broheal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	schedules   *mongo.Collection
	bookedSlots *mongo.Collection
	bookings    *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	repo := &MongoScheduleRepo{
		schedules:   db.Collection("therapist_schedules"),
		bookedSlots: db.Collection("booked_slots"),
		bookings:    db.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.schedules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "therapist_id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create schedule indexes: %w", err)
	}
	if _, err := r.bookedSlots.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "therapist_id", Value: 1}, {Key: "date", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create booked slot indexes: %w", err)
	}
	return nil
}

// SlotKey builds the composite _id a booked-slot mark lives under.
func SlotKey(therapistID, date, slotTime string) string {
	return fmt.Sprintf("%s|%s|%s", therapistID, date, slotTime)
}

// UpsertSchedule replaces a therapist's weekly schedule document.
func (r *MongoScheduleRepo) UpsertSchedule(schedule *models.TherapistSchedule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.schedules.ReplaceOne(ctx, bson.M{"therapist_id": schedule.TherapistID}, schedule, opts); err != nil {
		return fmt.Errorf("failed to upsert schedule for therapist %s: %w", schedule.TherapistID, err)
	}
	return nil
}

// GetScheduleByTherapist returns the weekly schedule, or nil when the
// therapist never set one up.
func (r *MongoScheduleRepo) GetScheduleByTherapist(therapistID string) (*models.TherapistSchedule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var schedule models.TherapistSchedule
	err := r.schedules.FindOne(ctx, bson.M{"therapist_id": therapistID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule for therapist %s: %w", therapistID, err)
	}
	return &schedule, nil
}

// GetBookedTimes returns the set of already-booked times for one day.
func (r *MongoScheduleRepo) GetBookedTimes(therapistID, date string) (map[string]bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.bookedSlots.Find(ctx, bson.M{"therapist_id": therapistID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked slots: %w", err)
	}
	defer cursor.Close(ctx)

	booked := make(map[string]bool)
	var marks []models.BookedSlot
	if err := cursor.All(ctx, &marks); err != nil {
		return nil, fmt.Errorf("failed to decode booked slots: %w", err)
	}
	for _, m := range marks {
		booked[m.Time] = true
	}
	return booked, nil
}

// BookSlotTransactionally inserts the booking document and the booked-slot
// mark in a single transaction. The mark's _id is the composite slot key, so
// a duplicate-key error means another booking won the slot.
func (r *MongoScheduleRepo) BookSlotTransactionally(ctx context.Context, booking *models.Booking) error {
	client := r.bookings.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	mark := models.BookedSlot{
		Key:         SlotKey(booking.TherapistID, booking.Date, booking.SlotTime),
		TherapistID: booking.TherapistID,
		Date:        booking.Date,
		Time:        booking.SlotTime,
		BookingID:   booking.ID,
		CreatedAt:   time.Now(),
	}

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.bookedSlots.InsertOne(sc, mark); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert booked slot mark failed: %w", err)
		}
		if _, err := r.bookings.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}

// ReleaseSlot removes the booked-slot mark, freeing the slot after a
// cancellation or payment expiry.
func (r *MongoScheduleRepo) ReleaseSlot(therapistID, date, slotTime string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.bookedSlots.DeleteOne(ctx, bson.M{"_id": SlotKey(therapistID, date, slotTime)}); err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}
	return nil
}
