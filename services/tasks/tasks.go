package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"broheal/config"

	"github.com/hibiken/asynq"
)

// Task types handled by the background worker.
const (
	TypeBookingReminder = "booking:reminder"
	TypeBookingExpire   = "booking:expire"
)

// BookingPayload identifies the booking a deferred task acts on.
type BookingPayload struct {
	BookingID string `json:"bookingId"`
}

// RedisOpt builds the asynq Redis connection options from config.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Scheduler enqueues deferred booking work through asynq.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler creates a scheduler with its own asynq client.
func NewScheduler() *Scheduler {
	return &Scheduler{client: asynq.NewClient(RedisOpt())}
}

func (s *Scheduler) enqueue(taskType, bookingID string, at time.Time) error {
	b, err := json.Marshal(BookingPayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}
	task := asynq.NewTask(taskType, b)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(at)); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}
	return nil
}

// ScheduleReminder fires the pre-appointment reminder at the given time.
func (s *Scheduler) ScheduleReminder(bookingID string, at time.Time) error {
	return s.enqueue(TypeBookingReminder, bookingID, at)
}

// SchedulePaymentExpiry cancels the booking at the given time if it is still
// unpaid by then.
func (s *Scheduler) SchedulePaymentExpiry(bookingID string, at time.Time) error {
	return s.enqueue(TypeBookingExpire, bookingID, at)
}

// Close releases the underlying asynq client.
func (s *Scheduler) Close() error {
	return s.client.Close()
}
