package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	therapistRepo "broheal/database/repository/therapist"
	"broheal/models"
	"broheal/services/booking"
	"broheal/services/notification"
	"broheal/services/tasks"
	"broheal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitBookingWorker runs the asynq worker that handles deferred booking
// tasks: the pre-appointment reminder and the unpaid-booking expiry.
func InitBookingWorker(bookingSvc booking.BookingService, notifSvc notification.NotificationService, therapists therapistRepo.TherapistRepository) {
	srv := asynq.NewServer(
		tasks.RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, handleReminderTask(bookingSvc, notifSvc, therapists))
	mux.HandleFunc(tasks.TypeBookingExpire, handleExpireTask(bookingSvc))

	go func() {
		logger := utils.GetLogger()
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			logger.Info("starting booking worker", zap.Int("attempt", attempt))
			if err := srv.Run(mux); err != nil {
				logger.Error("booking worker failed", zap.Int("attempt", attempt), zap.Error(err))
				if attempt == maxAttempts {
					logger.Fatal("booking worker gave up after max attempts")
				}
				time.Sleep(time.Duration(attempt*2) * time.Second)
				continue
			}
			break
		}
	}()
}

func decodePayload(task *asynq.Task) (tasks.BookingPayload, error) {
	var p tasks.BookingPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid task payload: %w", err)
	}
	return p, nil
}

// handleReminderTask notifies both parties shortly before the appointment.
// Cancelled bookings fire nothing.
func handleReminderTask(bookingSvc booking.BookingService, notifSvc notification.NotificationService, therapists therapistRepo.TherapistRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := decodePayload(task)
		if err != nil {
			return err
		}

		b, err := bookingSvc.GetBooking(ctx, "", p.BookingID)
		if err != nil {
			if errors.Is(err, booking.ErrNotFound) {
				return nil
			}
			return err
		}
		if b.Status != models.BookingStatusConfirmed {
			return nil
		}

		body := fmt.Sprintf("Reminder: your appointment is on %s at %s.", b.Date, b.SlotTime)
		data := map[string]string{"bookingId": b.ID}
		if err := notifSvc.Notify(ctx, b.UserID, models.RoleUser, models.NotificationBookingReminder,
			"Upcoming appointment", body, data); err != nil {
			return err
		}
		if t, err := therapists.GetByID(b.TherapistID); err == nil && t != nil {
			if err := notifSvc.Notify(ctx, t.UserID, models.RoleTherapist, models.NotificationBookingReminder,
				"Upcoming appointment", body, data); err != nil {
				utils.GetLogger().Warn("failed to remind therapist",
					zap.String("booking_id", b.ID), zap.Error(err))
			}
		}
		return nil
	}
}

// handleExpireTask cancels the booking if payment never arrived.
func handleExpireTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := decodePayload(task)
		if err != nil {
			return err
		}
		return bookingSvc.ExpireUnpaid(ctx, p.BookingID)
	}
}
