package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"broheal/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// holdKey builds the Redis key a slot hold lives under.
func holdKey(therapistID, date, slotTime string) string {
	return fmt.Sprintf("hold:%s:%s:%s", therapistID, date, slotTime)
}

// HoldManager arbitrates short-TTL slot reservations in Redis. SETNX makes
// the first requester the holder; everyone else gets ErrHoldNotOwned until
// the TTL lapses or the hold is released.
type HoldManager struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHoldManager creates a hold manager with the given reservation TTL.
func NewHoldManager(client *redis.Client, ttl time.Duration) *HoldManager {
	return &HoldManager{client: client, ttl: ttl}
}

// Acquire reserves the slot for the user. Re-acquiring one's own live hold
// refreshes it.
func (h *HoldManager) Acquire(ctx context.Context, userID, therapistID, date, slotTime string) (*models.SlotHold, error) {
	hold := models.SlotHold{
		HoldID:      uuid.New().String(),
		UserID:      userID,
		TherapistID: therapistID,
		Date:        date,
		Time:        slotTime,
		ExpiresAt:   time.Now().Add(h.ttl),
	}
	data, err := json.Marshal(hold)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hold: %w", err)
	}

	key := holdKey(therapistID, date, slotTime)
	ok, err := h.client.SetNX(ctx, key, data, h.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire hold: %w", err)
	}
	if ok {
		return &hold, nil
	}

	existing, err := h.get(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.UserID == userID {
		existing.ExpiresAt = time.Now().Add(h.ttl)
		refreshed, err := json.Marshal(existing)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal hold: %w", err)
		}
		if err := h.client.Set(ctx, key, refreshed, h.ttl).Err(); err != nil {
			return nil, fmt.Errorf("failed to refresh hold: %w", err)
		}
		return existing, nil
	}
	return nil, ErrHoldNotOwned
}

// Confirm checks that the user still holds the slot and consumes the hold.
func (h *HoldManager) Confirm(ctx context.Context, userID, therapistID, date, slotTime string) error {
	key := holdKey(therapistID, date, slotTime)
	hold, err := h.get(ctx, key)
	if err != nil {
		return err
	}
	if hold == nil {
		return ErrHoldExpired
	}
	if hold.UserID != userID {
		return ErrHoldNotOwned
	}
	return h.client.Del(ctx, key).Err()
}

// Release drops a hold without booking, freeing the slot for others.
func (h *HoldManager) Release(ctx context.Context, userID, therapistID, date, slotTime string) error {
	key := holdKey(therapistID, date, slotTime)
	hold, err := h.get(ctx, key)
	if err != nil {
		return err
	}
	if hold == nil || hold.UserID != userID {
		return nil
	}
	return h.client.Del(ctx, key).Err()
}

func (h *HoldManager) get(ctx context.Context, key string) (*models.SlotHold, error) {
	data, err := h.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hold: %w", err)
	}
	var hold models.SlotHold
	if err := json.Unmarshal([]byte(data), &hold); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hold: %w", err)
	}
	return &hold, nil
}
