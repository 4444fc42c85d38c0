package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// availabilityTTL bounds how stale a cached slot list can get: staff-side
// scheduling changes surface after at most this long. Public bookings
// invalidate their day eagerly.
const availabilityTTL = 30 * time.Second

// AvailabilityCache memoizes the public slot lookups per salon and day, the
// hottest anonymous reads. Cache errors degrade to a recompute, never to a
// request failure.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache creates an availability cache over the redis client.
func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: availabilityTTL}
}

func slotsKey(salonID uint, date string) string {
	return fmt.Sprintf("availability:slots:%d:%s", salonID, date)
}

// GetSlots returns the cached slot list for a salon and day, if present.
func (c *AvailabilityCache) GetSlots(salonID uint, date string) ([]string, bool) {
	raw, err := c.client.Get(context.Background(), slotsKey(salonID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// SetSlots stores the slot list for a salon and day.
func (c *AvailabilityCache) SetSlots(salonID uint, date string, slots []string) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(context.Background(), slotsKey(salonID, date), raw, c.ttl).Err(); err != nil {
		log.Printf("availability cache: set %s failed: %v", slotsKey(salonID, date), err)
	}
}

// Invalidate drops the cached slot list for a salon and day.
func (c *AvailabilityCache) Invalidate(salonID uint, date string) {
	if err := c.client.Del(context.Background(), slotsKey(salonID, date)).Err(); err != nil {
		log.Printf("availability cache: invalidate %s failed: %v", slotsKey(salonID, date), err)
	}
}
