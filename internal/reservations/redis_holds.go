package reservations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/constants"
)

// Hold is one checkout-in-progress claim: the decomposed intervals a guest
// is about to pay for, parked in Redis with a TTL. Expiry releases capacity
// without any cleanup job.
type Hold struct {
	ID         string                  `json:"id"`
	DateKey    string                  `json:"date_key"`
	GuestEmail string                  `json:"guest_email"`
	StartMin   int                     `json:"start_min"`
	TotalCents int                     `json:"total_cents"`
	Request    availability.Request    `json:"request"`
	Intervals  []availability.Interval `json:"intervals"`
	ExpiresAt  time.Time               `json:"expires_at"`
}

// HoldStore parks checkout holds in Redis. Creation and release run as Lua
// scripts so the payload and the per-date index never go out of sync.
type HoldStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewHoldStore(redisClient *redis.Client, ttl time.Duration) *HoldStore {
	return &HoldStore{redis: redisClient, ttl: ttl}
}

// Lua script for atomic hold creation - payload and date index move together
const luaCreateHold = `
-- KEYS[1] = hold key
-- KEYS[2] = date index key
-- ARGV[1] = hold id
-- ARGV[2] = payload json
-- ARGV[3] = ttl seconds

if redis.call("EXISTS", KEYS[1]) == 1 then
    return {0, "hold_exists"}
end

redis.call("SET", KEYS[1], ARGV[2], "EX", tonumber(ARGV[3]))
redis.call("SADD", KEYS[2], ARGV[1])
redis.call("EXPIRE", KEYS[2], tonumber(ARGV[3]))

return {1, "success"}
`

// Lua script for atomic hold release
const luaReleaseHold = `
-- KEYS[1] = hold key
-- KEYS[2] = date index key
-- ARGV[1] = hold id

if redis.call("EXISTS", KEYS[1]) == 0 then
    redis.call("SREM", KEYS[2], ARGV[1])
    return {0, "hold_not_found"}
end

redis.call("DEL", KEYS[1])
redis.call("SREM", KEYS[2], ARGV[1])

return {1, "success"}
`

// Create parks a new hold and returns it. The hold id is generated here so
// retried requests never collide.
func (s *HoldStore) Create(ctx context.Context, dateKey, guestEmail string, startMin, totalCents int, req availability.Request, intervals []availability.Interval) (*Hold, error) {
	hold := &Hold{
		ID:         uuid.New().String(),
		DateKey:    dateKey,
		GuestEmail: guestEmail,
		StartMin:   startMin,
		TotalCents: totalCents,
		Request:    req,
		Intervals:  intervals,
		ExpiresAt:  time.Now().UTC().Add(s.ttl),
	}

	payload, err := json.Marshal(hold)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hold: %w", err)
	}

	keys := []string{
		constants.BuildHoldKey(hold.ID),
		constants.BuildHoldDateIndexKey(dateKey),
	}
	args := []interface{}{hold.ID, string(payload), int(s.ttl.Seconds())}

	result, err := s.redis.Eval(ctx, luaCreateHold, keys, args...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create hold: %w", err)
	}
	if status, ok := result.([]interface{}); ok && len(status) > 0 {
		if code, ok := status[0].(int64); ok && code != 1 {
			return nil, ErrHoldSlotUnavailable
		}
	}

	return hold, nil
}

// Get reads one hold's payload; expired holds surface as ErrHoldNotFound.
func (s *HoldStore) Get(ctx context.Context, holdID string) (*Hold, error) {
	payload, err := s.redis.Get(ctx, constants.BuildHoldKey(holdID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrHoldNotFound
		}
		return nil, fmt.Errorf("failed to read hold: %w", err)
	}

	var hold Hold
	if err := json.Unmarshal([]byte(payload), &hold); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hold: %w", err)
	}
	return &hold, nil
}

// Release removes a hold before its TTL, typically on confirm or abandon.
func (s *HoldStore) Release(ctx context.Context, holdID, dateKey string) error {
	keys := []string{
		constants.BuildHoldKey(holdID),
		constants.BuildHoldDateIndexKey(dateKey),
	}

	if _, err := s.redis.Eval(ctx, luaReleaseHold, keys, holdID).Result(); err != nil {
		return fmt.Errorf("failed to release hold: %w", err)
	}
	return nil
}

// HeldIntervalsForDate collects the intervals of every live hold on a date.
// Index members whose payload has expired are pruned as they are found.
func (s *HoldStore) HeldIntervalsForDate(ctx context.Context, dateKey string) ([]availability.Interval, error) {
	indexKey := constants.BuildHoldDateIndexKey(dateKey)

	holdIDs, err := s.redis.SMembers(ctx, indexKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hold index: %w", err)
	}

	var intervals []availability.Interval
	for _, holdID := range holdIDs {
		hold, err := s.Get(ctx, holdID)
		if err != nil {
			if err == ErrHoldNotFound {
				s.redis.SRem(ctx, indexKey, holdID)
				continue
			}
			return nil, err
		}
		intervals = append(intervals, hold.Intervals...)
	}

	return intervals, nil
}
