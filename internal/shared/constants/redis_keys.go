package constants

import (
	"fmt"
	"time"
)

// Redis key and TTL catalog for the AxeQuacks backend.
// Pattern: axequacks:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	// Capacity topology changes only through admin configuration
	TTL_CATALOG_CAPACITY = 1 * time.Hour

	// Availability is advisory and recomputed cheaply; keep it fresh
	TTL_AVAILABILITY = 30 * time.Second

	// Resolved operating windows: static per weekday, overridable per date
	TTL_WINDOW = 5 * time.Minute
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "axequacks"
)

// ================== CATALOG MODULE ==================

const (
	CACHE_KEY_CATALOG_CAPACITY = CACHE_PREFIX + ":catalog:capacity:all"
	CACHE_KEY_WINDOW           = CACHE_PREFIX + ":catalog:window:date:" // + date-key
)

// ================== AVAILABILITY MODULE ==================

const (
	CACHE_KEY_AVAILABILITY = CACHE_PREFIX + ":availability:scan" // + :date:X:req:fingerprint
)

// BuildAvailabilityKey builds the cache key for one availability scan.
func BuildAvailabilityKey(dateKey, fingerprint string) string {
	return fmt.Sprintf("%s:date:%s:req:%s", CACHE_KEY_AVAILABILITY, dateKey, fingerprint)
}

// AvailabilityKeyPattern matches every cached scan for a date; used for
// invalidation when a booking commits or is cancelled.
func AvailabilityKeyPattern(dateKey string) string {
	return fmt.Sprintf("%s:date:%s:*", CACHE_KEY_AVAILABILITY, dateKey)
}

// ================== RESERVATIONS MODULE ==================

const (
	HOLD_KEY_PREFIX        = CACHE_PREFIX + ":holds:hold:" // + hold-id
	HOLD_DATE_INDEX_PREFIX = CACHE_PREFIX + ":holds:date:" // + date-key (set of hold ids)
)

// BuildHoldKey builds the key holding one checkout hold's payload.
func BuildHoldKey(holdID string) string {
	return HOLD_KEY_PREFIX + holdID
}

// BuildHoldDateIndexKey builds the per-date index of active hold ids.
func BuildHoldDateIndexKey(dateKey string) string {
	return HOLD_DATE_INDEX_PREFIX + dateKey
}

// ================== RATE LIMITING ==================

// BuildRateLimitKey builds the sliding-window rate limit key for a client.
func BuildRateLimitKey(clientIP, limitType string) string {
	return fmt.Sprintf("%s:ratelimit:%s:%s", CACHE_PREFIX, clientIP, limitType)
}
