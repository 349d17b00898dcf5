package constants

// Redis cache keys for the Alostudio backend.
// Pattern: alostudio:{module}:{operation}:{identifier?}

const (
	CACHE_PREFIX = "alostudio"
)

// Catalog cache keys
const (
	CACHE_KEY_SERVICES_ACTIVE  = CACHE_PREFIX + ":catalog:services:active"
	CACHE_KEY_SERVICES_BY_TYPE = CACHE_PREFIX + ":catalog:services:type:" // + service type
	CACHE_KEY_COMBOS_ACTIVE    = CACHE_PREFIX + ":catalog:combos:active"
	CACHE_PATTERN_CATALOG      = CACHE_PREFIX + ":catalog:*"
)

// Earnings cache keys
const (
	CACHE_KEY_EARNINGS_SUMMARY = CACHE_PREFIX + ":earnings:summary"
)

// BuildServicesByTypeKey builds the cache key for a per-type service listing.
func BuildServicesByTypeKey(serviceType string) string {
	return CACHE_KEY_SERVICES_BY_TYPE + serviceType
}
