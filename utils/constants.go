package utils

import "time"

// AuthCachePrefix is the prefix used for auth cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for auth cache entries.
const AuthCacheTTL = 24 * time.Hour

// SessionTTL is the default time-to-live for search and booking
// sessions when SESSION_TTL_MIN is unset.
const SessionTTL = 10 * time.Minute

// DateLayout is the calendar date format used by the slots mapping.
const DateLayout = "2006-01-02"
