package ratelimiter

import "time"

// Result is the outcome of one quota check for a client key.
type Result struct {
	Limit     int       // submission quota per window (bucket capacity)
	Remaining int       // submissions left; negative means this one was denied
	ResetAt   time.Time // when the next refill lands
}

// Allowed reports whether the checked request may proceed.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns the wait before the caller should try again; this is
// what the handler puts in the Retry-After header. Zero when allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Config is the per-key quota: Capacity submissions per window, with
// RefillRate tokens returned every RefillInterval.
type Config struct {
	Capacity       int
	RefillRate     int
	RefillInterval time.Duration
}
