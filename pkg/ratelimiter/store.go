package ratelimiter

import (
	"context"
	"time"
)

// Store holds per-key quota state. MemoryStore keeps it in-process for a
// single replica; RedisStore shares it across replicas.
type Store interface {
	// ConsumeTokens charges tokens against the key and reports what is left
	// plus when the quota next refills. A negative remaining means the
	// request must be denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset forgets all quota state for the key.
	Reset(ctx context.Context, key string) error
}
