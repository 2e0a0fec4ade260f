// Package ratelimiter implements token bucket rate limiting with pluggable
// storage backends.
//
// Bucket applies the token bucket algorithm on top of a Store. MemoryStore
// keeps per-key buckets in process memory and is the default for
// single-instance deployments; state is lost on restart and not shared
// between instances. RedisStore externalizes the counter for multi-instance
// deployments using a fixed window per refill interval.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       6,
//		RefillRate:     6,
//		RefillInterval: time.Minute,
//	})
//
//	result, err := bucket.Allow(ctx, clientIP)
//	if err != nil || !result.Allowed() {
//		// reject with retry-after
//	}
package ratelimiter
