// Package ratelimiter implements token bucket rate limiting with an
// in-memory store and an HTTP middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.RemoteIP)).Post("/contact", submit)
package ratelimiter
