package server

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	bucketIdleThreshold = time.Hour
	cleanupInterval     = 30 * time.Minute
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-client token bucket refilled in full once per window.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	window      time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewRateLimiter starts a limiter allowing capacity requests per window for
// each client. Call Stop to release its cleanup goroutine.
func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		window:      window,
		clients:     make(map[string]*clientBucket),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for client, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketIdleThreshold {
			delete(r.clients, client)
		}
	}
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow consumes one token for client and reports whether one was available.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[client]
	if !exists {
		r.clients[client] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return r.capacity > 0
	}

	if now.Sub(bucket.lastRefill) >= r.window {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}
	bucket.tokens--
	return true
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
