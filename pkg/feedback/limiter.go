package feedback

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles submissions per client key (usually the remote IP).
// Each key gets its own token bucket refilled at perWindow events per
// window.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewLimiter allows perWindow submissions per window per key, with a
// burst of the same size.
func NewLimiter(perWindow int, window time.Duration) *Limiter {
	if perWindow <= 0 {
		perWindow = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		clients: make(map[string]*rate.Limiter),
		limit:   rate.Every(window / time.Duration(perWindow)),
		burst:   perWindow,
	}
}

// Allow reports whether the key may submit now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	lim, ok := l.clients[key]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.clients[key] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}
