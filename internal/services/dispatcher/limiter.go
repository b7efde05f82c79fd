package dispatcher

import (
	"sync"

	"golang.org/x/time/rate"
)

// guildLimiter holds one token bucket per guild
type guildLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newGuildLimiter(perSecond float64, burst int) *guildLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &guildLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

// allow reports whether the guild may run another request now. A nil limiter allows everything.
func (l *guildLimiter) allow(guildID string) bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	limiter, ok := l.limiters[guildID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[guildID] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
