package ratelimiter

import (
	"sync"
	"time"

	"github.com/SeakMengs/MaintCert/internal/config"
	"go.uber.org/zap"
)

type window struct {
	start time.Time
	count int
}

// FixedWindowRateLimiter counts requests per key (client ip) inside fixed time frames.
// State is per process, every replica limits on its own.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients   map[string]*window
	limit     int
	frame     time.Duration
	enabled   bool
	lastSweep time.Time
	now       func() time.Time
	logger    *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	frame := cfg.TimeFrame
	if frame <= 0 {
		frame = time.Minute
	}

	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   cfg.RequestsPerTimeFrame,
		frame:   frame,
		enabled: cfg.Enabled && cfg.RequestsPerTimeFrame > 0,
		now:     time.Now,
		logger:  logger,
	}
}

func (rl *FixedWindowRateLimiter) Enabled() bool {
	return rl.enabled
}

// Allow returns the seconds to wait when the key is over its limit
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, float64) {
	if !rl.enabled {
		return true, 0
	}

	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	rl.sweep(now)

	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.frame {
		rl.clients[key] = &window{start: now, count: 1}
		return true, 0
	}

	if w.count >= rl.limit {
		retryAfter := w.start.Add(rl.frame).Sub(now).Seconds()
		rl.logger.Debugf("Rate limit exceeded for %s, retry after %.0fs", key, retryAfter)
		return false, retryAfter
	}

	w.count++
	return true, 0
}

// Drop expired windows at most once per frame, caller holds the lock
func (rl *FixedWindowRateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.frame {
		return
	}
	rl.lastSweep = now

	for key, w := range rl.clients {
		if now.Sub(w.start) >= rl.frame {
			delete(rl.clients, key)
		}
	}
}
