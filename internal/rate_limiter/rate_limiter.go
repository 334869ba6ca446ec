package ratelimiter

import (
	"github.com/SeakMengs/MaintCert/internal/config"
	"github.com/SeakMengs/MaintCert/internal/util"
	"go.uber.org/zap"
)

type RateLimiter interface {
	// Allow reports whether key may proceed, and when not, how long until it may retry
	Allow(key string) (bool, float64)
	Enabled() bool
}

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("test")
	}

	return NewFixedWindowLimiter(cfg, logger)
}
