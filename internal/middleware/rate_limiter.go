package middleware

import (
	"fmt"
	"math"
	"net/http"

	"github.com/SeakMengs/MaintCert/internal/util"
	"github.com/gin-gonic/gin"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	if m.rateLimiter == nil || !m.rateLimiter.Enabled() {
		ctx.Next()
		return
	}

	ip := ctx.ClientIP()
	if allow, retryAfter := m.rateLimiter.Allow(ip); !allow {
		m.app.Logger.Warnw("Rate limit exceeded", "ip", ip, "path", ctx.FullPath(), "request_id", RequestID(ctx))
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", math.Ceil(retryAfter)))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests, please try again later", nil, nil)
		return
	}

	ctx.Next()
}
