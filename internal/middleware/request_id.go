package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader     = "X-Request-ID"
	requestIDContextKey = "requestId"
)

// RequestIDMiddleware keeps a well formed incoming X-Request-ID or mints a new one
func (m Middleware) RequestIDMiddleware(ctx *gin.Context) {
	id := ctx.GetHeader(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	ctx.Set(requestIDContextKey, id)
	ctx.Header(RequestIDHeader, id)
	ctx.Next()
}

func RequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDContextKey)
}
