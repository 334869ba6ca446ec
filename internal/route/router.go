package route

import (
	"github.com/SeakMengs/MaintCert/internal/controller"
	"github.com/SeakMengs/MaintCert/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Register mounts the global middlewares and every route on r
func Register(r *gin.Engine, c *controller.Controller, m *middleware.Middleware) {
	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader, "Retry-After"}
	r.Use(cors.New(corsConfig))
	r.Use(m.RequestIDMiddleware)
	r.Use(m.RateLimiterMiddleware)

	r.GET("/", c.Index.Index)
	r.GET("/health", c.Index.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rApi := r.Group("/api")

	V1_Validate(rApi, c.Validation)
	V1_Auth(rApi, c.Auth)
	V1_Me(rApi, c.User, m)
	V1_Users(rApi, c.User, m)
	V1_Certificates(rApi, c.Certificate, m)
}
