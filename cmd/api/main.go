package main

import (
	appcontext "github.com/SeakMengs/MaintCert/internal/app_context"
	"github.com/SeakMengs/MaintCert/internal/auth"
	"github.com/SeakMengs/MaintCert/internal/config"
	"github.com/SeakMengs/MaintCert/internal/controller"
	"github.com/SeakMengs/MaintCert/internal/database"
	"github.com/SeakMengs/MaintCert/internal/env"
	"github.com/SeakMengs/MaintCert/internal/metrics"
	"github.com/SeakMengs/MaintCert/internal/middleware"
	ratelimiter "github.com/SeakMengs/MaintCert/internal/rate_limiter"
	"github.com/SeakMengs/MaintCert/internal/repository"
	"github.com/SeakMengs/MaintCert/internal/route"
	"github.com/SeakMengs/MaintCert/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/automaxprocs/maxprocs"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()

	if _, err := maxprocs.Set(maxprocs.Logger(logger.Infof)); err != nil {
		logger.Warnf("Failed to set GOMAXPROCS: %v", err)
	}

	if cfg.Auth.JWT_SECRET == "" {
		logger.Panic("AUTH_JWT_SECRET must be set")
	}

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Infof("Database connected using %s driver", cfg.DB.DRIVER)

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := util.RegisterValidators(v); err != nil {
			logger.Panic(err)
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, cfg.Certificate)
	app := appcontext.NewApplication(&cfg, logger, repo, jwtService, metrics.New(prometheus.DefaultRegisterer))

	_middleware := middleware.NewMiddleware(app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	route.Register(r, controller.NewController(app), _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v", err)
	}
}
