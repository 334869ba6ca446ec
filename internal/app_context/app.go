package appcontext

import (
	"github.com/SeakMengs/MaintCert/internal/auth"
	"github.com/SeakMengs/MaintCert/internal/config"
	"github.com/SeakMengs/MaintCert/internal/metrics"
	"github.com/SeakMengs/MaintCert/internal/repository"
	"github.com/SeakMengs/MaintCert/internal/service"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// JWTService manages JWT operations for authentication such as generate and verify access token.
	JWTService auth.JWTInterface

	Metrics *metrics.Metrics

	// Public certificate validation
	Validation *service.ValidationService

	// Certificate creation with identifier assignment
	Issuance *service.IssuanceService
}

func NewApplication(cfg *config.Config, logger *zap.SugaredLogger, repo *repository.Repository, jwtService auth.JWTInterface, m *metrics.Metrics) *Application {
	return &Application{
		Config:     cfg,
		Logger:     logger,
		Repository: repo,
		JWTService: jwtService,
		Metrics:    m,
		Validation: service.NewValidationService(repo.Certificate, m, logger),
		Issuance:   service.NewIssuanceService(repo.Certificate, m, logger),
	}
}
