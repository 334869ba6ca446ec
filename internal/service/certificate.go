package service

import (
	"context"
	"errors"

	"github.com/SeakMengs/MaintCert/internal/metrics"
	"github.com/SeakMengs/MaintCert/internal/model"
	"github.com/SeakMengs/MaintCert/internal/repository"
	"github.com/SeakMengs/MaintCert/pkg/maintcert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CertificateCreator interface {
	Create(ctx context.Context, tx *gorm.DB, in repository.CreateCertificateInput) (*model.Certificate, error)
}

// IssuanceService is the creation entry point used by the api and the cli
type IssuanceService struct {
	creator CertificateCreator
	metrics *metrics.Metrics
	logger  *zap.SugaredLogger
}

func NewIssuanceService(creator CertificateCreator, m *metrics.Metrics, logger *zap.SugaredLogger) *IssuanceService {
	return &IssuanceService{creator: creator, metrics: m, logger: logger}
}

func (s *IssuanceService) Create(ctx context.Context, in repository.CreateCertificateInput) (*model.Certificate, error) {
	certificate, err := s.creator.Create(ctx, nil, in)
	if err != nil {
		reason := FailureReason(err)
		s.metrics.ObserveCreationFailure(reason)

		switch reason {
		case "invalid_input":
			s.logger.Infow("Certificate creation rejected", "reason", reason, "error", err)
		default:
			s.logger.Errorw("Certificate creation failed", "reason", reason, "error", err)
		}
		return nil, err
	}

	s.metrics.ObserveCreation()
	s.logger.Infow("Certificate created", "numero", certificate.NumeroCertificado, "tipo", certificate.Tipo, "estado", certificate.Estado)

	return certificate, nil
}

// FailureReason maps a creation error to a low cardinality label
func FailureReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, maintcert.ErrCodeSpaceExhausted):
		return "code_space_exhausted"
	case errors.Is(err, repository.ErrIdentifierConflict):
		return "identifier_conflict"
	default:
		return "storage_unavailable"
	}
}
