package service

import (
	"context"
	"errors"
	"fmt"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/metrics"
	"github.com/SeakMengs/MaintCert/internal/repository"
	"github.com/SeakMengs/MaintCert/pkg/maintcert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidFormat = maintcert.ErrInvalidFormat
	// Unknown codes and codes of non issued certificates are reported the same way
	ErrNotFound           = errors.New("certificate not found")
	ErrStorageUnavailable = repository.ErrStorageUnavailable
)

type CertificateFinder interface {
	FindByValidationCode(ctx context.Context, tx *gorm.DB, code string) (*repository.CertificateDetail, error)
}

// ValidationService answers anonymous "is this certificate genuine" questions. It only reads.
type ValidationService struct {
	finder  CertificateFinder
	metrics *metrics.Metrics
	logger  *zap.SugaredLogger
}

func NewValidationService(finder CertificateFinder, m *metrics.Metrics, logger *zap.SugaredLogger) *ValidationService {
	return &ValidationService{finder: finder, metrics: m, logger: logger}
}

// Validate returns ErrInvalidFormat before touching storage when the input is not shaped like a code,
// ErrNotFound when no issued certificate carries it and ErrStorageUnavailable when the lookup fails.
func (s *ValidationService) Validate(ctx context.Context, rawCode string) (*CertificateView, error) {
	code, err := maintcert.ParseCode(rawCode)
	if err != nil {
		s.logger.Infow("Rejected malformed validation code", "outcome", metrics.OutcomeInvalidFormat, "length", len(rawCode))
		s.metrics.ObserveValidation(metrics.OutcomeInvalidFormat)
		return nil, ErrInvalidFormat
	}

	detail, err := s.finder.FindByValidationCode(ctx, nil, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.notFound(code)
		}

		s.logger.Errorw("Validation lookup failed", "outcome", metrics.OutcomeStorageUnavailable, "code", code, "error", err)
		s.metrics.ObserveValidation(metrics.OutcomeStorageUnavailable)
		if errors.Is(err, ErrStorageUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if detail.Estado != constant.CertificateStatusIssued {
		return nil, s.notFound(code)
	}

	s.logger.Debugw("Certificate validated", "outcome", metrics.OutcomeValid, "numero", detail.NumeroCertificado)
	s.metrics.ObserveValidation(metrics.OutcomeValid)

	return NewCertificateView(detail), nil
}

func (s *ValidationService) notFound(code string) error {
	s.logger.Warnw("Validation code not found", "outcome", metrics.OutcomeNotFound, "code", code)
	s.metrics.ObserveValidation(metrics.OutcomeNotFound)
	return ErrNotFound
}
