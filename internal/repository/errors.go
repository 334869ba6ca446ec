package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeakMengs/MaintCert/pkg/maintcert"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// Lookups return this when nothing matches, it is an expected outcome rather than a failure
	ErrNotFound = gorm.ErrRecordNotFound

	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidInput       = errors.New("invalid input")
	ErrIdentifierConflict = errors.New("certificate identifiers kept conflicting")
	ErrInvalidTransition  = errors.New("invalid certificate status transition")
)

const pgUniqueViolation = "23505"

// Known outcomes pass through, anything else becomes ErrStorageUnavailable.
// The driver error stays in the chain for server side logs
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrStorageUnavailable),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrIdentifierConflict),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, maintcert.ErrCodeSpaceExhausted):
		return err
	default:
		// timeouts land here too, context.DeadlineExceeded stays matchable
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	// sqlite reports unique violations only through the message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
