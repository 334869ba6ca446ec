package repository

import (
	"github.com/SeakMengs/MaintCert/internal/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB                  *gorm.DB
	User                *UserRepository
	Company             *CompanyRepository
	Client              *ClientRepository
	Installation        *InstallationRepository
	Technician          *TechnicianRepository
	CertificateSequence *CertificateSequenceRepository
	Certificate         *CertificateRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, certCfg config.CertificateConfig) *Repository {
	br := newBaseRepository(db, logger)
	_company := &CompanyRepository{baseRepository: br}
	_client := &ClientRepository{baseRepository: br}
	_installation := &InstallationRepository{baseRepository: br}
	_technician := &TechnicianRepository{baseRepository: br}
	_sequence := &CertificateSequenceRepository{baseRepository: br}

	return &Repository{
		DB:                  db,
		User:                &UserRepository{baseRepository: br},
		Company:             _company,
		Client:              _client,
		Installation:        _installation,
		Technician:          _technician,
		CertificateSequence: _sequence,
		Certificate: &CertificateRepository{
			baseRepository:    br,
			company:           _company,
			client:            _client,
			installation:      _installation,
			technician:        _technician,
			sequence:          _sequence,
			maxCodeAttempts:   certCfg.MaxCodeAttempts,
			maxCreateAttempts: max(certCfg.MaxCreateAttempts, 1),
			maxNumberSkips:    max(certCfg.MaxNumberSkips, 0),
		},
	}
}

// Docs: https://gorm.io/docs/transactions.html
// When db is already a transaction, gorm runs fn inside a savepoint
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Debugf("withTx transaction rolled back: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
