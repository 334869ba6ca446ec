package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"github.com/SeakMengs/MaintCert/internal/util"
	"github.com/SeakMengs/MaintCert/pkg/maintcert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CertificateRepository struct {
	*baseRepository
	company      *CompanyRepository
	client       *ClientRepository
	installation *InstallationRepository
	technician   *TechnicianRepository
	sequence     *CertificateSequenceRepository

	maxCodeAttempts   int
	maxCreateAttempts int
	maxNumberSkips    int

	// nil means CodeExists on the creation transaction
	newCodeChecker func(tx *gorm.DB) maintcert.CodeChecker
}

// CertificateDetail is a certificate joined with every entity needed to present it
type CertificateDetail struct {
	model.Certificate
	Empresa model.Company `json:"empresa"`
}

// Input of the issuance workflow. Number and validation code are never caller supplied
type CreateCertificateInput struct {
	Tipo                   constant.CertificateType
	ClienteID              uint
	InstalacionID          uint
	TecnicoID              uint
	FechaMantenimiento     time.Time
	SolicitudesCliente     string
	ObservacionesGenerales string
	ChecklistData          []byte

	// Empty means emitido. Pending certificates wait for an administrative approval
	Estado constant.CertificateStatus
	// Zero means now. Month and year of the certificate number come from this date
	FechaEmision time.Time
}

func (in CreateCertificateInput) validate() error {
	var problems []string

	if !in.Tipo.IsValid() {
		problems = append(problems, fmt.Sprintf("tipo %q is not one of cctv, hardware, racks", in.Tipo))
	}
	if in.ClienteID == 0 {
		problems = append(problems, "cliente_id is required")
	}
	if in.InstalacionID == 0 {
		problems = append(problems, "instalacion_id is required")
	}
	if in.TecnicoID == 0 {
		problems = append(problems, "tecnico_id is required")
	}
	if in.FechaMantenimiento.IsZero() {
		problems = append(problems, "fecha_mantenimiento is required")
	}
	if in.Estado != "" && in.Estado != constant.CertificateStatusIssued && in.Estado != constant.CertificateStatusPending {
		problems = append(problems, fmt.Sprintf("estado %q is not allowed at creation", in.Estado))
	}
	if len(in.ChecklistData) > 0 && !json.Valid(in.ChecklistData) {
		problems = append(problems, "checklist_data must be valid json")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}

	return nil
}

// Create validates the input, then inside one transaction allocates the next number for the period,
// draws a validation code absent from the store and inserts the record with both identifiers.
// Unique constraints back the whole thing up: a conflict replays the transaction a bounded number of times.
func (cr CertificateRepository) Create(ctx context.Context, tx *gorm.DB, in CreateCertificateInput) (*model.Certificate, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	issuedAt := in.FechaEmision
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	estado := in.Estado
	if estado == "" {
		estado = constant.CertificateStatusIssued
	}

	cr.logger.Debugf("Create certificate type: %s, client: %d, installation: %d", in.Tipo, in.ClienteID, in.InstalacionID)

	for attempt := 1; attempt <= cr.maxCreateAttempts; attempt++ {
		var created *model.Certificate
		err := cr.withTx(cr.getDB(tx), func(tx *gorm.DB) error {
			c, err := cr.createOnce(ctx, tx, in, estado, issuedAt)
			created = c
			return err
		})
		if err == nil {
			return created, nil
		}

		if !isDuplicateKey(err) {
			return nil, classifyError(err)
		}

		cr.logger.Warnf("Certificate identifier conflict on attempt %d/%d: %v", attempt, cr.maxCreateAttempts, err)
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrIdentifierConflict, cr.maxCreateAttempts)
}

func (cr CertificateRepository) createOnce(ctx context.Context, tx *gorm.DB, in CreateCertificateInput, estado constant.CertificateStatus, issuedAt time.Time) (*model.Certificate, error) {
	if err := cr.checkReferences(ctx, tx, in); err != nil {
		return nil, err
	}

	numero, err := cr.nextFreeNumber(ctx, tx, in.Tipo, issuedAt)
	if err != nil {
		return nil, err
	}

	generator := maintcert.NewCodeGenerator(cr.codeChecker(tx), cr.maxCodeAttempts)

	code, err := generator.Generate(ctx)
	if err != nil {
		return nil, err
	}

	checklist := in.ChecklistData
	if len(checklist) == 0 {
		checklist = []byte("{}")
	}

	certificate := &model.Certificate{
		NumeroCertificado:      numero,
		CodigoValidacion:       code,
		Tipo:                   in.Tipo,
		Estado:                 estado,
		FechaMantenimiento:     in.FechaMantenimiento,
		FechaEmision:           issuedAt,
		SolicitudesCliente:     strings.TrimSpace(in.SolicitudesCliente),
		ObservacionesGenerales: strings.TrimSpace(in.ObservacionesGenerales),
		ChecklistData:          datatypes.JSON(checklist),
		ClienteID:              in.ClienteID,
		InstalacionID:          in.InstalacionID,
		TecnicoID:              in.TecnicoID,
	}

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := tx.WithContext(ctx).Omit(clause.Associations).Create(certificate).Error; err != nil {
		return nil, err
	}

	return certificate, nil
}

// nextFreeNumber advances the period counter past numbers already held by a certificate,
// e.g. rows imported before the counter existed. Replaying the transaction would rebuild the same number.
func (cr CertificateRepository) nextFreeNumber(ctx context.Context, tx *gorm.DB, tipo constant.CertificateType, at time.Time) (string, error) {
	for skipped := 0; ; skipped++ {
		seq, err := cr.sequence.Next(ctx, tx, tipo, at)
		if err != nil {
			return "", err
		}

		numero := FormatCertificateNumber(tipo, seq, at)
		taken, err := cr.numberTaken(ctx, tx, numero)
		if err != nil {
			return "", err
		}
		if !taken {
			return numero, nil
		}

		if skipped >= cr.maxNumberSkips {
			return "", fmt.Errorf("%w: %s and %d previous numbers already exist", ErrIdentifierConflict, numero, skipped)
		}
		cr.logger.Warnf("Certificate number %s already exists, skipping it", numero)
	}
}

func (cr CertificateRepository) numberTaken(ctx context.Context, tx *gorm.DB, numero string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := tx.WithContext(ctx).Model(&model.Certificate{}).Where("numero_certificado = ?", numero).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (cr CertificateRepository) codeChecker(tx *gorm.DB) maintcert.CodeChecker {
	if cr.newCodeChecker != nil {
		return cr.newCodeChecker(tx)
	}

	return maintcert.CodeCheckerFunc(func(ctx context.Context, code string) (bool, error) {
		return cr.CodeExists(ctx, tx, code)
	})
}

// References are only read here so an invalid request never reaches a write
func (cr CertificateRepository) checkReferences(ctx context.Context, tx *gorm.DB, in CreateCertificateInput) error {
	if _, err := cr.client.GetById(ctx, tx, in.ClienteID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: cliente %d does not exist", ErrInvalidInput, in.ClienteID)
		}
		return err
	}

	installation, err := cr.installation.GetById(ctx, tx, in.InstalacionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: instalacion %d does not exist", ErrInvalidInput, in.InstalacionID)
		}
		return err
	}
	if installation.ClienteID != in.ClienteID {
		return fmt.Errorf("%w: instalacion %d does not belong to cliente %d", ErrInvalidInput, in.InstalacionID, in.ClienteID)
	}

	if _, err := cr.technician.GetById(ctx, tx, in.TecnicoID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: tecnico %d does not exist", ErrInvalidInput, in.TecnicoID)
		}
		return err
	}

	return nil
}

// CodeExists checks every certificate regardless of status, codes are unique across the whole store
func (cr CertificateRepository) CodeExists(ctx context.Context, tx *gorm.DB, code string) (bool, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where("codigo_validacion = ?", code).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (cr CertificateRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.Model(&model.Certificate{}).Preload("Cliente").Preload("Instalacion").Preload("Tecnico")
}

func (cr CertificateRepository) withCompany(ctx context.Context, tx *gorm.DB, certificate model.Certificate) (*CertificateDetail, error) {
	company, err := cr.company.Get(ctx, tx)
	if err != nil {
		return nil, err
	}

	return &CertificateDetail{Certificate: certificate, Empresa: *company}, nil
}

// FindByValidationCode only matches issued certificates. No match returns ErrNotFound
func (cr CertificateRepository) FindByValidationCode(ctx context.Context, tx *gorm.DB, code string) (*CertificateDetail, error) {
	cr.logger.Debugf("Find issued certificate by validation code: %s", code)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := cr.preloaded(db.WithContext(ctx)).Where(map[string]any{
		"codigo_validacion": code,
		"estado":            constant.CertificateStatusIssued,
	}).First(&certificate).Error; err != nil {
		return nil, classifyError(err)
	}

	return cr.withCompany(ctx, tx, certificate)
}

func (cr CertificateRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*CertificateDetail, error) {
	cr.logger.Debugf("Get certificate by id: %d", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := cr.preloaded(db.WithContext(ctx)).Where("id = ?", id).First(&certificate).Error; err != nil {
		return nil, classifyError(err)
	}

	return cr.withCompany(ctx, tx, certificate)
}

func (cr CertificateRepository) GetByNumber(ctx context.Context, tx *gorm.DB, numero string) (*CertificateDetail, error) {
	cr.logger.Debugf("Get certificate by number: %s", numero)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := cr.preloaded(db.WithContext(ctx)).Where("numero_certificado = ?", strings.TrimSpace(numero)).First(&certificate).Error; err != nil {
		return nil, classifyError(err)
	}

	return cr.withCompany(ctx, tx, certificate)
}

type CertificateFilter struct {
	Tipo   constant.CertificateType
	Estado constant.CertificateStatus
	// Inclusive maintenance date range, zero values are ignored
	Desde time.Time
	Hasta time.Time
}

// Return certificates for the page and the total count, newest issue date first
func (cr CertificateRepository) List(ctx context.Context, tx *gorm.DB, filter CertificateFilter, page, pageSize uint) ([]model.Certificate, int64, error) {
	cr.logger.Debugf("List certificates with filter: %+v, page: %d, pageSize: %d", filter, page, pageSize)

	page, pageSize = util.NormalizePage(page, pageSize)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	filtered := func(db *gorm.DB) *gorm.DB {
		query := db.WithContext(ctx).Model(&model.Certificate{})
		if filter.Tipo != "" {
			query = query.Where("tipo = ?", filter.Tipo)
		}
		if filter.Estado != "" {
			query = query.Where("estado = ?", filter.Estado)
		}
		if !filter.Desde.IsZero() {
			query = query.Where("fecha_mantenimiento >= ?", filter.Desde)
		}
		if !filter.Hasta.IsZero() {
			query = query.Where("fecha_mantenimiento <= ?", filter.Hasta)
		}
		return query
	}

	var total int64
	if err := filtered(db).Count(&total).Error; err != nil {
		return nil, 0, classifyError(err)
	}

	var certificates []model.Certificate
	if err := cr.preloaded(filtered(db)).Order("fecha_emision desc").Order("id desc").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).Find(&certificates).Error; err != nil {
		return nil, 0, classifyError(err)
	}

	return certificates, total, nil
}

// UpdateStatus applies pendiente -> emitido or pendiente -> rechazado with a conditional update,
// so two concurrent approvals cannot both succeed
func (cr CertificateRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, next constant.CertificateStatus) (*model.Certificate, error) {
	cr.logger.Debugf("Update certificate %d status to %s", id, next)

	if !constant.CertificateStatusPending.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: cannot move to %q", ErrInvalidTransition, next)
	}

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Certificate{}).
		Where("id = ? AND estado = ?", id, constant.CertificateStatusPending).
		UpdateColumns(map[string]any{"estado": next, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, classifyError(result.Error)
	}

	var certificate model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where("id = ?", id).First(&certificate).Error; err != nil {
		return nil, classifyError(err)
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: certificate %d is %s", ErrInvalidTransition, id, certificate.Estado)
	}

	return &certificate, nil
}

// ListIntegrityViolations reports issued certificates whose validation code is missing or malformed.
// It only reports, such rows are data bugs to fix at the source.
func (cr CertificateRepository) ListIntegrityViolations(ctx context.Context, tx *gorm.DB) ([]model.Certificate, error) {
	cr.logger.Debug("List issued certificates with invalid validation codes")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificates []model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).
		Select("id", "numero_certificado", "codigo_validacion", "estado").
		Where("estado = ?", constant.CertificateStatusIssued).
		Order("id asc").
		Find(&certificates).Error; err != nil {
		return nil, classifyError(err)
	}

	violations := make([]model.Certificate, 0)
	for _, c := range certificates {
		if !maintcert.IsWellFormedCode(c.CodigoValidacion) {
			violations = append(violations, c)
		}
	}

	return violations, nil
}
