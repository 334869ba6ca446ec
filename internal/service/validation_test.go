package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SeakMengs/MaintCert/internal/config"
	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/metrics"
	"github.com/SeakMengs/MaintCert/internal/model"
	"github.com/SeakMengs/MaintCert/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeFinder struct {
	calls   int
	lastArg string
	detail  *repository.CertificateDetail
	err     error
}

func (f *fakeFinder) FindByValidationCode(_ context.Context, _ *gorm.DB, code string) (*repository.CertificateDetail, error) {
	f.calls++
	f.lastArg = code
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil || f.detail.CodigoValidacion != code {
		return nil, repository.ErrNotFound
	}
	return f.detail, nil
}

func sampleDetail() *repository.CertificateDetail {
	return &repository.CertificateDetail{
		Certificate: model.Certificate{
			BaseModel:              model.BaseModel{ID: 41},
			NumeroCertificado:      "CCTV-001-11-2025",
			CodigoValidacion:       "ABCD2345EF",
			Tipo:                   constant.CertificateTypeCCTV,
			Estado:                 constant.CertificateStatusIssued,
			FechaMantenimiento:     time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC),
			FechaEmision:           time.Date(2025, time.November, 14, 0, 0, 0, 0, time.UTC),
			SolicitudesCliente:     " Revisar cámara ",
			ObservacionesGenerales: "Sin novedades",
			ChecklistData:          datatypes.JSON(`{"checklist":[{"item":"Limpieza"}],"equipos":[{"modelo":"DVR"}]}`),
			ClienteID:              7,
			InstalacionID:          8,
			TecnicoID:              9,
			Cliente:                model.Client{BaseModel: model.BaseModel{ID: 7}, Nombre: "Juan Pérez", Rut: "12345678-9", Contacto: "Juan"},
			Instalacion:            model.Installation{BaseModel: model.BaseModel{ID: 8}, Nombre: "Sucursal Centro", Direccion: "Calle Falsa 123", ClienteID: 7},
			Tecnico:                model.Technician{BaseModel: model.BaseModel{ID: 9}, Nombre: "Pedro Soto", Especialidad: "CCTV"},
		},
		Empresa: model.Company{BaseModel: model.BaseModel{ID: 1}, Nombre: "Servicios Integrales SpA", Rut: "76123456-7"},
	}
}

func newTestService(finder CertificateFinder) *ValidationService {
	return NewValidationService(finder, metrics.New(prometheus.NewRegistry()), zap.NewNop().Sugar())
}

func TestValidateInvalidFormatSkipsStorage(t *testing.T) {
	finder := &fakeFinder{detail: sampleDetail()}
	s := newTestService(finder)

	for _, raw := range []string{"", "   ", "short", "way-too-long-code", "ABCD-345EF", "ÁBCD2345EF"} {
		view, err := s.Validate(context.Background(), raw)
		assert.Nil(t, view)
		assert.True(t, errors.Is(err, ErrInvalidFormat), "Validate(%q) = %v", raw, err)
	}

	assert.Zero(t, finder.calls)
}

func TestValidateNormalizesInput(t *testing.T) {
	finder := &fakeFinder{detail: sampleDetail()}
	s := newTestService(finder)

	view, err := s.Validate(context.Background(), "  abcd2345ef\n")
	require.NoError(t, err)

	assert.Equal(t, "ABCD2345EF", finder.lastArg)
	assert.Equal(t, "CCTV-001-11-2025", view.NumeroCertificado)
	assert.Equal(t, "Mantenimiento de Sistema CCTV", view.TipoMantenimiento)
	assert.Equal(t, "cctv", view.TipoCodigo)
	assert.Equal(t, "2025-11-10", view.FechaMantenimiento)
	assert.Equal(t, "2025-11-14", view.FechaEmision)
	assert.Equal(t, "Juan Pérez", view.Cliente.Nombre)
	assert.Equal(t, "Revisar cámara", view.Detalles.SolicitudesCliente)
	assert.JSONEq(t, `[{"modelo":"DVR"}]`, string(view.Detalles.Equipos))
	assert.JSONEq(t, `[]`, string(view.Detalles.Evidencias))
}

func TestValidateNotFoundIsUniform(t *testing.T) {
	pending := sampleDetail()
	pending.Estado = constant.CertificateStatusPending

	tests := []struct {
		name   string
		finder *fakeFinder
		code   string
	}{
		{"unknown code", &fakeFinder{}, "ZZZZ0000ZZ"},
		{"finder leaks a pending certificate", &fakeFinder{detail: pending}, "ABCD2345EF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := newTestService(tt.finder).Validate(context.Background(), tt.code)
			assert.Nil(t, view)
			assert.Equal(t, ErrNotFound, err)
		})
	}
}

func TestValidateStorageUnavailable(t *testing.T) {
	tests := []error{
		errors.New("dial tcp: connection refused"),
		context.DeadlineExceeded,
		repository.ErrStorageUnavailable,
	}

	for _, finderErr := range tests {
		s := newTestService(&fakeFinder{err: finderErr})
		_, err := s.Validate(context.Background(), "ABCD2345EF")
		assert.True(t, errors.Is(err, ErrStorageUnavailable), "got %v", err)
		assert.False(t, errors.Is(err, ErrNotFound))
	}
}

func collectKeys(v any, keys map[string]bool) {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			keys[k] = true
			collectKeys(child, keys)
		}
	case []any:
		for _, child := range node {
			collectKeys(child, keys)
		}
	}
}

func TestCertificateViewIsSanitized(t *testing.T) {
	view := NewCertificateView(sampleDetail())

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	delete(decoded, "detalles")

	keys := map[string]bool{}
	collectKeys(decoded, keys)

	for key := range keys {
		assert.False(t, key == "id" || strings.HasSuffix(key, "_id") || strings.HasSuffix(key, "Id"), "internal id leaked: %s", key)
	}
	assert.NotContains(t, string(raw), "12345678-9", "client rut leaked")
	assert.NotContains(t, string(raw), "76123456-7", "company rut leaked")
	assert.False(t, keys["rut"], "rut is not part of the public view")
	assert.NotContains(t, string(raw), "checklist_data")
	assert.NotContains(t, string(raw), "created_at")
}

// Full path against a real store
func TestValidateEndToEnd(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDb, err := db.DB()
	require.NoError(t, err)
	sqlDb.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDb.Close() })
	require.NoError(t, db.AutoMigrate(model.MigrateModels...))

	ctx := context.Background()
	repo := repository.NewRepository(db, zap.NewNop().Sugar(), config.CertificateConfig{MaxCodeAttempts: 10, MaxCreateAttempts: 3})

	client, err := repo.Client.Create(ctx, nil, &model.Client{Nombre: "Juan Pérez"})
	require.NoError(t, err)
	installation, err := repo.Installation.Create(ctx, nil, &model.Installation{Nombre: "Sucursal Centro", ClienteID: client.ID})
	require.NoError(t, err)
	technician, err := repo.Technician.Create(ctx, nil, &model.Technician{Nombre: "Pedro Soto"})
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	issuance := NewIssuanceService(repo.Certificate, m, zap.NewNop().Sugar())
	created, err := issuance.Create(ctx, repository.CreateCertificateInput{
		Tipo:               constant.CertificateTypeCCTV,
		ClienteID:          client.ID,
		InstalacionID:      installation.ID,
		TecnicoID:          technician.ID,
		FechaMantenimiento: time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC),
		FechaEmision:       time.Date(2025, time.November, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "CCTV-001-11-2025", created.NumeroCertificado)

	s := NewValidationService(repo.Certificate, m, zap.NewNop().Sugar())

	view, err := s.Validate(ctx, strings.ToLower(created.CodigoValidacion))
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", view.Cliente.Nombre)
	assert.Equal(t, created.CodigoValidacion, view.CodigoValidacion)
	assert.Equal(t, "emitido", view.Estado)
	// Company record is missing, fields come back empty
	assert.Empty(t, view.Empresa.Nombre)

	_, err = s.Validate(ctx, "ZZZZ0000ZZ")
	assert.Equal(t, ErrNotFound, err)
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{repository.ErrInvalidInput, "invalid_input"},
		{repository.ErrIdentifierConflict, "identifier_conflict"},
		{errors.Join(errors.New("x"), repository.ErrStorageUnavailable), "storage_unavailable"},
	}

	for _, tt := range tests {
		if got := FailureReason(tt.err); got != tt.want {
			t.Errorf("FailureReason(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
