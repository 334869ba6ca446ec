package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"github.com/SeakMengs/MaintCert/pkg/maintcert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func useSqlite(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", filepath.Join(t.TempDir(), "certctl.sqlite"))
	t.Setenv("DB_MAX_OPEN_CONNS", "1")
}

func TestGenerateCode(t *testing.T) {
	out, err := run(t, "generate-code", "-n", "5")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 5)
	for _, code := range lines {
		assert.True(t, maintcert.IsCanonicalCode(code), "code %s", code)
	}

	_, err = run(t, "generate-code", "-n", "0")
	assert.Error(t, err)
}

func TestAdminWorkflow(t *testing.T) {
	useSqlite(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migration completed")

	out, err = run(t, "seed-company", "--nombre", "Servicios Integrales SpA", "--rut", "76123456-7")
	require.NoError(t, err)
	assert.Contains(t, out, "Servicios Integrales SpA")

	out, err = run(t, "create-user", "--username", "admin", "--password", "admin123", "--nombre", "Administrador", "--email", "admin@servicios.cl", "--role", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "role admin")

	_, err = run(t, "create-user", "--username", "root", "--password", "x", "--nombre", "Root", "--email", "root@servicios.cl", "--role", "superuser")
	assert.Error(t, err)

	out, err = run(t, "audit-codes")
	require.NoError(t, err)
	assert.Contains(t, out, "well formed")

	_, err = run(t, "validate", "short")
	assert.Error(t, err)

	_, err = run(t, "validate", "ZZZZ0000ZZ")
	assert.ErrorContains(t, err, "no issued certificate")
}

func seedCertificate(t *testing.T, numero, code string) {
	t.Helper()

	_, err := run(t, "migrate")
	require.NoError(t, err)

	rt, err := openRuntime()
	require.NoError(t, err)
	defer rt.Close()

	ctx := context.Background()
	client, err := rt.repo.Client.Create(ctx, nil, &model.Client{Nombre: "Juan Pérez"})
	require.NoError(t, err)
	installation, err := rt.repo.Installation.Create(ctx, nil, &model.Installation{Nombre: "Sucursal Centro", ClienteID: client.ID})
	require.NoError(t, err)
	technician, err := rt.repo.Technician.Create(ctx, nil, &model.Technician{Nombre: "Pedro Soto"})
	require.NoError(t, err)

	day := time.Date(2025, time.November, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, rt.db.Omit(clause.Associations).Create(&model.Certificate{
		NumeroCertificado:  numero,
		CodigoValidacion:   code,
		Tipo:               constant.CertificateTypeCCTV,
		Estado:             constant.CertificateStatusIssued,
		FechaMantenimiento: day,
		FechaEmision:       day,
		ClienteID:          client.ID,
		InstalacionID:      installation.ID,
		TecnicoID:          technician.ID,
	}).Error)
}

func TestAuditReportsBrokenCodes(t *testing.T) {
	useSqlite(t)
	seedCertificate(t, "CCTV-162-11-2025", "")

	out, err := run(t, "audit-codes")
	assert.True(t, errors.Is(err, errIntegrityViolations), "got %v", err)
	assert.Contains(t, out, "CCTV-162-11-2025")
}

func TestValidateCommandPrintsView(t *testing.T) {
	useSqlite(t)
	seedCertificate(t, "CCTV-001-11-2025", "ABCD2345EF")

	out, err := run(t, "validate", "abcd2345ef")
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "CCTV-001-11-2025", view["numero_certificado"])
	assert.Equal(t, "Juan Pérez", view["cliente"].(map[string]any)["nombre"])
}
