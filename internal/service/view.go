package service

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/SeakMengs/MaintCert/internal/repository"
	"github.com/SeakMengs/MaintCert/pkg/maintcert"
)

const dateLayout = "2006-01-02"

// CertificateView is the only shape the public validation path returns.
// Internal ids and anything not listed here never leave the server.
type CertificateView struct {
	NumeroCertificado  string         `json:"numero_certificado"`
	CodigoValidacion   string         `json:"codigo_validacion"`
	TipoMantenimiento  string         `json:"tipo_mantenimiento"`
	TipoCodigo         string         `json:"tipo_codigo"`
	FechaMantenimiento string         `json:"fecha_mantenimiento"`
	FechaEmision       string         `json:"fecha_emision"`
	Estado             string         `json:"estado"`
	Cliente            ClientView     `json:"cliente"`
	Instalacion        PlaceView      `json:"instalacion"`
	Tecnico            TechnicianView `json:"tecnico"`
	Empresa            CompanyView    `json:"empresa"`
	Detalles           DetailsView    `json:"detalles"`
}

type ClientView struct {
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

type PlaceView struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

type TechnicianView struct {
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad"`
}

type CompanyView struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

type DetailsView struct {
	SolicitudesCliente string          `json:"solicitudes_cliente"`
	Observaciones      string          `json:"observaciones"`
	Checklist          json.RawMessage `json:"checklist"`
	Equipos            json.RawMessage `json:"equipos"`
	Evidencias         json.RawMessage `json:"evidencias"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func NewCertificateView(d *repository.CertificateDetail) *CertificateView {
	clean := strings.TrimSpace
	checklist := maintcert.ParseChecklistData(d.ChecklistData)

	return &CertificateView{
		NumeroCertificado:  clean(d.NumeroCertificado),
		CodigoValidacion:   clean(d.CodigoValidacion),
		TipoMantenimiento:  d.Tipo.Label(),
		TipoCodigo:         clean(string(d.Tipo)),
		FechaMantenimiento: formatDate(d.FechaMantenimiento),
		FechaEmision:       formatDate(d.FechaEmision),
		Estado:             clean(string(d.Estado)),
		Cliente: ClientView{
			Nombre:   clean(d.Cliente.Nombre),
			Contacto: clean(d.Cliente.Contacto),
			Telefono: clean(d.Cliente.Telefono),
			Email:    clean(d.Cliente.Email),
		},
		Instalacion: PlaceView{
			Nombre:    clean(d.Instalacion.Nombre),
			Direccion: clean(d.Instalacion.Direccion),
		},
		Tecnico: TechnicianView{
			Nombre:       clean(d.Tecnico.Nombre),
			Especialidad: clean(d.Tecnico.Especialidad),
		},
		Empresa: CompanyView{
			Nombre:    clean(d.Empresa.Nombre),
			Direccion: clean(d.Empresa.Direccion),
			Telefono:  clean(d.Empresa.Telefono),
			Email:     clean(d.Empresa.Email),
		},
		Detalles: DetailsView{
			SolicitudesCliente: clean(d.SolicitudesCliente),
			Observaciones:      clean(d.ObservacionesGenerales),
			Checklist:          checklist.Checklist,
			Equipos:            checklist.Equipos,
			Evidencias:         checklist.Evidencias,
		},
	}
}
