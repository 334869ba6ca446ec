package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"github.com/SeakMengs/MaintCert/internal/repository"
	"github.com/SeakMengs/MaintCert/internal/util"
	"github.com/SeakMengs/MaintCert/pkg/maintcert"
	"github.com/gin-gonic/gin"
)

const (
	ErrCertificateNotFound  = "certificate not found"
	ErrCertificateNotIssued = "certificate is not issued yet"
	dateLayout              = "2006-01-02"
)

type CertificateController struct {
	*baseController
}

type CreateCertificateRequest struct {
	Tipo                   constant.CertificateType `json:"tipo" form:"tipo" binding:"required,certtype"`
	ClienteID              uint                     `json:"cliente_id" form:"cliente_id" binding:"required,gte=1"`
	InstalacionID          uint                     `json:"instalacion_id" form:"instalacion_id" binding:"required,gte=1"`
	TecnicoID              uint                     `json:"tecnico_id" form:"tecnico_id" binding:"required,gte=1"`
	FechaMantenimiento     string                   `json:"fecha_mantenimiento" form:"fecha_mantenimiento" binding:"required,datetime=2006-01-02"`
	FechaEmision           string                   `json:"fecha_emision" form:"fecha_emision" binding:"omitempty,datetime=2006-01-02"`
	SolicitudesCliente     string                   `json:"solicitudes_cliente" form:"solicitudes_cliente" binding:"omitempty,cmax=5000"`
	ObservacionesGenerales string                   `json:"observaciones_generales" form:"observaciones_generales" binding:"omitempty,cmax=5000"`
	ChecklistData          json.RawMessage          `json:"checklist_data" form:"-"`
	// Empty issues the certificate right away, pendiente leaves it for administrative approval
	Estado constant.CertificateStatus `json:"estado" form:"estado" binding:"omitempty,oneof=emitido pendiente"`
}

func (r CreateCertificateRequest) toInput() (repository.CreateCertificateInput, error) {
	maintainedAt, err := time.Parse(dateLayout, r.FechaMantenimiento)
	if err != nil {
		return repository.CreateCertificateInput{}, err
	}

	var issuedAt time.Time
	if r.FechaEmision != "" {
		if issuedAt, err = time.Parse(dateLayout, r.FechaEmision); err != nil {
			return repository.CreateCertificateInput{}, err
		}
	}

	return repository.CreateCertificateInput{
		Tipo:                   r.Tipo,
		ClienteID:              r.ClienteID,
		InstalacionID:          r.InstalacionID,
		TecnicoID:              r.TecnicoID,
		FechaMantenimiento:     maintainedAt,
		FechaEmision:           issuedAt,
		SolicitudesCliente:     r.SolicitudesCliente,
		ObservacionesGenerales: r.ObservacionesGenerales,
		ChecklistData:          r.ChecklistData,
		Estado:                 r.Estado,
	}, nil
}

func (cc CertificateController) CreateCertificate(ctx *gin.Context) {
	var body CreateCertificateRequest

	user, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	in, err := body.toInput()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, "fecha"), nil)
		return
	}

	cc.app.Logger.Debugf("User %d (%s) creates a %s certificate", user.ID, user.Role, in.Tipo)

	certificate, err := cc.app.Issuance.Create(ctx, in)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid certificate data", util.GenerateErrorMessages(err, "certificate"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create certificate", nil, nil)
		return
	}

	util.ResponseCreated(ctx, gin.H{
		"certificate": certificate,
	})
}

func (cc CertificateController) GetCertificateById(ctx *gin.Context) {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid certificate id", util.GenerateErrorMessages(err, "id"), nil)
		return
	}

	certificate, err := cc.app.Repository.Certificate.GetById(ctx, nil, id)
	cc.respondDetail(ctx, certificate, err)
}

func (cc CertificateController) GetCertificateByNumber(ctx *gin.Context) {
	certificate, err := cc.app.Repository.Certificate.GetByNumber(ctx, nil, ctx.Param("numero"))
	cc.respondDetail(ctx, certificate, err)
}

func (cc CertificateController) respondDetail(ctx *gin.Context, certificate *repository.CertificateDetail, err error) {
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), "notFound"), nil)
			return
		}
		cc.app.Logger.Errorf("Failed to get certificate: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificate": certificate,
	})
}

type GetCertificatesRequest struct {
	Page     uint                       `json:"page" form:"page" binding:"omitempty"`
	PageSize uint                       `json:"pageSize" form:"pageSize" binding:"omitempty"`
	Tipo     constant.CertificateType   `json:"tipo" form:"tipo" binding:"omitempty,certtype"`
	Estado   constant.CertificateStatus `json:"estado" form:"estado" binding:"omitempty,certstatus"`
	Desde    string                     `json:"desde" form:"desde" binding:"omitempty,datetime=2006-01-02"`
	Hasta    string                     `json:"hasta" form:"hasta" binding:"omitempty,datetime=2006-01-02"`
}

func (cc CertificateController) GetCertificateList(ctx *gin.Context) {
	var params GetCertificatesRequest

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	filter := repository.CertificateFilter{Tipo: params.Tipo, Estado: params.Estado}
	// already validated by the binding
	filter.Desde, _ = time.Parse(dateLayout, params.Desde)
	filter.Hasta, _ = time.Parse(dateLayout, params.Hasta)

	certificates, totalCount, err := cc.app.Repository.Certificate.List(ctx, nil, filter, params.Page, params.PageSize)
	if err != nil {
		cc.app.Logger.Errorf("Failed to list certificates: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate list", nil, nil)
		return
	}

	if len(certificates) == 0 {
		certificates = []model.Certificate{}
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":        totalCount,
		"certificates": certificates,
		"page":         params.Page,
		"pageSize":     params.PageSize,
		"totalPage":    util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

func (cc CertificateController) UpdateCertificateStatus(ctx *gin.Context) {
	type Request struct {
		Estado constant.CertificateStatus `json:"estado" form:"estado" binding:"required,certstatus"`
	}
	var body Request

	id, err := parseIdParam(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid certificate id", util.GenerateErrorMessages(err, "id"), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	certificate, err := cc.app.Repository.Certificate.UpdateStatus(ctx, nil, id, body.Estado)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidTransition):
			util.ResponseFailed(ctx, http.StatusConflict, "Status change not allowed", util.GenerateErrorMessages(err, "estado"), nil)
		case errors.Is(err, repository.ErrNotFound):
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), "notFound"), nil)
		default:
			cc.app.Logger.Errorf("Failed to update certificate %d status: %v", id, err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update certificate status", nil, nil)
		}
		return
	}

	cc.app.Logger.Infof("Certificate %s moved to %s", certificate.NumeroCertificado, certificate.Estado)

	util.ResponseSuccess(ctx, gin.H{
		"certificate": certificate,
	})
}

// Serve a PNG QR code pointing at the public validation page of an issued certificate
func (cc CertificateController) GetCertificateQRCode(ctx *gin.Context) {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid certificate id", util.GenerateErrorMessages(err, "id"), nil)
		return
	}

	certificate, err := cc.app.Repository.Certificate.GetById(ctx, nil, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate", nil, nil)
		return
	}

	if certificate.Estado != constant.CertificateStatusIssued {
		util.ResponseFailed(ctx, http.StatusConflict, "Certificate is not issued", util.GenerateErrorMessages(errors.New(ErrCertificateNotIssued), "estado"), nil)
		return
	}

	certCfg := cc.app.Config.Certificate
	png, err := maintcert.GenerateValidationQRCode(certCfg.ValidationURLPattern, certificate.CodigoValidacion, certCfg.QRCodeSize)
	if err != nil {
		cc.app.Logger.Errorf("Failed to encode qr code for certificate %d: %v", id, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate qr code", nil, nil)
		return
	}

	ctx.Header("Cache-Control", "private, max-age=3600")
	ctx.Data(http.StatusOK, "image/png", png)
}
