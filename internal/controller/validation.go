package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SeakMengs/MaintCert/internal/middleware"
	"github.com/SeakMengs/MaintCert/internal/service"
	"github.com/SeakMengs/MaintCert/internal/util"
	"github.com/gin-gonic/gin"
)

const (
	MsgCodeRequired       = "Código de validación requerido"
	MsgCodeInvalidFormat  = "El código de validación debe tener 10 caracteres alfanuméricos."
	MsgCertificateInvalid = "Código de validación no encontrado. Verifica que el código sea correcto."
	MsgCertificateValid   = "Certificado válido y verificado"
	MsgInternalError      = "Error interno del servidor"
)

type ValidationController struct {
	*baseController
}

// GET /validate?code=
func (vc ValidationController) ValidateByQuery(ctx *gin.Context) {
	vc.validate(ctx, ctx.Query("code"))
}

// POST /validate with {"codigo_validacion": "..."} as json or form
func (vc ValidationController) ValidateByBody(ctx *gin.Context) {
	type Request struct {
		CodigoValidacion string `json:"codigo_validacion" form:"codigo_validacion"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		vc.app.Logger.Debugf("Failed to bind validation request: %v", err)
		util.ResponseValidation(ctx, http.StatusBadRequest, MsgCodeRequired, nil)
		return
	}

	vc.validate(ctx, body.CodigoValidacion)
}

func (vc ValidationController) validate(ctx *gin.Context, code string) {
	if strings.TrimSpace(code) == "" {
		util.ResponseValidation(ctx, http.StatusBadRequest, MsgCodeRequired, nil)
		return
	}

	view, err := vc.app.Validation.Validate(ctx, code)
	switch {
	case err == nil:
		util.ResponseValidation(ctx, http.StatusOK, MsgCertificateValid, view)
	case errors.Is(err, service.ErrInvalidFormat):
		util.ResponseValidation(ctx, http.StatusBadRequest, MsgCodeInvalidFormat, nil)
	case errors.Is(err, service.ErrNotFound):
		util.ResponseValidation(ctx, http.StatusNotFound, MsgCertificateInvalid, nil)
	default:
		vc.app.Logger.Errorw("Validation request failed", "request_id", middleware.RequestID(ctx), "error", err)
		util.ResponseValidation(ctx, http.StatusInternalServerError, MsgInternalError, nil)
	}
}
