package util

import (
	"net/http"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Public validation envelope. Certificate is always present, null when the code is not valid
type ValidationResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Certificate any    `json:"certificate"`
}

func BuildResponseSuccess(data any) Response {
	return Response{
		Success: true,
		Message: constant.REQUEST_SUCCESSFUL,
		Data:    data,
	}
}

func ResponseSuccess(ctx *gin.Context, data any) {
	if data == nil {
		data = gin.H{}
	}

	ctx.JSON(http.StatusOK, BuildResponseSuccess(data))
	ctx.Abort()
}

func ResponseCreated(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusCreated, BuildResponseSuccess(data))
	ctx.Abort()
}

func BuildResponseFailed(message string, err any, data any) Response {
	if message == "" {
		message = constant.REQUEST_UNSUCCESSFUL
	}

	if e, ok := err.(error); ok {
		err = GenerateErrorMessages(e)
	}

	if err == nil {
		err = gin.H{}
	}

	if data == nil {
		data = gin.H{}
	}

	return Response{
		Success: false,
		Message: message,
		Errors:  err,
		Data:    data,
	}
}

func ResponseFailed(ctx *gin.Context, code int, message string, err any, data any) {
	ctx.JSON(code, BuildResponseFailed(message, err, data))
	ctx.Abort()
}

func ResponseValidation(ctx *gin.Context, code int, message string, certificate any) {
	ctx.JSON(code, ValidationResponse{
		Success:     certificate != nil,
		Message:     message,
		Certificate: certificate,
	})
	ctx.Abort()
}
