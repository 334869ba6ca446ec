package controller

import (
	"errors"
	"net/http"

	"github.com/SeakMengs/MaintCert/internal/auth"
	"github.com/SeakMengs/MaintCert/internal/repository"
	"github.com/SeakMengs/MaintCert/internal/util"
	"github.com/gin-gonic/gin"
)

const ErrInvalidCredentials = "invalid username or password"

type AuthController struct {
	*baseController
}

func (ac AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Username string `json:"username" form:"username" binding:"required,strNotEmpty,cmax=50"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.Authenticate(ctx, nil, body.Username, body.Password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ac.app.Logger.Infof("Failed login for username: %s", body.Username)
			util.ResponseFailed(ctx, http.StatusUnauthorized, "Usuario o contraseña incorrectos", util.GenerateErrorMessages(errors.New(ErrInvalidCredentials), "credentials"), nil)
			return
		}
		ac.app.Logger.Errorf("Login lookup failed: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", nil, nil)
		return
	}

	accessToken, err := ac.app.JWTService.GenerateAccessToken(auth.JWTPayload{
		ID:       user.ID,
		Username: user.Username,
		Nombre:   user.Nombre,
		Role:     user.Rol,
	})
	if err != nil {
		ac.app.Logger.Errorf("Failed to generate access token: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate access token", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"accessToken": *accessToken,
		"tokenType":   "Bearer",
		"user":        user,
	})
}

// Keep in mind that verify jwt token does not check database
func (ac AuthController) VerifyJwtAccessToken(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), gin.H{
			"tokenValid": false,
		})
		return
	}

	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), gin.H{
			"tokenValid": false,
		})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"tokenValid": true,
		"payload":    jwtClaims,
	})
}
