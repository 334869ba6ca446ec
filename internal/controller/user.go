package controller

import (
	"errors"
	"net/http"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"github.com/SeakMengs/MaintCert/internal/repository"
	"github.com/SeakMengs/MaintCert/internal/util"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	*baseController
}

func (uc UserController) GetMe(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

// Admin only. Creates technician or admin accounts
func (uc UserController) RegisterUser(ctx *gin.Context) {
	type Request struct {
		Username string            `json:"username" form:"username" binding:"required,strNotEmpty,cmin=3,cmax=50"`
		Password string            `json:"password" form:"password" binding:"required,min=8,max=72"`
		Nombre   string            `json:"nombre" form:"nombre" binding:"required,strNotEmpty,cmin=2,cmax=100"`
		Email    string            `json:"email" form:"email" binding:"required,email"`
		Rol      constant.UserRole `json:"rol" form:"rol" binding:"required,oneof=admin tecnico"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.Create(ctx, nil, model.User{
		Username: body.Username,
		Nombre:   body.Nombre,
		Email:    body.Email,
		Rol:      body.Rol,
	}, body.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create user", util.GenerateErrorMessages(err, "username"), nil)
			return
		}
		uc.app.Logger.Errorf("Failed to create user: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create user", nil, nil)
		return
	}

	util.ResponseCreated(ctx, gin.H{
		"user": user,
	})
}
