package controller

import (
	"errors"
	"strconv"

	appcontext "github.com/SeakMengs/MaintCert/internal/app_context"
	"github.com/SeakMengs/MaintCert/internal/auth"
	"github.com/SeakMengs/MaintCert/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	ErrIdRequired = "id must be a positive integer"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index       *IndexController
	Auth        *AuthController
	User        *UserController
	Validation  *ValidationController
	Certificate *CertificateController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:       &IndexController{baseController: bc},
		Auth:        &AuthController{baseController: bc},
		User:        &UserController{baseController: bc},
		Validation:  &ValidationController{baseController: bc},
		Certificate: &CertificateController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	return &user, nil
}

func parseIdParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New(ErrIdRequired)
	}

	return uint(id), nil
}
