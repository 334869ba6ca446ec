package middleware

import (
	"net/http"

	"github.com/SeakMengs/MaintCert/internal/auth"
	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/util"
	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	ctx.Set(userContextKey, claim.User)
	ctx.Next()
}

// RequireRole must run after AuthMiddleware
func (m Middleware) RequireRole(roles ...constant.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "", nil, nil)
			return
		}

		if !util.HasRole(user.Role, roles...) {
			m.app.Logger.Debugf("User %d with role %s denied, requires one of %v", user.ID, user.Role, roles)
			util.ResponseFailed(ctx, http.StatusForbidden, "You do not have permission to perform this action", nil, nil)
			return
		}

		ctx.Next()
	}
}

// CurrentUser returns the identity set by AuthMiddleware
func CurrentUser(ctx *gin.Context) (auth.JWTPayload, bool) {
	v, ok := ctx.Get(userContextKey)
	if !ok {
		return auth.JWTPayload{}, false
	}

	user, ok := v.(auth.JWTPayload)
	return user, ok
}
