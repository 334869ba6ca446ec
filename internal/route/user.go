package route

import (
	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/controller"
	"github.com/SeakMengs/MaintCert/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Users(r *gin.RouterGroup, userController *controller.UserController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/users")
	v1.Use(middleware.AuthMiddleware, middleware.RequireRole(constant.UserRoleAdmin))
	{
		v1.POST("", userController.RegisterUser)
	}
}
