package route

import (
	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/controller"
	"github.com/SeakMengs/MaintCert/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Certificates(r *gin.RouterGroup, cc *controller.CertificateController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/certificates")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cc.GetCertificateList)
		v1.POST("", middleware.RequireRole(constant.UserRoleAdmin, constant.UserRoleTechnician), cc.CreateCertificate)
		v1.GET("/:id", cc.GetCertificateById)
		v1.GET("/:id/qrcode", cc.GetCertificateQRCode)
		v1.PATCH("/:id/status", middleware.RequireRole(constant.UserRoleAdmin), cc.UpdateCertificateStatus)
		v1.GET("/number/:numero", cc.GetCertificateByNumber)
	}
}
