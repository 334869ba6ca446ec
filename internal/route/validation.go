package route

import (
	"github.com/SeakMengs/MaintCert/internal/controller"
	"github.com/gin-gonic/gin"
)

// Public and anonymous, the global rate limiter is the only guard
func V1_Validate(r *gin.RouterGroup, vc *controller.ValidationController) {
	v1 := r.Group("/v1/validate")
	{
		// Test endpoint with curl: curl "http://localhost:8080/api/v1/validate?code=ABCD2345EF"
		v1.GET("", vc.ValidateByQuery)
		v1.POST("", vc.ValidateByBody)
	}
}
