package activity

import (
	"rhplus/internal/domain"
	"rhplus/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
) {
	activities := r.Group("/activities")
	activities.Use(auth)
	{
		activities.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceActivity, domain.ActionRead), handler.GetRecent)
	}
}
