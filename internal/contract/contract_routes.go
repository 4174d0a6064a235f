package contract

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
	read := middleware.RBACAuthorize(rbacService, domain.ResourceContract, domain.ActionRead)
	update := middleware.RBACAuthorize(rbacService, domain.ResourceContract, domain.ActionUpdate)

	contracts := r.Group("/contracts")
	contracts.Use(auth)
	{
		contracts.GET("", read, handler.GetAll)
		contracts.GET("/by-employee", read, handler.GetByEmployee)
		contracts.GET("/current", read, handler.GetCurrent)
		contracts.GET("/:id", read, handler.GetByID)
		contracts.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceContract, domain.ActionCreate), handler.Create)
		contracts.POST("/:id/activate", update, handler.Activate)
		contracts.POST("/:id/deactivate", update, handler.Deactivate)
		contracts.DELETE("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceContract, domain.ActionDelete), handler.Delete)
	}
}
