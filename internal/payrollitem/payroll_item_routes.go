package payrollitem

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
	read := middleware.RBACAuthorize(rbacService, domain.ResourcePayrollItem, domain.ActionRead)

	items := r.Group("/payroll-items")
	items.Use(auth)
	{
		items.GET("", read, handler.GetAll)
		items.GET("/by-type", read, handler.GetByType)
		items.GET("/:id", read, handler.GetByID)
		items.POST("", middleware.RBACAuthorize(rbacService, domain.ResourcePayrollItem, domain.ActionCreate), handler.Create)
		items.PUT("/:id", middleware.RBACAuthorize(rbacService, domain.ResourcePayrollItem, domain.ActionUpdate), handler.Update)
		items.POST("/:id/deactivate", middleware.RBACAuthorize(rbacService, domain.ResourcePayrollItem, domain.ActionUpdate), handler.Deactivate)
		items.DELETE("/:id", middleware.RBACAuthorize(rbacService, domain.ResourcePayrollItem, domain.ActionDelete), handler.Delete)
	}
}
