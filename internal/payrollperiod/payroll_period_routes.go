package payrollperiod

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
	read := middleware.RBACAuthorize(rbacService, domain.ResourcePayrollPeriod, domain.ActionRead)

	periods := r.Group("/payroll-periods")
	periods.Use(auth)
	{
		periods.GET("", read, handler.GetAll)
		periods.GET("/open", read, handler.GetOpen)
		periods.GET("/current", read, handler.GetCurrent)
		periods.GET("/:id", read, handler.GetByID)
		periods.POST("", middleware.RBACAuthorize(rbacService, domain.ResourcePayrollPeriod, domain.ActionCreate), handler.Create)
		periods.POST("/:id/close", middleware.RBACAuthorize(rbacService, domain.ResourcePayrollPeriod, domain.ActionClose), handler.Close)
		periods.DELETE("/:id", middleware.RBACAuthorize(rbacService, domain.ResourcePayrollPeriod, domain.ActionDelete), handler.Delete)
	}
}
