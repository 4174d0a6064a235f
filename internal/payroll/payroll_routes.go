package payroll

import (
	"rhplus/internal/domain"
	"rhplus/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	rdb *redis.Client,
) {
	read := middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionRead)
	update := middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionUpdate)

	create := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionCreate)}
	if rdb != nil {
		create = append([]gin.HandlerFunc{middleware.Idempotency(rdb)}, create...)
	}

	entries := r.Group("/payroll-entries")
	entries.Use(auth)
	{
		entries.GET("", read, handler.GetAll)
		entries.GET("/pending", read, handler.GetPending)
		entries.GET("/by-period", read, handler.GetByPeriod)
		entries.GET("/by-employee", read, handler.GetByEmployee)
		entries.GET("/employee-summary", read, handler.GetEmployeeSummary)
		entries.GET("/:id", read, handler.GetByID)
		entries.GET("/:id/breakdown", read, handler.GetBreakdown)
		entries.GET("/:id/payslip/download", read, handler.DownloadPayslip)
		entries.POST("", append(create, handler.Create)...)
		entries.POST("/:id/approve", middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionApprove), handler.Approve)
		entries.DELETE("/:id", middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionDelete), handler.Delete)
		entries.POST("/:id/details", update, handler.AddDetail)
		entries.PUT("/:id/details/:detailId", update, handler.UpdateDetail)
		entries.DELETE("/:id/details/:detailId", update, handler.RemoveDetail)
	}

	periods := r.Group("/payroll-periods")
	periods.Use(auth)
	{
		periods.GET("/:id/summary", read, handler.GetPeriodSummary)
		periods.GET("/:id/export",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionExport),
			handler.ExportPeriod,
		)
	}
}
