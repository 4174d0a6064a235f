package middleware

import (
	"rhplus/internal/domain"
	"rhplus/internal/shared/apperror"
	"rhplus/internal/shared/contextutil"
	"rhplus/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by anything that can answer an enforce request.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString(KeyEmployeeID)
		companyID := c.GetString(KeyCompanyID)

		if employeeID == "" || companyID == "" {
			response.Abort(c, apperror.ErrUnauthorized)
			return
		}

		req := domain.EnforceRequest{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Resource:   resource,
			Action:     action,
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			response.Abort(c, err)
			return
		}

		if !allowed {
			response.Abort(c, apperror.ErrForbidden.WithDetails(map[string]string{
				"required": resource + ":" + action,
			}))
			return
		}
		c.Next()
	}
}
