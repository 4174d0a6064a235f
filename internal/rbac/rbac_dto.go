package rbac

import "rhplus/internal/domain"

type EnforceRequest = domain.EnforceRequest

type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}
