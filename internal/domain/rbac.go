package domain

// EnforceRequest asks whether an employee may perform action on resource
// within a company.
type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CompanyID  string `json:"company_id" binding:"required"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

// Resources guarded by the payroll API.
const (
	ResourcePayrollItem   = "payroll_item"
	ResourceContract      = "contract"
	ResourcePayrollPeriod = "payroll_period"
	ResourcePayroll       = "payroll"
	ResourceActivity      = "activity"
)

const (
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionClose   = "close"
	ActionExport  = "export"
)
