package payroll

import "github.com/shopspring/decimal"

type DetailRequest struct {
	PayrollItemID string           `json:"payroll_item_id" binding:"required,uuid"`
	Amount        *decimal.Decimal `json:"amount" binding:"required"`
	Quantity      *decimal.Decimal `json:"quantity"`
	Notes         *string          `json:"notes" binding:"omitempty,max=255"`
}

type UpdateDetailRequest struct {
	Amount   *decimal.Decimal `json:"amount"`
	Quantity *decimal.Decimal `json:"quantity"`
	Notes    *string          `json:"notes" binding:"omitempty,max=255"`
}

type CreateEntryRequest struct {
	ContractID string           `json:"contract_id" binding:"required,uuid"`
	PeriodID   string           `json:"period_id" binding:"required,uuid"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	Details    []DetailRequest  `json:"details" binding:"omitempty,dive"`
}

type EntryFilter struct {
	PeriodID   string `form:"period"`
	EmployeeID string `form:"employee"`
	Status     string `form:"status"`
}

type DetailResponse struct {
	ID            string  `json:"id"`
	PayrollItemID string  `json:"payroll_item_id"`
	ItemCode      string  `json:"item_code,omitempty"`
	ItemName      string  `json:"item_name,omitempty"`
	ItemType      string  `json:"item_type,omitempty"`
	Amount        string  `json:"amount"`
	Quantity      string  `json:"quantity"`
	LineTotal     string  `json:"line_total"`
	Notes         *string `json:"notes,omitempty"`
}

type EntryResponse struct {
	ID                 string           `json:"id"`
	ContractID         string           `json:"contract_id"`
	PeriodID           string           `json:"period_id"`
	PeriodName         string           `json:"period_name,omitempty"`
	EmployeeID         string           `json:"employee_id,omitempty"`
	EmployeeName       string           `json:"employee_name,omitempty"`
	BaseSalary         string           `json:"base_salary"`
	TotalEarnings      string           `json:"total_earnings"`
	TotalDeductions    string           `json:"total_deductions"`
	NetPay             string           `json:"net_pay"`
	IsApproved         bool             `json:"is_approved"`
	ApprovedBy         *string          `json:"approved_by,omitempty"`
	ApprovedAt         *string          `json:"approved_at,omitempty"`
	CreatedBy          string           `json:"created_by"`
	CreatedAt          string           `json:"created_at"`
	PayslipURL         *string          `json:"payslip_url,omitempty"`
	PayslipGeneratedAt *string          `json:"payslip_generated_at,omitempty"`
	Details            []DetailResponse `json:"details,omitempty"`
}

type BreakdownLine struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Quantity  string `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type BreakdownResponse struct {
	EntryID         string          `json:"entry_id"`
	EmployeeName    string          `json:"employee_name"`
	PeriodName      string          `json:"period_name"`
	BaseSalary      string          `json:"base_salary"`
	Earnings        []BreakdownLine `json:"earnings"`
	Deductions      []BreakdownLine `json:"deductions"`
	TotalEarnings   string          `json:"total_earnings"`
	TotalDeductions string          `json:"total_deductions"`
	NetPay          string          `json:"net_pay"`
	IsApproved      bool            `json:"is_approved"`
}

type PeriodSummaryResponse struct {
	PeriodID        string `json:"period_id"`
	PeriodName      string `json:"period_name"`
	IsClosed        bool   `json:"is_closed"`
	EntryCount      int64  `json:"entry_count"`
	ApprovedCount   int64  `json:"approved_count"`
	PendingCount    int64  `json:"pending_count"`
	TotalBase       string `json:"total_base_salary"`
	TotalEarnings   string `json:"total_earnings"`
	TotalDeductions string `json:"total_deductions"`
	TotalNetPay     string `json:"total_net_pay"`
}

type EmployeeSummaryResponse struct {
	EmployeeID      string `json:"employee_id"`
	EntryCount      int64  `json:"entry_count"`
	ApprovedCount   int64  `json:"approved_count"`
	TotalEarnings   string `json:"total_earnings"`
	TotalDeductions string `json:"total_deductions"`
	TotalNetPay     string `json:"total_net_pay"`
}

// ExportFile is a rendered payroll register.
type ExportFile struct {
	Filename string
	Content  []byte
}
