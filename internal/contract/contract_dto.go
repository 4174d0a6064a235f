package contract

import "github.com/shopspring/decimal"

type CreateContractRequest struct {
	EmployeeID   string           `json:"employee_id" binding:"required,uuid"`
	ContractType string           `json:"contract_type" binding:"required,oneof=INDEFINITE FIXED_TERM TEMPORARY INTERNSHIP"`
	StartDate    string           `json:"start_date" binding:"required"`
	EndDate      *string          `json:"end_date"`
	Salary       *decimal.Decimal `json:"salary" binding:"required"`
	Currency     string           `json:"currency" binding:"omitempty,oneof=COP USD EUR"`
	Position     string           `json:"position" binding:"required,max=100"`
	Department   string           `json:"department" binding:"required,max=100"`
	WorkSchedule string           `json:"work_schedule" binding:"omitempty,oneof=FULL_TIME PART_TIME FLEX_TIME SHIFT_WORK"`
	IsActive     *bool            `json:"is_active"`
}

type ContractResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	ContractNumber string  `json:"contract_number"`
	ContractType   string  `json:"contract_type"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	Salary         string  `json:"salary"`
	Currency       string  `json:"currency"`
	Position       string  `json:"position"`
	Department     string  `json:"department"`
	WorkSchedule   string  `json:"work_schedule"`
	IsActive       bool    `json:"is_active"`
	CreatedBy      string  `json:"created_by"`
	CreatedAt      string  `json:"created_at"`
}
