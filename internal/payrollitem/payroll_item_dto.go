package payrollitem

import "github.com/shopspring/decimal"

type CreatePayrollItemRequest struct {
	Code          string           `json:"code" binding:"required,max=20"`
	Name          string           `json:"name" binding:"required,max=100"`
	Description   *string          `json:"description"`
	ItemType      string           `json:"item_type" binding:"required,oneof=EARNING DEDUCTION"`
	DefaultAmount *decimal.Decimal `json:"default_amount"`
	IsPercentage  bool             `json:"is_percentage"`
}

// UpdatePayrollItemRequest leaves the code untouched; nil fields keep their
// current value.
type UpdatePayrollItemRequest struct {
	Name          *string          `json:"name" binding:"omitempty,max=100"`
	Description   *string          `json:"description"`
	ItemType      *string          `json:"item_type" binding:"omitempty,oneof=EARNING DEDUCTION"`
	DefaultAmount *decimal.Decimal `json:"default_amount"`
	IsPercentage  *bool            `json:"is_percentage"`
	IsActive      *bool            `json:"is_active"`
}

type PayrollItemResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	ItemType      string  `json:"item_type"`
	DefaultAmount string  `json:"default_amount"`
	IsPercentage  bool    `json:"is_percentage"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type SeedResult struct {
	Created []string `json:"created"`
	Skipped []string `json:"skipped"`
}
