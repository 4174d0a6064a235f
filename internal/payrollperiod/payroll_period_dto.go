package payrollperiod

type CreatePeriodRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	PeriodType string `json:"period_type" binding:"omitempty,oneof=WEEKLY BIWEEKLY MONTHLY CUSTOM"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

type PeriodResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PeriodType string  `json:"period_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	IsClosed   bool    `json:"is_closed"`
	ClosedBy   *string `json:"closed_by,omitempty"`
	ClosedAt   *string `json:"closed_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
