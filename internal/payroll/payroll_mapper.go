package payroll

import (
	"time"

	"rhplus/internal/shared/money"
)

func mapToResponse(entry PayrollEntry, withDetails bool) EntryResponse {
	resp := EntryResponse{
		ID:              entry.ID.String(),
		ContractID:      entry.ContractID.String(),
		PeriodID:        entry.PeriodID.String(),
		BaseSalary:      money.Format(entry.BaseSalary),
		TotalEarnings:   money.Format(entry.TotalEarnings),
		TotalDeductions: money.Format(entry.TotalDeductions),
		NetPay:          money.Format(entry.NetPay),
		IsApproved:      entry.IsApproved,
		CreatedBy:       entry.CreatedBy.String(),
		CreatedAt:       entry.CreatedAt.Format(time.RFC3339),
		PayslipURL:      entry.PayslipURL,
	}

	if entry.Period != nil {
		resp.PeriodName = entry.Period.Name
	}
	if entry.Contract != nil {
		resp.EmployeeID = entry.Contract.EmployeeID.String()
		if entry.Contract.Employee != nil {
			resp.EmployeeName = entry.Contract.Employee.FullName
		}
	}
	if entry.ApprovedBy != nil {
		v := entry.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if entry.ApprovedAt != nil {
		v := entry.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if entry.PayslipGeneratedAt != nil {
		v := entry.PayslipGeneratedAt.Format(time.RFC3339)
		resp.PayslipGeneratedAt = &v
	}

	if withDetails {
		resp.Details = make([]DetailResponse, 0, len(entry.Details))
		for _, d := range entry.Details {
			resp.Details = append(resp.Details, mapDetail(d))
		}
	}

	return resp
}

func mapDetail(d PayrollEntryDetail) DetailResponse {
	resp := DetailResponse{
		ID:            d.ID.String(),
		PayrollItemID: d.PayrollItemID.String(),
		Amount:        money.Format(d.Amount),
		Quantity:      money.Format(d.Quantity),
		LineTotal:     money.Format(money.Line(d.Amount, d.Quantity)),
		Notes:         d.Notes,
	}
	if d.Item != nil {
		resp.ItemCode = d.Item.Code
		resp.ItemName = d.Item.Name
		resp.ItemType = d.Item.ItemType
	}
	return resp
}

func mapToListResponse(entries []PayrollEntry) []EntryResponse {
	resp := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapToResponse(e, false))
	}
	return resp
}

// buildBreakdown splits the entry's details by kind. The totals shown are
// the persisted ones.
func buildBreakdown(entry *PayrollEntry) BreakdownResponse {
	resp := BreakdownResponse{
		EntryID:         entry.ID.String(),
		BaseSalary:      money.Format(entry.BaseSalary),
		Earnings:        []BreakdownLine{},
		Deductions:      []BreakdownLine{},
		TotalEarnings:   money.Format(entry.TotalEarnings),
		TotalDeductions: money.Format(entry.TotalDeductions),
		NetPay:          money.Format(entry.NetPay),
		IsApproved:      entry.IsApproved,
	}
	if entry.Period != nil {
		resp.PeriodName = entry.Period.Name
	}
	if entry.Contract != nil && entry.Contract.Employee != nil {
		resp.EmployeeName = entry.Contract.Employee.FullName
	}

	for _, d := range entry.Details {
		if d.Item == nil {
			continue
		}
		line := BreakdownLine{
			Code:      d.Item.Code,
			Name:      d.Item.Name,
			Amount:    money.Format(d.Amount),
			Quantity:  money.Format(d.Quantity),
			LineTotal: money.Format(money.Line(d.Amount, d.Quantity)),
		}
		switch d.Item.ItemType {
		case KindEarning:
			resp.Earnings = append(resp.Earnings, line)
		case KindDeduction:
			resp.Deductions = append(resp.Deductions, line)
		}
	}

	return resp
}
