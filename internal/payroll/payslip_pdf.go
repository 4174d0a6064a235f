package payroll

import (
	"bytes"
	"fmt"
	"time"

	"rhplus/internal/shared/money"

	"github.com/jung-kurt/gofpdf"
)

const payslipContentType = "application/pdf"

type payslipData struct {
	EntryID        string
	EmployeeName   string
	ContractNumber string
	Position       string
	Department     string
	Currency       string
	PeriodName     string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Breakdown      BreakdownResponse
	ApprovedAt     *time.Time
}

func newPayslipData(entry *PayrollEntry) payslipData {
	data := payslipData{
		EntryID:    entry.ID.String(),
		Breakdown:  buildBreakdown(entry),
		ApprovedAt: entry.ApprovedAt,
		Currency:   "COP",
	}
	if entry.Contract != nil {
		data.ContractNumber = entry.Contract.ContractNumber
		data.Position = entry.Contract.Position
		data.Department = entry.Contract.Department
		if entry.Contract.Currency != "" {
			data.Currency = entry.Contract.Currency
		}
		if entry.Contract.Employee != nil {
			data.EmployeeName = entry.Contract.Employee.FullName
		}
	}
	if entry.Period != nil {
		data.PeriodName = entry.Period.Name
		data.PeriodStart = entry.Period.StartDate
		data.PeriodEnd = entry.Period.EndDate
	}
	return data
}

func renderPayslipPDF(data payslipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Comprobante de nomina", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Comprobante de Nómina"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	header := [][2]string{
		{"Empleado", data.EmployeeName},
		{"Contrato", data.ContractNumber},
		{"Cargo", data.Position},
		{"Departamento", data.Department},
		{"Periodo", fmt.Sprintf("%s (%s a %s)", data.PeriodName,
			data.PeriodStart.Format("2006-01-02"), data.PeriodEnd.Format("2006-01-02"))},
	}
	for _, h := range header {
		pdf.CellFormat(40, 7, tr(h[0]+":"), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(h[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	writeSection := func(title string, lines []BreakdownLine, total string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(217, 225, 242)
		pdf.CellFormat(100, 7, tr(title), "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 7, tr("Cant."), "1", 0, "R", true, 0, "")
		pdf.CellFormat(0, 7, tr("Valor"), "1", 1, "R", true, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, l := range lines {
			pdf.CellFormat(100, 6, tr(l.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, l.Quantity, "1", 0, "R", false, 0, "")
			pdf.CellFormat(0, 6, thousands(l.LineTotal), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(125, 6, tr("Total "+title), "1", 0, "R", false, 0, "")
		pdf.CellFormat(0, 6, thousands(total), "1", 1, "R", false, 0, "")
		pdf.Ln(4)
	}

	b := data.Breakdown
	writeSection("Devengados", b.Earnings, b.TotalEarnings)
	writeSection("Deducciones", b.Deductions, b.TotalDeductions)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(125, 9, tr("Neto a pagar ("+data.Currency+")"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(0, 9, thousands(b.NetPay), "1", 1, "R", false, 0, "")

	if data.ApprovedAt != nil {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Cell(0, 6, tr("Aprobado el "+data.ApprovedAt.Format("2006-01-02 15:04")))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip %s: %w", data.EntryID, err)
	}
	return buf.Bytes(), nil
}

func thousands(v string) string {
	d, err := money.Parse(v)
	if err != nil {
		return v
	}
	return money.FormatThousands(d)
}
