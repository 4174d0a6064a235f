package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	registerSheet       = "Nomina"
	registerContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var registerHeaders = []string{
	"Contrato", "Empleado", "Cargo", "Departamento",
	"Salario base", "Devengados", "Deducciones", "Neto a pagar", "Estado",
}

// buildPeriodRegister renders one row per entry plus a totals row.
func buildPeriodRegister(period *EntryPeriod, entries []PayrollEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", registerSheet); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		f.Close()
		return nil, err
	}

	f.SetCellValue(registerSheet, "A1", fmt.Sprintf("Periodo: %s", period.Name))
	f.SetCellValue(registerSheet, "A2", fmt.Sprintf("%s a %s",
		period.StartDate.Format("2006-01-02"), period.EndDate.Format("2006-01-02")))

	const headerRow = 4
	for i, h := range registerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(registerSheet, cell, h)
		f.SetCellStyle(registerSheet, cell, cell, headerStyle)
	}

	sumBase, sumEarn, sumDed, sumNet := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero

	row := headerRow + 1
	for _, e := range entries {
		var contractNumber, employee, position, department string
		if e.Contract != nil {
			contractNumber = e.Contract.ContractNumber
			position = e.Contract.Position
			department = e.Contract.Department
			if e.Contract.Employee != nil {
				employee = e.Contract.Employee.FullName
			}
		}
		status := StatusPending
		if e.IsApproved {
			status = StatusApproved
		}

		f.SetCellValue(registerSheet, fmt.Sprintf("A%d", row), contractNumber)
		f.SetCellValue(registerSheet, fmt.Sprintf("B%d", row), employee)
		f.SetCellValue(registerSheet, fmt.Sprintf("C%d", row), position)
		f.SetCellValue(registerSheet, fmt.Sprintf("D%d", row), department)
		setMoney(f, fmt.Sprintf("E%d", row), e.BaseSalary)
		setMoney(f, fmt.Sprintf("F%d", row), e.TotalEarnings)
		setMoney(f, fmt.Sprintf("G%d", row), e.TotalDeductions)
		setMoney(f, fmt.Sprintf("H%d", row), e.NetPay)
		f.SetCellValue(registerSheet, fmt.Sprintf("I%d", row), strings.ToUpper(status))

		sumBase = sumBase.Add(e.BaseSalary)
		sumEarn = sumEarn.Add(e.TotalEarnings)
		sumDed = sumDed.Add(e.TotalDeductions)
		sumNet = sumNet.Add(e.NetPay)
		row++
	}

	f.SetCellValue(registerSheet, fmt.Sprintf("A%d", row), "TOTAL")
	setMoney(f, fmt.Sprintf("E%d", row), sumBase)
	setMoney(f, fmt.Sprintf("F%d", row), sumEarn)
	setMoney(f, fmt.Sprintf("G%d", row), sumDed)
	setMoney(f, fmt.Sprintf("H%d", row), sumNet)

	f.SetCellStyle(registerSheet, fmt.Sprintf("E%d", headerRow+1), fmt.Sprintf("H%d", row), moneyStyle)
	f.SetColWidth(registerSheet, "A", "D", 22)
	f.SetColWidth(registerSheet, "E", "H", 16)

	return f, nil
}

func setMoney(f *excelize.File, cell string, d decimal.Decimal) {
	f.SetCellFloat(registerSheet, cell, d.InexactFloat64(), 2, 64)
}
