package payrollitem

import "github.com/shopspring/decimal"

type defaultItem struct {
	Code          string
	Name          string
	ItemType      string
	DefaultAmount int64
	IsPercentage  bool
}

// defaultCatalog is the Colombian starter catalog installed by SeedDefaults.
var defaultCatalog = []defaultItem{
	{Code: "BASIC_SALARY", Name: "Salario Básico", ItemType: ItemTypeEarning},
	{Code: "OVERTIME", Name: "Horas Extra", ItemType: ItemTypeEarning, DefaultAmount: 50000},
	{Code: "BONUS", Name: "Bonificación", ItemType: ItemTypeEarning, DefaultAmount: 100000},
	{Code: "TRANSPORT", Name: "Auxilio de Transporte", ItemType: ItemTypeEarning, DefaultAmount: 140606},
	{Code: "SERVICE_BONUS", Name: "Prima de Servicio", ItemType: ItemTypeEarning},
	{Code: "HEALTH", Name: "Salud (4%)", ItemType: ItemTypeDeduction, IsPercentage: true},
	{Code: "PENSION", Name: "Pensión (4%)", ItemType: ItemTypeDeduction, DefaultAmount: 4, IsPercentage: true},
	{Code: "TAX_RETENTION", Name: "Retención en la Fuente", ItemType: ItemTypeDeduction},
	{Code: "LOAN", Name: "Préstamo", ItemType: ItemTypeDeduction, DefaultAmount: 50000},
	{Code: "LATE_DISCOUNT", Name: "Descuento por Tardanza", ItemType: ItemTypeDeduction},
}

func (d defaultItem) amount() decimal.Decimal {
	return decimal.NewFromInt(d.DefaultAmount)
}
