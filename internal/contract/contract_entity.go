package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeIndefinite = "INDEFINITE"
	TypeFixedTerm  = "FIXED_TERM"
	TypeTemporary  = "TEMPORARY"
	TypeInternship = "INTERNSHIP"

	ScheduleFullTime  = "FULL_TIME"
	SchedulePartTime  = "PART_TIME"
	ScheduleFlexTime  = "FLEX_TIME"
	ScheduleShiftWork = "SHIFT_WORK"

	CurrencyCOP = "COP"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Contract is an employment contract. At most one contract per employee is
// active; the partial unique index uq_contract_active_employee enforces it.
type Contract struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_contract_number"`
	EmployeeID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Employee       *ContractEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
	ContractNumber string           `gorm:"type:varchar(20);not null;uniqueIndex:uq_contract_number"`
	ContractType   string           `gorm:"type:varchar(20);not null"`
	StartDate      time.Time        `gorm:"type:date;not null"`
	EndDate        *time.Time       `gorm:"type:date"`
	Salary         decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Currency       string           `gorm:"type:varchar(3);not null;default:'COP'"`
	Position       string           `gorm:"type:varchar(100);not null"`
	Department     string           `gorm:"type:varchar(100);not null"`
	WorkSchedule   string           `gorm:"type:varchar(20);not null;default:'FULL_TIME'"`
	IsActive       bool             `gorm:"not null;default:true"`
	CreatedBy      uuid.UUID        `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Contract) TableName() string {
	return "contracts"
}

type ContractEmployee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (ContractEmployee) TableName() string {
	return "employees"
}
