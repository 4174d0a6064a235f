package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollEntry aggregates one contract's earnings and deductions for one
// period. Totals are derived from Details and only written by recompute.
type PayrollEntry struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	ContractID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_entry_contract_period"`
	Contract   *EntryContract `gorm:"foreignKey:ContractID;references:ID"`
	PeriodID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_entry_contract_period"`
	Period     *EntryPeriod   `gorm:"foreignKey:PeriodID;references:ID"`

	BaseSalary      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalEarnings   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetPay          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	IsApproved bool       `gorm:"not null;default:false;index"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null"`

	PayslipURL         *string
	PayslipGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Details []PayrollEntryDetail `gorm:"foreignKey:EntryID"`
}

func (PayrollEntry) TableName() string {
	return "payroll_entries"
}

type PayrollEntryDetail struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null"`
	EntryID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PayrollItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Item          *DetailItem     `gorm:"foreignKey:PayrollItemID;references:ID"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity      decimal.Decimal `gorm:"type:numeric(7,2);not null;default:1"`
	Notes         *string         `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PayrollEntryDetail) TableName() string {
	return "payroll_entry_details"
}

// Read-side views of rows owned by other packages.

type EntryContract struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID       `gorm:"type:uuid"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid"`
	Employee       *EntryEmployee  `gorm:"foreignKey:EmployeeID;references:ID"`
	ContractNumber string          `gorm:"column:contract_number"`
	Salary         decimal.Decimal `gorm:"column:salary"`
	Currency       string          `gorm:"column:currency"`
	Position       string          `gorm:"column:position"`
	Department     string          `gorm:"column:department"`
	IsActive       bool            `gorm:"column:is_active"`
}

func (EntryContract) TableName() string {
	return "contracts"
}

type EntryEmployee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EntryEmployee) TableName() string {
	return "employees"
}

type EntryPeriod struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid"`
	Name      string    `gorm:"column:name"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
	IsClosed  bool      `gorm:"column:is_closed"`
}

func (EntryPeriod) TableName() string {
	return "payroll_periods"
}

type DetailItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid"`
	Code      string    `gorm:"column:code"`
	Name      string    `gorm:"column:name"`
	ItemType  string    `gorm:"column:item_type"`
	IsActive  bool      `gorm:"column:is_active"`
}

func (DetailItem) TableName() string {
	return "payroll_items"
}
