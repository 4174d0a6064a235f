package payrollitem

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ItemTypeEarning   = "EARNING"
	ItemTypeDeduction = "DEDUCTION"
)

type PayrollItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_item_code"`
	Code          string          `gorm:"type:varchar(20);not null;uniqueIndex:uq_payroll_item_code"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Description   *string         `gorm:"type:text"`
	ItemType      string          `gorm:"type:varchar(10);not null;index"`
	DefaultAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	IsPercentage  bool            `gorm:"not null;default:false"`
	IsActive      bool            `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PayrollItem) TableName() string {
	return "payroll_items"
}
