package payrollperiod

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeWeekly   = "WEEKLY"
	TypeBiweekly = "BIWEEKLY"
	TypeMonthly  = "MONTHLY"
	TypeCustom   = "CUSTOM"
)

type PayrollPeriod struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name       string     `gorm:"type:varchar(100);not null"`
	PeriodType string     `gorm:"type:varchar(20);not null;default:'MONTHLY'"`
	StartDate  time.Time  `gorm:"type:date;not null"`
	EndDate    time.Time  `gorm:"type:date;not null"`
	IsClosed   bool       `gorm:"not null;default:false"`
	ClosedBy   *uuid.UUID `gorm:"type:uuid"`
	ClosedAt   *time.Time
	CreatedAt  time.Time
}

func (PayrollPeriod) TableName() string {
	return "payroll_periods"
}
