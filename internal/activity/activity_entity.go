package activity

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeEmployee    = "employee"
	TypeCandidate   = "candidate"
	TypePayroll     = "payroll"
	TypeTraining    = "training"
	TypePerformance = "performance"
)

var validTypes = map[string]struct{}{
	TypeEmployee:    {},
	TypeCandidate:   {},
	TypePayroll:     {},
	TypeTraining:    {},
	TypePerformance: {},
}

// Activity is one line of the company's activity feed. SourceKey identifies
// the event that produced it so redelivered events are recorded once.
type Activity struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_activities_company_timestamp,priority:1"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text;not null"`
	Type        string     `gorm:"type:varchar(20);not null"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	SourceKey   *string    `gorm:"type:varchar(120);uniqueIndex:uq_activity_source"`
	Timestamp   time.Time  `gorm:"not null;index:idx_activities_company_timestamp,priority:2,sort:desc"`
}

func (Activity) TableName() string {
	return "activities"
}
