package activity

import (
	"context"

	"rhplus/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=activity_repo.go -destination=mock/activity_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Activity) error
	FindRecent(ctx context.Context, companyID, activityType string, limit int) ([]Activity, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindRecent(ctx context.Context, companyID, activityType string, limit int) ([]Activity, error) {
	var activities []Activity
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if activityType != "" {
		q = q.Where("type = ?", activityType)
	}
	err := q.Order("timestamp DESC").Limit(limit).Find(&activities).Error
	return activities, err
}
