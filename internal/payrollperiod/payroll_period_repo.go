package payrollperiod

import (
	"context"
	"database/sql"
	"time"

	"rhplus/internal/shared/connection"
	"rhplus/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_period_repo.go -destination=mock/payroll_period_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *PayrollPeriod) error
	FindAll(ctx context.Context, companyID string) ([]PayrollPeriod, error)
	FindOpen(ctx context.Context, companyID string) ([]PayrollPeriod, error)
	FindCurrent(ctx context.Context, companyID string) (*PayrollPeriod, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayrollPeriod, error)
	LockByID(ctx context.Context, companyID, id string) (*PayrollPeriod, error)
	CountPendingEntries(ctx context.Context, companyID, periodID string) (int64, error)
	MarkClosed(ctx context.Context, companyID, id, actorID string, closedAt time.Time) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, p *PayrollPeriod) error {
	return r.conn(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string) ([]PayrollPeriod, error) {
	var periods []PayrollPeriod
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("start_date DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) FindOpen(ctx context.Context, companyID string) ([]PayrollPeriod, error) {
	var periods []PayrollPeriod
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_closed = ?", false).
		Order("start_date DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) FindCurrent(ctx context.Context, companyID string) (*PayrollPeriod, error) {
	var p PayrollPeriod
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_closed = ?", false).
		Order("end_date DESC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayrollPeriod, error) {
	var p PayrollPeriod
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LockByID reads the period FOR UPDATE. Entry approvals hold FOR SHARE on
// the same row, so close waits for in-flight approvals and vice versa.
func (r *repository) LockByID(ctx context.Context, companyID, id string) (*PayrollPeriod, error) {
	var p PayrollPeriod
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) CountPendingEntries(ctx context.Context, companyID, periodID string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Table("payroll_entries").
		Scopes(tenant.Scope(companyID)).
		Where("period_id = ? AND is_approved = ?", periodID, false).
		Count(&count).Error
	return count, err
}

func (r *repository) MarkClosed(ctx context.Context, companyID, id, actorID string, closedAt time.Time) error {
	res := r.conn(ctx).
		Model(&PayrollPeriod{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND is_closed = ?", id, false).
		Updates(map[string]any{
			"is_closed": true,
			"closed_by": actorID,
			"closed_at": closedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&PayrollPeriod{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
