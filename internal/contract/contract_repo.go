package contract

import (
	"context"
	"database/sql"

	"rhplus/internal/shared/connection"
	"rhplus/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=contract_repo.go -destination=mock/contract_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Contract) error
	FindAllActive(ctx context.Context, companyID string) ([]Contract, error)
	FindActiveByEmployee(ctx context.Context, companyID, employeeID string) ([]Contract, error)
	FindCurrentByEmployee(ctx context.Context, companyID, employeeID string) (*Contract, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Contract, error)
	LockByEmployee(ctx context.Context, companyID, employeeID string) ([]Contract, error)
	DeactivateOthers(ctx context.Context, companyID, employeeID, exceptID string) (int64, error)
	SetActive(ctx context.Context, companyID, id string, active bool) error
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, c *Contract) error {
	return r.conn(ctx).Omit("Employee").Create(c).Error
}

func (r *repository) FindAllActive(ctx context.Context, companyID string) ([]Contract, error) {
	var contracts []Contract
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true).
		Order("start_date DESC").
		Find(&contracts).Error
	return contracts, err
}

func (r *repository) FindActiveByEmployee(ctx context.Context, companyID, employeeID string) ([]Contract, error) {
	var contracts []Contract
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		Order("start_date DESC").
		Find(&contracts).Error
	return contracts, err
}

func (r *repository) FindCurrentByEmployee(ctx context.Context, companyID, employeeID string) (*Contract, error) {
	var c Contract
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		Order("start_date DESC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Contract, error) {
	var c Contract
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LockByEmployee takes row locks on every contract of the employee so
// concurrent activations for the same employee serialize.
func (r *repository) LockByEmployee(ctx context.Context, companyID, employeeID string) ([]Contract, error) {
	var contracts []Contract
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("id").
		Find(&contracts).Error
	return contracts, err
}

func (r *repository) DeactivateOthers(ctx context.Context, companyID, employeeID, exceptID string) (int64, error) {
	q := r.conn(ctx).
		Model(&Contract{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND is_active = ?", employeeID, true)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}

	res := q.Updates(map[string]any{"is_active": false, "updated_at": gorm.Expr("now()")})
	return res.RowsAffected, res.Error
}

func (r *repository) SetActive(ctx context.Context, companyID, id string, active bool) error {
	res := r.conn(ctx).
		Model(&Contract{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Contract{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
