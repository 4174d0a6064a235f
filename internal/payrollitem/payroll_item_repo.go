package payrollitem

import (
	"context"
	"database/sql"

	"rhplus/internal/shared/connection"
	"rhplus/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_item_repo.go -destination=mock/payroll_item_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, item *PayrollItem) error
	FindAllActive(ctx context.Context, companyID string) ([]PayrollItem, error)
	FindByType(ctx context.Context, companyID string, itemType string) ([]PayrollItem, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollItem, error)
	LockByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollItem, error)
	CountReferences(ctx context.Context, companyID string, id string) (int64, error)
	FindCodes(ctx context.Context, companyID string) ([]string, error)
	ExistsByCode(ctx context.Context, companyID string, code string) (bool, error)
	Update(ctx context.Context, item *PayrollItem) error
	Delete(ctx context.Context, companyID string, id string) error
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

func (r *repository) Create(ctx context.Context, item *PayrollItem) error {
	return r.conn(ctx).Create(item).Error
}

func (r *repository) FindAllActive(ctx context.Context, companyID string) ([]PayrollItem, error) {
	var items []PayrollItem
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true).
		Order("item_type ASC, name ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByType(ctx context.Context, companyID string, itemType string) ([]PayrollItem, error) {
	var items []PayrollItem
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("item_type = ? AND is_active = ?", itemType, true).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollItem, error) {
	var item PayrollItem
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// LockByIDAndCompany reads the item FOR UPDATE. Detail inserts take FOR KEY
// SHARE on the item through fk_payroll_entry_details_item, so they wait for
// the holder to finish.
func (r *repository) LockByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollItem, error) {
	var item PayrollItem
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CountReferences counts payroll entry details that use the item.
func (r *repository) CountReferences(ctx context.Context, companyID string, id string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Table("payroll_entry_details").
		Scopes(tenant.Scope(companyID)).
		Where("payroll_item_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) FindCodes(ctx context.Context, companyID string) ([]string, error) {
	var codes []string
	err := r.conn(ctx).
		Model(&PayrollItem{}).
		Scopes(tenant.Scope(companyID)).
		Pluck("code", &codes).Error
	return codes, err
}

func (r *repository) ExistsByCode(ctx context.Context, companyID string, code string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&PayrollItem{}).
		Scopes(tenant.Scope(companyID)).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, item *PayrollItem) error {
	return r.conn(ctx).Save(item).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&PayrollItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
