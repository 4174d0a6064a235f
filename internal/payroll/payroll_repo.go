package payroll

import (
	"context"
	"database/sql"
	"time"

	"rhplus/internal/shared/connection"
	"rhplus/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PeriodTotals and EmployeeTotals are aggregate projections over the
// derived entry columns.
type PeriodTotals struct {
	EntryCount      int64
	ApprovedCount   int64
	TotalBase       decimal.Decimal
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNetPay     decimal.Decimal
}

type EmployeeTotals struct {
	EntryCount      int64
	ApprovedCount   int64
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNetPay     decimal.Decimal
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, entry *PayrollEntry) error
	LockByID(ctx context.Context, companyID, id string) (*PayrollEntry, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayrollEntry, error)
	FindAll(ctx context.Context, companyID string, filter EntryFilter) ([]PayrollEntry, error)
	FindByPeriod(ctx context.Context, companyID, periodID string) ([]PayrollEntry, error)
	FindByEmployee(ctx context.Context, companyID, employeeID string) ([]PayrollEntry, error)
	FindPendingApproval(ctx context.Context, companyID string) ([]PayrollEntry, error)
	ExistsForContractPeriod(ctx context.Context, companyID, contractID, periodID string) (bool, error)
	UpdateTotals(ctx context.Context, companyID, id string, totals Totals) error
	MarkApproved(ctx context.Context, companyID, id, actorID string, approvedAt time.Time) error
	SetPayslip(ctx context.Context, companyID, id, url string, generatedAt time.Time) error
	Delete(ctx context.Context, companyID, id string) error

	FindContract(ctx context.Context, companyID, id string) (*EntryContract, error)
	FindPeriod(ctx context.Context, companyID, id string) (*EntryPeriod, error)
	FindPeriodForShare(ctx context.Context, companyID, id string) (*EntryPeriod, error)
	FindItem(ctx context.Context, companyID, id string) (*DetailItem, error)

	CreateDetail(ctx context.Context, detail *PayrollEntryDetail) error
	FindDetail(ctx context.Context, companyID, entryID, detailID string) (*PayrollEntryDetail, error)
	UpdateDetail(ctx context.Context, detail *PayrollEntryDetail) error
	DeleteDetail(ctx context.Context, companyID, entryID, detailID string) error
	ListDetailLines(ctx context.Context, companyID, entryID string) ([]Line, error)

	SummarizePeriod(ctx context.Context, companyID, periodID string) (PeriodTotals, error)
	SummarizeEmployee(ctx context.Context, companyID, employeeID string) (EmployeeTotals, error)
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

func (r *repository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Contract.Employee").
		Preload("Period").
		Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Details.Item")
}

func (r *repository) Create(ctx context.Context, entry *PayrollEntry) error {
	return r.conn(ctx).Omit(clause.Associations).Create(entry).Error
}

// LockByID reads the entry row FOR UPDATE. Every entry mutation starts here
// so detail writes and their recompute serialize per entry.
func (r *repository) LockByID(ctx context.Context, companyID, id string) (*PayrollEntry, error) {
	var entry PayrollEntry
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayrollEntry, error) {
	var entry PayrollEntry
	err := r.withRelations(r.conn(ctx)).
		Scopes(tenant.Scope(companyID)).
		First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter EntryFilter) ([]PayrollEntry, error) {
	q := r.conn(ctx).
		Select("payroll_entries.*").
		Preload("Contract.Employee").
		Preload("Period").
		Joins("JOIN payroll_periods ON payroll_periods.id = payroll_entries.period_id").
		Scopes(tenant.ScopeTable("payroll_entries", companyID))

	if filter.PeriodID != "" {
		q = q.Where("payroll_entries.period_id = ?", filter.PeriodID)
	}
	if filter.EmployeeID != "" {
		q = q.Joins("JOIN contracts ON contracts.id = payroll_entries.contract_id").
			Where("contracts.employee_id = ?", filter.EmployeeID)
	}
	switch filter.Status {
	case StatusApproved:
		q = q.Where("payroll_entries.is_approved = ?", true)
	case StatusPending:
		q = q.Where("payroll_entries.is_approved = ?", false)
	}

	var entries []PayrollEntry
	err := q.Order("payroll_periods.start_date DESC, payroll_entries.created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *repository) FindByPeriod(ctx context.Context, companyID, periodID string) ([]PayrollEntry, error) {
	var entries []PayrollEntry
	err := r.withRelations(r.conn(ctx)).
		Scopes(tenant.Scope(companyID)).
		Where("period_id = ?", periodID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID string) ([]PayrollEntry, error) {
	return r.FindAll(ctx, companyID, EntryFilter{EmployeeID: employeeID})
}

func (r *repository) FindPendingApproval(ctx context.Context, companyID string) ([]PayrollEntry, error) {
	var entries []PayrollEntry
	err := r.conn(ctx).
		Preload("Contract.Employee").
		Preload("Period").
		Scopes(tenant.Scope(companyID)).
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) ExistsForContractPeriod(ctx context.Context, companyID, contractID, periodID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&PayrollEntry{}).
		Scopes(tenant.Scope(companyID)).
		Where("contract_id = ? AND period_id = ?", contractID, periodID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateTotals(ctx context.Context, companyID, id string, totals Totals) error {
	return r.updateEntry(ctx, companyID, id, map[string]any{
		"total_earnings":   totals.Earnings,
		"total_deductions": totals.Deductions,
		"net_pay":          totals.NetPay,
		"updated_at":       time.Now(),
	})
}

func (r *repository) MarkApproved(ctx context.Context, companyID, id, actorID string, approvedAt time.Time) error {
	return r.updateEntry(ctx, companyID, id, map[string]any{
		"is_approved": true,
		"approved_by": actorID,
		"approved_at": approvedAt,
		"updated_at":  approvedAt,
	})
}

func (r *repository) SetPayslip(ctx context.Context, companyID, id, url string, generatedAt time.Time) error {
	return r.updateEntry(ctx, companyID, id, map[string]any{
		"payslip_url":          url,
		"payslip_generated_at": generatedAt,
	})
}

func (r *repository) updateEntry(ctx context.Context, companyID, id string, values map[string]any) error {
	res := r.conn(ctx).
		Model(&PayrollEntry{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Updates(values)
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
		Delete(&PayrollEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindContract(ctx context.Context, companyID, id string) (*EntryContract, error) {
	var c EntryContract
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindPeriod(ctx context.Context, companyID, id string) (*EntryPeriod, error) {
	var p EntryPeriod
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPeriodForShare holds a shared lock on the period row until the
// transaction ends, so a concurrent close waits for the caller to finish.
func (r *repository) FindPeriodForShare(ctx context.Context, companyID, id string) (*EntryPeriod, error) {
	var p EntryPeriod
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindItem(ctx context.Context, companyID, id string) (*DetailItem, error) {
	var item DetailItem
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) CreateDetail(ctx context.Context, detail *PayrollEntryDetail) error {
	return r.conn(ctx).Omit(clause.Associations).Create(detail).Error
}

func (r *repository) FindDetail(ctx context.Context, companyID, entryID, detailID string) (*PayrollEntryDetail, error) {
	var d PayrollEntryDetail
	err := r.conn(ctx).
		Preload("Item").
		Scopes(tenant.Scope(companyID)).
		Where("entry_id = ?", entryID).
		First(&d, "id = ?", detailID).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) UpdateDetail(ctx context.Context, detail *PayrollEntryDetail) error {
	return r.conn(ctx).Omit(clause.Associations).Save(detail).Error
}

func (r *repository) DeleteDetail(ctx context.Context, companyID, entryID, detailID string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("entry_id = ?", entryID).
		Delete(&PayrollEntryDetail{}, "id = ?", detailID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListDetailLines(ctx context.Context, companyID, entryID string) ([]Line, error) {
	var lines []Line
	err := r.conn(ctx).
		Table("payroll_entry_details AS d").
		Select("i.item_type AS kind, d.amount, d.quantity").
		Joins("JOIN payroll_items i ON i.id = d.payroll_item_id").
		Scopes(tenant.ScopeTable("d", companyID)).
		Where("d.entry_id = ?", entryID).
		Scan(&lines).Error
	return lines, err
}

func (r *repository) SummarizePeriod(ctx context.Context, companyID, periodID string) (PeriodTotals, error) {
	var totals PeriodTotals
	err := r.conn(ctx).Raw(`
		SELECT
			COUNT(*) AS entry_count,
			COUNT(*) FILTER (WHERE is_approved) AS approved_count,
			COALESCE(SUM(base_salary), 0) AS total_base,
			COALESCE(SUM(total_earnings), 0) AS total_earnings,
			COALESCE(SUM(total_deductions), 0) AS total_deductions,
			COALESCE(SUM(net_pay), 0) AS total_net_pay
		FROM payroll_entries
		WHERE company_id = ? AND period_id = ?
	`, companyID, periodID).Scan(&totals).Error
	return totals, err
}

func (r *repository) SummarizeEmployee(ctx context.Context, companyID, employeeID string) (EmployeeTotals, error) {
	var totals EmployeeTotals
	err := r.conn(ctx).Raw(`
		SELECT
			COUNT(*) AS entry_count,
			COUNT(*) FILTER (WHERE e.is_approved) AS approved_count,
			COALESCE(SUM(e.total_earnings), 0) AS total_earnings,
			COALESCE(SUM(e.total_deductions), 0) AS total_deductions,
			COALESCE(SUM(e.net_pay), 0) AS total_net_pay
		FROM payroll_entries e
		JOIN contracts c ON c.id = e.contract_id
		WHERE e.company_id = ? AND c.employee_id = ?
	`, companyID, employeeID).Scan(&totals).Error
	return totals, err
}
