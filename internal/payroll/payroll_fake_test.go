package payroll_test

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"rhplus/internal/messaging/kafka"
	"rhplus/internal/payroll"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// memoryRepository keeps entries, details and their references in memory so
// service tests exercise the real recompute path.
type memoryRepository struct {
	entries   map[string]*payroll.PayrollEntry
	details   map[string]*payroll.PayrollEntryDetail
	contracts map[string]*payroll.EntryContract
	periods   map[string]*payroll.EntryPeriod
	items     map[string]*payroll.DetailItem

	createErr error
	calls     []string
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		entries:   map[string]*payroll.PayrollEntry{},
		details:   map[string]*payroll.PayrollEntryDetail{},
		contracts: map[string]*payroll.EntryContract{},
		periods:   map[string]*payroll.EntryPeriod{},
		items:     map[string]*payroll.DetailItem{},
	}
}

func (m *memoryRepository) WithTx(tx *sql.Tx) payroll.Repository { return m }

func (m *memoryRepository) Create(ctx context.Context, entry *payroll.PayrollEntry) error {
	m.calls = append(m.calls, "create")
	if m.createErr != nil {
		return m.createErr
	}
	cp := *entry
	cp.CreatedAt = time.Now()
	m.entries[entry.ID.String()] = &cp
	return nil
}

func (m *memoryRepository) LockByID(ctx context.Context, companyID, id string) (*payroll.PayrollEntry, error) {
	m.calls = append(m.calls, "lock_entry")
	e, ok := m.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memoryRepository) hydrate(e *payroll.PayrollEntry) *payroll.PayrollEntry {
	cp := *e
	if c, ok := m.contracts[e.ContractID.String()]; ok {
		cc := *c
		cp.Contract = &cc
	}
	if p, ok := m.periods[e.PeriodID.String()]; ok {
		pc := *p
		cp.Period = &pc
	}
	cp.Details = nil
	for _, d := range m.sortedDetails(e.ID.String()) {
		dc := *d
		if it, ok := m.items[d.PayrollItemID.String()]; ok {
			ic := *it
			dc.Item = &ic
		}
		cp.Details = append(cp.Details, dc)
	}
	return &cp
}

func (m *memoryRepository) sortedDetails(entryID string) []*payroll.PayrollEntryDetail {
	var out []*payroll.PayrollEntryDetail
	for _, d := range m.details {
		if d.EntryID.String() == entryID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (m *memoryRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*payroll.PayrollEntry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.hydrate(e), nil
}

func (m *memoryRepository) FindAll(ctx context.Context, companyID string, filter payroll.EntryFilter) ([]payroll.PayrollEntry, error) {
	var out []payroll.PayrollEntry
	for _, e := range m.entries {
		if filter.PeriodID != "" && e.PeriodID.String() != filter.PeriodID {
			continue
		}
		if filter.Status == payroll.StatusApproved && !e.IsApproved {
			continue
		}
		if filter.Status == payroll.StatusPending && e.IsApproved {
			continue
		}
		h := m.hydrate(e)
		if filter.EmployeeID != "" && (h.Contract == nil || h.Contract.EmployeeID.String() != filter.EmployeeID) {
			continue
		}
		out = append(out, *h)
	}
	return out, nil
}

func (m *memoryRepository) FindByPeriod(ctx context.Context, companyID, periodID string) ([]payroll.PayrollEntry, error) {
	return m.FindAll(ctx, companyID, payroll.EntryFilter{PeriodID: periodID})
}

func (m *memoryRepository) FindByEmployee(ctx context.Context, companyID, employeeID string) ([]payroll.PayrollEntry, error) {
	return m.FindAll(ctx, companyID, payroll.EntryFilter{EmployeeID: employeeID})
}

func (m *memoryRepository) FindPendingApproval(ctx context.Context, companyID string) ([]payroll.PayrollEntry, error) {
	return m.FindAll(ctx, companyID, payroll.EntryFilter{Status: payroll.StatusPending})
}

func (m *memoryRepository) ExistsForContractPeriod(ctx context.Context, companyID, contractID, periodID string) (bool, error) {
	for _, e := range m.entries {
		if e.ContractID.String() == contractID && e.PeriodID.String() == periodID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) UpdateTotals(ctx context.Context, companyID, id string, totals payroll.Totals) error {
	m.calls = append(m.calls, "update_totals")
	e, ok := m.entries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.TotalEarnings = totals.Earnings
	e.TotalDeductions = totals.Deductions
	e.NetPay = totals.NetPay
	return nil
}

func (m *memoryRepository) MarkApproved(ctx context.Context, companyID, id, actorID string, approvedAt time.Time) error {
	e, ok := m.entries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	actor := uuid.MustParse(actorID)
	e.IsApproved = true
	e.ApprovedBy = &actor
	e.ApprovedAt = &approvedAt
	return nil
}

func (m *memoryRepository) SetPayslip(ctx context.Context, companyID, id, url string, generatedAt time.Time) error {
	e, ok := m.entries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.PayslipURL = &url
	e.PayslipGeneratedAt = &generatedAt
	return nil
}

func (m *memoryRepository) Delete(ctx context.Context, companyID, id string) error {
	if _, ok := m.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.entries, id)
	for k, d := range m.details {
		if d.EntryID.String() == id {
			delete(m.details, k)
		}
	}
	return nil
}

func (m *memoryRepository) FindContract(ctx context.Context, companyID, id string) (*payroll.EntryContract, error) {
	c, ok := m.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memoryRepository) FindPeriod(ctx context.Context, companyID, id string) (*payroll.EntryPeriod, error) {
	p, ok := m.periods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memoryRepository) FindPeriodForShare(ctx context.Context, companyID, id string) (*payroll.EntryPeriod, error) {
	m.calls = append(m.calls, "share_period")
	return m.FindPeriod(ctx, companyID, id)
}

func (m *memoryRepository) FindItem(ctx context.Context, companyID, id string) (*payroll.DetailItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *it
	return &cp, nil
}

func (m *memoryRepository) CreateDetail(ctx context.Context, detail *payroll.PayrollEntryDetail) error {
	m.calls = append(m.calls, "create_detail")
	cp := *detail
	cp.CreatedAt = time.Now().Add(time.Duration(len(m.details)) * time.Microsecond)
	m.details[detail.ID.String()] = &cp
	return nil
}

func (m *memoryRepository) FindDetail(ctx context.Context, companyID, entryID, detailID string) (*payroll.PayrollEntryDetail, error) {
	d, ok := m.details[detailID]
	if !ok || d.EntryID.String() != entryID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memoryRepository) UpdateDetail(ctx context.Context, detail *payroll.PayrollEntryDetail) error {
	m.calls = append(m.calls, "update_detail")
	cp := *detail
	m.details[detail.ID.String()] = &cp
	return nil
}

func (m *memoryRepository) DeleteDetail(ctx context.Context, companyID, entryID, detailID string) error {
	m.calls = append(m.calls, "delete_detail")
	d, ok := m.details[detailID]
	if !ok || d.EntryID.String() != entryID {
		return gorm.ErrRecordNotFound
	}
	delete(m.details, detailID)
	return nil
}

func (m *memoryRepository) ListDetailLines(ctx context.Context, companyID, entryID string) ([]payroll.Line, error) {
	var lines []payroll.Line
	for _, d := range m.sortedDetails(entryID) {
		kind := ""
		if it, ok := m.items[d.PayrollItemID.String()]; ok {
			kind = it.ItemType
		}
		lines = append(lines, payroll.Line{Kind: kind, Amount: d.Amount, Quantity: d.Quantity})
	}
	return lines, nil
}

func (m *memoryRepository) SummarizePeriod(ctx context.Context, companyID, periodID string) (payroll.PeriodTotals, error) {
	t := payroll.PeriodTotals{}
	for _, e := range m.entries {
		if e.PeriodID.String() != periodID {
			continue
		}
		t.EntryCount++
		if e.IsApproved {
			t.ApprovedCount++
		}
		t.TotalBase = t.TotalBase.Add(e.BaseSalary)
		t.TotalEarnings = t.TotalEarnings.Add(e.TotalEarnings)
		t.TotalDeductions = t.TotalDeductions.Add(e.TotalDeductions)
		t.TotalNetPay = t.TotalNetPay.Add(e.NetPay)
	}
	return t, nil
}

func (m *memoryRepository) SummarizeEmployee(ctx context.Context, companyID, employeeID string) (payroll.EmployeeTotals, error) {
	t := payroll.EmployeeTotals{}
	for _, e := range m.entries {
		c, ok := m.contracts[e.ContractID.String()]
		if !ok || c.EmployeeID.String() != employeeID {
			continue
		}
		t.EntryCount++
		if e.IsApproved {
			t.ApprovedCount++
		}
		t.TotalEarnings = t.TotalEarnings.Add(e.TotalEarnings)
		t.TotalDeductions = t.TotalDeductions.Add(e.TotalDeductions)
		t.TotalNetPay = t.TotalNetPay.Add(e.NetPay)
	}
	return t, nil
}

type fakeOutboxRepository struct {
	events    []kafka.OutboxEvent
	createErr error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func (f *fakeOutboxRepository) eventTypes() []string {
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.EventType)
	}
	return out
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}
