package payroll

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"rhplus/internal/events"
	"rhplus/internal/messaging/kafka"
	payrollerrors "rhplus/internal/payroll/errors"
	"rhplus/internal/shared/contextutil"
	"rhplus/internal/shared/metrics"
	"rhplus/internal/shared/money"
	"rhplus/internal/shared/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	StatusApproved = "approved"
	StatusPending  = "pending"

	aggregateEntry = "payroll_entry"
	maxNotesLength = 255

	payslipLinkTTL     = 7 * 24 * time.Hour
	payslipDownloadTTL = 15 * time.Minute
)

const (
	opCreateEntry     = "entry_create"
	opAddDetail       = "detail_add"
	opUpdateDetail    = "detail_update"
	opRemoveDetail    = "detail_remove"
	opApprove         = "entry_approve"
	opDelete          = "entry_delete"
	opGeneratePayslip = "payslip_generate"
)

var one = decimal.NewFromInt(1)

// PayslipKey is the storage path of an entry's payslip.
func PayslipKey(companyID, entryID string) string {
	return fmt.Sprintf("payslips/%s/%s.pdf", companyID, entryID)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreateEntry(ctx context.Context, companyID, actorID string, req CreateEntryRequest) (EntryResponse, error)
	AddDetail(ctx context.Context, companyID, entryID string, req DetailRequest) (EntryResponse, error)
	UpdateDetail(ctx context.Context, companyID, entryID, detailID string, req UpdateDetailRequest) (EntryResponse, error)
	RemoveDetail(ctx context.Context, companyID, entryID, detailID string) (EntryResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string) (EntryResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	GetAll(ctx context.Context, companyID string, filter EntryFilter) ([]EntryResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EntryResponse, error)
	GetBreakdown(ctx context.Context, companyID, id string) (BreakdownResponse, error)
	GetByPeriod(ctx context.Context, companyID, periodID string) ([]EntryResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) ([]EntryResponse, error)
	GetPendingApproval(ctx context.Context, companyID string) ([]EntryResponse, error)
	GetPeriodSummary(ctx context.Context, companyID, periodID string) (PeriodSummaryResponse, error)
	GetEmployeeSummary(ctx context.Context, companyID, employeeID string) (EmployeeSummaryResponse, error)
	ExportPeriod(ctx context.Context, companyID, periodID string) (ExportFile, error)

	GeneratePayslip(ctx context.Context, companyID, entryID string) (EntryResponse, error)
	PayslipURL(ctx context.Context, companyID, entryID string) (string, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	files      storage.FileStorage
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	files storage.FileStorage,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}

	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		files:      files,
		logger:     l,
	}
}

// validDetail is a detail request that passed field validation.
type validDetail struct {
	itemID   uuid.UUID
	amount   decimal.Decimal
	quantity decimal.Decimal
	notes    *string
}

func (s *service) CreateEntry(ctx context.Context, companyID, actorID string, req CreateEntryRequest) (resp EntryResponse, err error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("company_id", companyID))
	defer func() { metrics.ObservePayrollOperation(opCreateEntry, err) }()

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EntryResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return EntryResponse{}, payrollerrors.ErrInvalidActorID
	}
	contractUUID, err := uuid.Parse(req.ContractID)
	if err != nil {
		return EntryResponse{}, payrollerrors.ErrContractNotFound
	}
	periodUUID, err := uuid.Parse(req.PeriodID)
	if err != nil {
		return EntryResponse{}, payrollerrors.ErrPeriodNotFound
	}
	if req.BaseSalary != nil && (req.BaseSalary.IsNegative() ||
		!money.HasValidScale(*req.BaseSalary) ||
		!money.Fits(*req.BaseSalary, money.PrecisionTotal)) {
		return EntryResponse{}, payrollerrors.ErrInvalidBaseSalary
	}

	details := make([]validDetail, 0, len(req.Details))
	for _, d := range req.Details {
		vd, err := validateDetail(d.PayrollItemID, d.Amount, d.Quantity, d.Notes)
		if err != nil {
			return EntryResponse{}, err
		}
		details = append(details, vd)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.FindPeriodForShare(ctx, companyID, req.PeriodID)
	if err != nil {
		return EntryResponse{}, mapNotFound(err, payrollerrors.ErrPeriodNotFound)
	}
	if period.IsClosed {
		return EntryResponse{}, payrollerrors.ErrPeriodClosed
	}

	contract, err := qtx.FindContract(ctx, companyID, req.ContractID)
	if err != nil {
		return EntryResponse{}, mapNotFound(err, payrollerrors.ErrContractNotFound)
	}
	if !contract.IsActive {
		return EntryResponse{}, payrollerrors.ErrContractInactive
	}

	exists, err := qtx.ExistsForContractPeriod(ctx, companyID, req.ContractID, req.PeriodID)
	if err != nil {
		return EntryResponse{}, err
	}
	if exists {
		return EntryResponse{}, payrollerrors.ErrEntryAlreadyExists
	}

	for _, d := range details {
		if err := s.checkItem(ctx, qtx, companyID, d.itemID.String()); err != nil {
			return EntryResponse{}, err
		}
	}

	baseSalary := contract.Salary
	if req.BaseSalary != nil && !req.BaseSalary.IsZero() {
		baseSalary = *req.BaseSalary
	}

	entry := &PayrollEntry{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		ContractID:      contractUUID,
		PeriodID:        periodUUID,
		BaseSalary:      baseSalary,
		TotalEarnings:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		NetPay:          decimal.Zero,
		CreatedBy:       actorUUID,
	}
	if err := qtx.Create(ctx, entry); err != nil {
		log.Error("create payroll entry persist failed", zap.String("contract_id", req.ContractID), zap.Error(err))
		return EntryResponse{}, mapRepositoryError(err)
	}

	for _, d := range details {
		if err := qtx.CreateDetail(ctx, newDetail(companyUUID, entry.ID, d)); err != nil {
			return EntryResponse{}, mapRepositoryError(err)
		}
	}

	if _, err := s.recompute(ctx, qtx, companyID, entry.ID.String()); err != nil {
		return EntryResponse{}, err
	}

	saved, err := qtx.FindByIDAndCompany(ctx, companyID, entry.ID.String())
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycle(ctx, tx, events.EventPayrollEntryCreated, saved, actorID, time.Now().UTC()); err != nil {
		log.Error("enqueue entry created event failed", zap.Error(err))
		return EntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}

	log.Info("payroll entry created",
		zap.String("entry_id", saved.ID.String()),
		zap.String("period_id", req.PeriodID),
		zap.String("net_pay", money.Format(saved.NetPay)),
	)

	return mapToResponse(*saved, true), nil
}

func (s *service) AddDetail(ctx context.Context, companyID, entryID string, req DetailRequest) (resp EntryResponse, err error) {
	defer func() { metrics.ObservePayrollOperation(opAddDetail, err) }()

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EntryResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	vd, err := validateDetail(req.PayrollItemID, req.Amount, req.Quantity, req.Notes)
	if err != nil {
		return EntryResponse{}, err
	}

	return s.mutateDetails(ctx, companyID, entryID, func(qtx Repository, entry *PayrollEntry) error {
		if err := s.checkItem(ctx, qtx, companyID, vd.itemID.String()); err != nil {
			return err
		}
		return mapRepositoryError(qtx.CreateDetail(ctx, newDetail(companyUUID, entry.ID, vd)))
	})
}

func (s *service) UpdateDetail(ctx context.Context, companyID, entryID, detailID string, req UpdateDetailRequest) (resp EntryResponse, err error) {
	defer func() { metrics.ObservePayrollOperation(opUpdateDetail, err) }()

	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return EntryResponse{}, err
		}
	}
	if req.Quantity != nil {
		if err := validateQuantity(*req.Quantity); err != nil {
			return EntryResponse{}, err
		}
	}
	if req.Notes != nil && len([]rune(*req.Notes)) > maxNotesLength {
		return EntryResponse{}, payrollerrors.ErrNotesTooLong
	}

	return s.mutateDetails(ctx, companyID, entryID, func(qtx Repository, entry *PayrollEntry) error {
		detail, err := qtx.FindDetail(ctx, companyID, entryID, detailID)
		if err != nil {
			return mapNotFound(err, payrollerrors.ErrDetailNotFound)
		}

		if req.Amount != nil {
			detail.Amount = *req.Amount
		}
		if req.Quantity != nil {
			detail.Quantity = *req.Quantity
		}
		if req.Notes != nil {
			detail.Notes = req.Notes
		}

		return mapRepositoryError(qtx.UpdateDetail(ctx, detail))
	})
}

func (s *service) RemoveDetail(ctx context.Context, companyID, entryID, detailID string) (resp EntryResponse, err error) {
	defer func() { metrics.ObservePayrollOperation(opRemoveDetail, err) }()

	return s.mutateDetails(ctx, companyID, entryID, func(qtx Repository, entry *PayrollEntry) error {
		if err := qtx.DeleteDetail(ctx, companyID, entryID, detailID); err != nil {
			return mapNotFound(err, payrollerrors.ErrDetailNotFound)
		}
		return nil
	})
}

// mutateDetails runs write against a locked, still editable entry and
// recomputes the totals in the same transaction.
func (s *service) mutateDetails(
	ctx context.Context,
	companyID, entryID string,
	write func(qtx Repository, entry *PayrollEntry) error,
) (EntryResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entry, err := s.lockEditable(ctx, qtx, companyID, entryID)
	if err != nil {
		return EntryResponse{}, err
	}

	if err := write(qtx, entry); err != nil {
		return EntryResponse{}, err
	}

	totals, err := s.recompute(ctx, qtx, companyID, entryID)
	if err != nil {
		return EntryResponse{}, err
	}

	saved, err := qtx.FindByIDAndCompany(ctx, companyID, entryID)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EntryResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Debug("payroll entry recomputed",
		zap.String("entry_id", entryID),
		zap.String("total_earnings", money.Format(totals.Earnings)),
		zap.String("total_deductions", money.Format(totals.Deductions)),
		zap.String("net_pay", money.Format(totals.NetPay)),
	)

	return mapToResponse(*saved, true), nil
}

// lockEditable locks the entry row and rejects approved entries and
// entries whose period is closed.
func (s *service) lockEditable(ctx context.Context, qtx Repository, companyID, entryID string) (*PayrollEntry, error) {
	entry, err := qtx.LockByID(ctx, companyID, entryID)
	if err != nil {
		return nil, mapNotFound(err, payrollerrors.ErrEntryNotFound)
	}
	if entry.IsApproved {
		return nil, payrollerrors.ErrEntryLocked
	}

	period, err := qtx.FindPeriodForShare(ctx, companyID, entry.PeriodID.String())
	if err != nil {
		return nil, mapNotFound(err, payrollerrors.ErrPeriodNotFound)
	}
	if period.IsClosed {
		return nil, payrollerrors.ErrPeriodClosed
	}

	return entry, nil
}

// recompute derives the totals from every detail currently stored for the
// entry and persists them.
func (s *service) recompute(ctx context.Context, qtx Repository, companyID, entryID string) (Totals, error) {
	lines, err := qtx.ListDetailLines(ctx, companyID, entryID)
	if err != nil {
		return Totals{}, err
	}

	totals := ComputeTotals(lines)
	if !totals.fit() {
		return Totals{}, payrollerrors.ErrTotalsOutOfRange
	}
	if err := qtx.UpdateTotals(ctx, companyID, entryID, totals); err != nil {
		return Totals{}, mapRepositoryError(err)
	}
	return totals, nil
}

func (s *service) checkItem(ctx context.Context, qtx Repository, companyID, itemID string) error {
	item, err := qtx.FindItem(ctx, companyID, itemID)
	if err != nil {
		return mapNotFound(err, payrollerrors.ErrItemNotFound)
	}
	if !item.IsActive {
		return payrollerrors.ErrItemInactive
	}
	return nil
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string) (resp EntryResponse, err error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("company_id", companyID),
		zap.String("entry_id", id),
	)
	defer func() { metrics.ObservePayrollOperation(opApprove, err) }()

	if _, err := uuid.Parse(actorID); err != nil {
		return EntryResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entry, err := qtx.LockByID(ctx, companyID, id)
	if err != nil {
		return EntryResponse{}, mapNotFound(err, payrollerrors.ErrEntryNotFound)
	}
	if entry.IsApproved {
		return EntryResponse{}, payrollerrors.ErrEntryAlreadyApproved
	}

	period, err := qtx.FindPeriodForShare(ctx, companyID, entry.PeriodID.String())
	if err != nil {
		return EntryResponse{}, mapNotFound(err, payrollerrors.ErrPeriodNotFound)
	}
	if period.IsClosed {
		return EntryResponse{}, payrollerrors.ErrPeriodClosed
	}

	approvedAt := time.Now().UTC()
	if err := qtx.MarkApproved(ctx, companyID, id, actorID, approvedAt); err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}

	saved, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycle(ctx, tx, events.EventPayrollEntryApproved, saved, actorID, approvedAt); err != nil {
		log.Error("enqueue entry approved event failed", zap.Error(err))
		return EntryResponse{}, err
	}
	if err := s.enqueuePayslipRequest(ctx, tx, companyID, id, actorID, approvedAt); err != nil {
		log.Error("enqueue payslip request failed", zap.Error(err))
		return EntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EntryResponse{}, err
	}

	log.Info("payroll entry approved", zap.String("actor_id", actorID))

	return mapToResponse(*saved, true), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) (err error) {
	defer func() { metrics.ObservePayrollOperation(opDelete, err) }()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := s.lockEditable(ctx, qtx, companyID, id); err != nil {
		return err
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) GetAll(ctx context.Context, companyID string, filter EntryFilter) ([]EntryResponse, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	if filter.Status != "" && filter.Status != StatusApproved && filter.Status != StatusPending {
		return nil, payrollerrors.ErrInvalidStatusFilter
	}

	entries, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(entries), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EntryResponse, error) {
	entry, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*entry, true), nil
}

func (s *service) GetBreakdown(ctx context.Context, companyID, id string) (BreakdownResponse, error) {
	entry, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return BreakdownResponse{}, mapRepositoryError(err)
	}
	return buildBreakdown(entry), nil
}

func (s *service) GetByPeriod(ctx context.Context, companyID, periodID string) ([]EntryResponse, error) {
	if strings.TrimSpace(periodID) == "" {
		return nil, payrollerrors.ErrPeriodRequired
	}

	entries, err := s.repo.FindByPeriod(ctx, companyID, periodID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(entries), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) ([]EntryResponse, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, payrollerrors.ErrEmployeeRequired
	}

	entries, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(entries), nil
}

func (s *service) GetPendingApproval(ctx context.Context, companyID string) ([]EntryResponse, error) {
	entries, err := s.repo.FindPendingApproval(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(entries), nil
}

func (s *service) GetPeriodSummary(ctx context.Context, companyID, periodID string) (PeriodSummaryResponse, error) {
	period, err := s.repo.FindPeriod(ctx, companyID, periodID)
	if err != nil {
		return PeriodSummaryResponse{}, mapNotFound(err, payrollerrors.ErrPeriodNotFound)
	}

	totals, err := s.repo.SummarizePeriod(ctx, companyID, periodID)
	if err != nil {
		return PeriodSummaryResponse{}, err
	}

	return PeriodSummaryResponse{
		PeriodID:        period.ID.String(),
		PeriodName:      period.Name,
		IsClosed:        period.IsClosed,
		EntryCount:      totals.EntryCount,
		ApprovedCount:   totals.ApprovedCount,
		PendingCount:    totals.EntryCount - totals.ApprovedCount,
		TotalBase:       money.Format(totals.TotalBase),
		TotalEarnings:   money.Format(totals.TotalEarnings),
		TotalDeductions: money.Format(totals.TotalDeductions),
		TotalNetPay:     money.Format(totals.TotalNetPay),
	}, nil
}

func (s *service) GetEmployeeSummary(ctx context.Context, companyID, employeeID string) (EmployeeSummaryResponse, error) {
	if strings.TrimSpace(employeeID) == "" {
		return EmployeeSummaryResponse{}, payrollerrors.ErrEmployeeRequired
	}

	totals, err := s.repo.SummarizeEmployee(ctx, companyID, employeeID)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}

	return EmployeeSummaryResponse{
		EmployeeID:      employeeID,
		EntryCount:      totals.EntryCount,
		ApprovedCount:   totals.ApprovedCount,
		TotalEarnings:   money.Format(totals.TotalEarnings),
		TotalDeductions: money.Format(totals.TotalDeductions),
		TotalNetPay:     money.Format(totals.TotalNetPay),
	}, nil
}

func (s *service) ExportPeriod(ctx context.Context, companyID, periodID string) (ExportFile, error) {
	period, err := s.repo.FindPeriod(ctx, companyID, periodID)
	if err != nil {
		return ExportFile{}, mapNotFound(err, payrollerrors.ErrPeriodNotFound)
	}

	entries, err := s.repo.FindByPeriod(ctx, companyID, periodID)
	if err != nil {
		return ExportFile{}, mapRepositoryError(err)
	}

	f, err := buildPeriodRegister(period, entries)
	if err != nil {
		return ExportFile{}, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return ExportFile{}, fmt.Errorf("write payroll register: %w", err)
	}

	return ExportFile{
		Filename: fmt.Sprintf("nomina-%s.xlsx", period.StartDate.Format("2006-01")),
		Content:  buf.Bytes(),
	}, nil
}

// GeneratePayslip renders the payslip of an approved entry, stores it and
// records where it lives.
func (s *service) GeneratePayslip(ctx context.Context, companyID, entryID string) (resp EntryResponse, err error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("entry_id", entryID))
	defer func() { metrics.ObservePayrollOperation(opGeneratePayslip, err) }()

	entry, err := s.repo.FindByIDAndCompany(ctx, companyID, entryID)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}
	if !entry.IsApproved {
		return EntryResponse{}, payrollerrors.ErrEntryNotApproved
	}

	pdf, err := renderPayslipPDF(newPayslipData(entry))
	if err != nil {
		return EntryResponse{}, err
	}

	key, err := s.files.Upload(ctx, bytes.NewReader(pdf), int64(len(pdf)), PayslipKey(companyID, entryID), payslipContentType)
	if err != nil {
		log.Error("store payslip failed", zap.Error(err))
		return EntryResponse{}, err
	}
	url, err := s.files.GetURL(ctx, key, payslipLinkTTL)
	if err != nil {
		return EntryResponse{}, err
	}

	generatedAt := time.Now().UTC()
	if err := s.repo.SetPayslip(ctx, companyID, entryID, url, generatedAt); err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}
	entry.PayslipURL = &url
	entry.PayslipGeneratedAt = &generatedAt

	log.Info("payslip generated", zap.String("key", key), zap.Int("bytes", len(pdf)))

	return mapToResponse(*entry, false), nil
}

// PayslipURL returns a fresh link to a generated payslip.
func (s *service) PayslipURL(ctx context.Context, companyID, entryID string) (string, error) {
	entry, err := s.repo.FindByIDAndCompany(ctx, companyID, entryID)
	if err != nil {
		return "", mapRepositoryError(err)
	}
	if entry.PayslipGeneratedAt == nil {
		return "", payrollerrors.ErrPayslipNotGenerated
	}

	return s.files.GetURL(ctx, PayslipKey(companyID, entryID), payslipDownloadTTL)
}

func (s *service) enqueueLifecycle(ctx context.Context, tx *sql.Tx, eventType string, entry *PayrollEntry, actorID string, at time.Time) error {
	requestID := contextutil.GetRequestID(ctx)
	payload := events.PayrollLifecycleEvent{
		EventType:  eventType,
		RequestID:  requestID,
		CompanyID:  entry.CompanyID.String(),
		EntryID:    entry.ID.String(),
		PeriodID:   entry.PeriodID.String(),
		ContractID: entry.ContractID.String(),
		NetPay:     money.Format(entry.NetPay),
		ActorID:    actorID,
		OccurredAt: at,
	}
	if entry.Period != nil {
		payload.PeriodName = entry.Period.Name
	}
	if entry.Contract != nil {
		payload.EmployeeID = entry.Contract.EmployeeID.String()
	}

	evt, err := kafka.NewEvent(requestID, aggregateEntry, entry.ID.String(), eventType, events.PayrollLifecycleTopic, payload)
	if err != nil {
		return err
	}
	return s.outboxRepo.WithTx(tx).Create(ctx, evt)
}

func (s *service) enqueuePayslipRequest(ctx context.Context, tx *sql.Tx, companyID, entryID, actorID string, at time.Time) error {
	requestID := contextutil.GetRequestID(ctx)
	evt, err := kafka.NewEvent(requestID, aggregateEntry, entryID,
		events.EventPayrollPayslipRequested, events.PayrollPayslipRequestedTopic,
		events.PayrollPayslipRequestedEvent{
			EventType:   events.EventPayrollPayslipRequested,
			RequestID:   requestID,
			EntryID:     entryID,
			CompanyID:   companyID,
			RequestedBy: actorID,
			OccurredAt:  at,
		})
	if err != nil {
		return err
	}
	return s.outboxRepo.WithTx(tx).Create(ctx, evt)
}

func validateDetail(itemID string, amount, quantity *decimal.Decimal, notes *string) (validDetail, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return validDetail{}, payrollerrors.ErrItemNotFound
	}
	if amount == nil {
		return validDetail{}, payrollerrors.ErrInvalidAmount
	}
	if err := validateAmount(*amount); err != nil {
		return validDetail{}, err
	}

	qty := one
	if quantity != nil {
		if err := validateQuantity(*quantity); err != nil {
			return validDetail{}, err
		}
		qty = *quantity
	}

	if notes != nil && len([]rune(*notes)) > maxNotesLength {
		return validDetail{}, payrollerrors.ErrNotesTooLong
	}

	return validDetail{itemID: id, amount: *amount, quantity: qty, notes: notes}, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() || !money.HasValidScale(amount) || !money.Fits(amount, money.PrecisionAmount) {
		return payrollerrors.ErrInvalidAmount
	}
	return nil
}

func validateQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() || !money.HasValidScale(quantity) || !money.Fits(quantity, money.PrecisionQuantity) {
		return payrollerrors.ErrInvalidQuantity
	}
	return nil
}

func newDetail(companyID, entryID uuid.UUID, d validDetail) *PayrollEntryDetail {
	return &PayrollEntryDetail{
		ID:            uuid.New(),
		CompanyID:     companyID,
		EntryID:       entryID,
		PayrollItemID: d.itemID,
		Amount:        d.amount,
		Quantity:      d.quantity,
		Notes:         d.notes,
	}
}
