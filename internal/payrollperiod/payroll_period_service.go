package payrollperiod

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"rhplus/internal/events"
	"rhplus/internal/messaging/kafka"
	payrollperioderrors "rhplus/internal/payrollperiod/errors"
	"rhplus/internal/shared/contextutil"
	"rhplus/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout      = "2006-01-02"
	aggregatePeriod = "payroll_period"
	opClose         = "period_close"
)

//go:generate mockgen -source=payroll_period_service.go -destination=mock/payroll_period_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreatePeriodRequest) (PeriodResponse, error)
	GetAll(ctx context.Context, companyID string) ([]PeriodResponse, error)
	GetOpen(ctx context.Context, companyID string) ([]PeriodResponse, error)
	GetCurrent(ctx context.Context, companyID string) (PeriodResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PeriodResponse, error)
	Close(ctx context.Context, companyID, actorID, id string) (PeriodResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payrollperiod.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollperiod.service")
	}

	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreatePeriodRequest) (PeriodResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PeriodResponse{}, payrollperioderrors.ErrInvalidCompanyID
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(req.StartDate))
	if err != nil {
		return PeriodResponse{}, payrollperioderrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(req.EndDate))
	if err != nil {
		return PeriodResponse{}, payrollperioderrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return PeriodResponse{}, payrollperioderrors.ErrInvalidDateRange
	}

	periodType := req.PeriodType
	if periodType == "" {
		periodType = TypeMonthly
	}

	p := &PayrollPeriod{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		Name:       strings.TrimSpace(req.Name),
		PeriodType: periodType,
		StartDate:  start,
		EndDate:    end,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll period created",
		zap.String("period_id", p.ID.String()),
		zap.String("name", p.Name),
	)

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]PeriodResponse, error) {
	periods, err := s.repo.FindAll(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(periods), nil
}

func (s *service) GetOpen(ctx context.Context, companyID string) ([]PeriodResponse, error) {
	periods, err := s.repo.FindOpen(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(periods), nil
}

func (s *service) GetCurrent(ctx context.Context, companyID string) (PeriodResponse, error) {
	p, err := s.repo.FindCurrent(ctx, companyID)
	if err != nil {
		if mapRepositoryError(err) == payrollperioderrors.ErrPeriodNotFound {
			return PeriodResponse{}, payrollperioderrors.ErrNoOpenPeriod
		}
		return PeriodResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PeriodResponse, error) {
	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

// Close seals the period. Every entry must already be approved; the close
// and its outbox event commit together.
func (s *service) Close(ctx context.Context, companyID, actorID, id string) (resp PeriodResponse, err error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("company_id", companyID),
		zap.String("period_id", id),
	)
	defer func() { metrics.ObservePayrollOperation(opClose, err) }()

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PeriodResponse{}, payrollperioderrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.LockByID(ctx, companyID, id)
	if err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}
	if p.IsClosed {
		return PeriodResponse{}, payrollperioderrors.ErrPeriodAlreadyClosed
	}

	pending, err := qtx.CountPendingEntries(ctx, companyID, id)
	if err != nil {
		return PeriodResponse{}, err
	}
	if pending > 0 {
		return PeriodResponse{}, payrollperioderrors.ErrPeriodHasPendingEntries.WithDetails(map[string]int64{
			"pending_entries": pending,
		})
	}

	closedAt := time.Now().UTC()
	if err := qtx.MarkClosed(ctx, companyID, id, actorID, closedAt); err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}

	requestID := contextutil.GetRequestID(ctx)
	evt, err := kafka.NewEvent(requestID, aggregatePeriod, id, events.EventPayrollPeriodClosed, events.PayrollLifecycleTopic,
		events.PayrollLifecycleEvent{
			EventType:  events.EventPayrollPeriodClosed,
			RequestID:  requestID,
			CompanyID:  companyID,
			PeriodID:   id,
			PeriodName: p.Name,
			ActorID:    actorID,
			OccurredAt: closedAt,
		})
	if err != nil {
		return PeriodResponse{}, err
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, evt); err != nil {
		log.Error("enqueue period closed event failed", zap.Error(err))
		return PeriodResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PeriodResponse{}, err
	}

	p.IsClosed = true
	p.ClosedBy = &actorUUID
	p.ClosedAt = &closedAt

	log.Info("payroll period closed", zap.String("actor_id", actorID))

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return mapRepositoryError(tx.Commit())
}

func mapToResponse(p PayrollPeriod) PeriodResponse {
	resp := PeriodResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		PeriodType: p.PeriodType,
		StartDate:  p.StartDate.Format(dateLayout),
		EndDate:    p.EndDate.Format(dateLayout),
		IsClosed:   p.IsClosed,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
	if p.ClosedBy != nil {
		v := p.ClosedBy.String()
		resp.ClosedBy = &v
	}
	if p.ClosedAt != nil {
		v := p.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &v
	}
	return resp
}

func mapToListResponse(periods []PayrollPeriod) []PeriodResponse {
	resp := make([]PeriodResponse, 0, len(periods))
	for _, p := range periods {
		resp = append(resp, mapToResponse(p))
	}
	return resp
}
