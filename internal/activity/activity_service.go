package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	activityerrors "rhplus/internal/activity/errors"
	"rhplus/internal/events"
	"rhplus/internal/shared/contextutil"
	"rhplus/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

//go:generate mockgen -source=activity_service.go -destination=mock/activity_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, companyID string, req RecordRequest) error
	RecordPayrollEvent(ctx context.Context, evt events.PayrollLifecycleEvent) error
	ListRecent(ctx context.Context, companyID string, filter ListFilter) ([]ActivityResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("activity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activity.service")
	}

	return &service{repo: repo, logger: l, now: time.Now}
}

// Record appends an activity. A repeated SourceKey is ignored.
func (s *service) Record(ctx context.Context, companyID string, req RecordRequest) error {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return activityerrors.ErrInvalidCompanyID
	}
	if strings.TrimSpace(req.Title) == "" {
		return activityerrors.ErrTitleRequired
	}
	if _, ok := validTypes[req.Type]; !ok {
		return activityerrors.ErrInvalidType
	}

	a := &Activity{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Timestamp:   s.now().UTC(),
	}
	if actor, err := uuid.Parse(req.CreatedBy); err == nil {
		a.CreatedBy = &actor
	}
	if req.SourceKey != "" {
		key := req.SourceKey
		a.SourceKey = &key
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if dberr.IsUniqueViolation(err, "uq_activity_source") {
			contextutil.GetLogger(ctx, s.logger).Debug("activity already recorded",
				zap.String("source_key", req.SourceKey),
			)
			return nil
		}
		return err
	}

	return nil
}

func (s *service) RecordPayrollEvent(ctx context.Context, evt events.PayrollLifecycleEvent) error {
	var title, description, aggregateID string

	switch evt.EventType {
	case events.EventPayrollEntryCreated:
		title = "Liquidación de nómina creada"
		description = fmt.Sprintf("Se creó la liquidación del período %s.", periodLabel(evt))
		aggregateID = evt.EntryID
	case events.EventPayrollEntryApproved:
		title = "Liquidación de nómina aprobada"
		description = fmt.Sprintf("Se aprobó la liquidación del período %s con neto a pagar %s.", periodLabel(evt), evt.NetPay)
		aggregateID = evt.EntryID
	case events.EventPayrollPeriodClosed:
		title = "Período de nómina cerrado"
		description = fmt.Sprintf("Se cerró el período %s.", periodLabel(evt))
		aggregateID = evt.PeriodID
	default:
		contextutil.GetLogger(ctx, s.logger).Warn("unknown payroll event type", zap.String("event_type", evt.EventType))
		return nil
	}

	return s.Record(ctx, evt.CompanyID, RecordRequest{
		Title:       title,
		Description: description,
		Type:        TypePayroll,
		CreatedBy:   evt.ActorID,
		SourceKey:   evt.EventType + ":" + aggregateID,
	})
}

func periodLabel(evt events.PayrollLifecycleEvent) string {
	if evt.PeriodName != "" {
		return evt.PeriodName
	}
	return evt.PeriodID
}

func (s *service) ListRecent(ctx context.Context, companyID string, filter ListFilter) ([]ActivityResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, activityerrors.ErrInvalidCompanyID
	}

	filter.Type = strings.ToLower(strings.TrimSpace(filter.Type))
	if filter.Type != "" {
		if _, ok := validTypes[filter.Type]; !ok {
			return nil, activityerrors.ErrInvalidType
		}
	}

	switch {
	case filter.Limit == 0:
		filter.Limit = defaultLimit
	case filter.Limit < 0 || filter.Limit > maxLimit:
		return nil, activityerrors.ErrInvalidLimit
	}

	activities, err := s.repo.FindRecent(ctx, companyID, filter.Type, filter.Limit)
	if err != nil {
		return nil, err
	}

	resp := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		item := ActivityResponse{
			ID:          a.ID.String(),
			Title:       a.Title,
			Description: a.Description,
			Type:        a.Type,
			Timestamp:   a.Timestamp.Format(time.RFC3339),
		}
		if a.CreatedBy != nil {
			v := a.CreatedBy.String()
			item.CreatedBy = &v
		}
		resp = append(resp, item)
	}
	return resp, nil
}
