package contract

import (
	"context"
	"database/sql"
	"strings"
	"time"

	contracterrors "rhplus/internal/contract/errors"
	"rhplus/internal/shared/contextutil"
	"rhplus/internal/shared/counter"
	"rhplus/internal/shared/metrics"
	"rhplus/internal/shared/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout     = "2006-01-02"
	numberPrefix   = "CTR"
	opActivate     = "contract_activate"
	opCreateActive = "contract_create"
)

//go:generate mockgen -source=contract_service.go -destination=mock/contract_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateContractRequest) (ContractResponse, error)
	Activate(ctx context.Context, companyID, id string) (ContractResponse, error)
	Deactivate(ctx context.Context, companyID, id string) (ContractResponse, error)
	GetAll(ctx context.Context, companyID string) ([]ContractResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) ([]ContractResponse, error)
	GetCurrent(ctx context.Context, companyID, employeeID string) (ContractResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ContractResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	counterRepo counter.Repository
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("contract.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contract.service")
	}

	return &service{
		db:          db,
		repo:        repo,
		counterRepo: counterRepo,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateContractRequest) (resp ContractResponse, err error) {
	log := contextutil.GetLogger(ctx, s.logger)
	defer func() { metrics.ObservePayrollOperation(opCreateActive, err) }()

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrEmployeeNotFound
	}

	startDate, endDate, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return ContractResponse{}, err
	}
	if req.Salary == nil ||
		!req.Salary.IsPositive() ||
		!money.HasValidScale(*req.Salary) ||
		!money.Fits(*req.Salary, money.PrecisionAmount) {
		return ContractResponse{}, contracterrors.ErrInvalidSalary
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ContractResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return ContractResponse{}, err
	}
	if !ok {
		return ContractResponse{}, contracterrors.ErrEmployeeNotFound
	}

	seq, err := s.counterRepo.WithTx(tx).GetNextValue(ctx, companyID, counter.TypeContract)
	if err != nil {
		log.Error("generate contract number failed", zap.String("company_id", companyID), zap.Error(err))
		return ContractResponse{}, err
	}

	c := &Contract{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeID:     employeeUUID,
		ContractNumber: counter.FormatNumber(numberPrefix, seq),
		ContractType:   req.ContractType,
		StartDate:      startDate,
		EndDate:        endDate,
		Salary:         *req.Salary,
		Currency:       orDefault(req.Currency, CurrencyCOP),
		Position:       strings.TrimSpace(req.Position),
		Department:     strings.TrimSpace(req.Department),
		WorkSchedule:   orDefault(req.WorkSchedule, ScheduleFullTime),
		IsActive:       isActive,
		CreatedBy:      actorUUID,
	}

	if isActive {
		if _, err := s.clearActive(ctx, qtx, companyID, req.EmployeeID, ""); err != nil {
			return ContractResponse{}, err
		}
	}

	if err := qtx.Create(ctx, c); err != nil {
		log.Error("create contract persist failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return ContractResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}

	log.Info("contract created",
		zap.String("contract_id", c.ID.String()),
		zap.String("contract_number", c.ContractNumber),
		zap.Bool("is_active", c.IsActive),
	)

	return mapToResponse(*c), nil
}

// Activate makes the contract the employee's only active one. Activating an
// already active contract is a no-op.
func (s *service) Activate(ctx context.Context, companyID, id string) (resp ContractResponse, err error) {
	log := contextutil.GetLogger(ctx, s.logger)
	defer func() { metrics.ObservePayrollOperation(opActivate, err) }()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ContractResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}

	deactivated, err := s.clearActive(ctx, qtx, companyID, c.EmployeeID.String(), c.ID.String())
	if err != nil {
		return ContractResponse{}, err
	}

	if !c.IsActive {
		if err := qtx.SetActive(ctx, companyID, id, true); err != nil {
			return ContractResponse{}, mapRepositoryError(err)
		}
		c.IsActive = true
	}

	if err := tx.Commit(); err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}

	log.Info("contract activated",
		zap.String("contract_id", id),
		zap.String("employee_id", c.EmployeeID.String()),
		zap.Int64("deactivated", deactivated),
	)

	return mapToResponse(*c), nil
}

func (s *service) Deactivate(ctx context.Context, companyID, id string) (ContractResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ContractResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}

	if c.IsActive {
		if err := qtx.SetActive(ctx, companyID, id, false); err != nil {
			return ContractResponse{}, mapRepositoryError(err)
		}
		c.IsActive = false
	}

	if err := tx.Commit(); err != nil {
		return ContractResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]ContractResponse, error) {
	contracts, err := s.repo.FindAllActive(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(contracts), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) ([]ContractResponse, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, contracterrors.ErrEmployeeRequired
	}

	contracts, err := s.repo.FindActiveByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(contracts), nil
}

func (s *service) GetCurrent(ctx context.Context, companyID, employeeID string) (ContractResponse, error) {
	if strings.TrimSpace(employeeID) == "" {
		return ContractResponse{}, contracterrors.ErrEmployeeRequired
	}

	c, err := s.repo.FindCurrentByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if mapped := mapRepositoryError(err); mapped == contracterrors.ErrContractNotFound {
			return ContractResponse{}, contracterrors.ErrNoCurrentContract
		}
		return ContractResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*c), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ContractResponse, error) {
	c, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*c), nil
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

// clearActive locks the employee's contracts and deactivates every active
// one except exceptID.
func (s *service) clearActive(ctx context.Context, qtx Repository, companyID, employeeID, exceptID string) (int64, error) {
	if _, err := qtx.LockByEmployee(ctx, companyID, employeeID); err != nil {
		return 0, err
	}

	n, err := qtx.DeactivateOthers(ctx, companyID, employeeID, exceptID)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	return n, nil
}

func parseDates(start string, end *string) (time.Time, *time.Time, error) {
	startDate, err := time.Parse(dateLayout, strings.TrimSpace(start))
	if err != nil {
		return time.Time{}, nil, contracterrors.ErrInvalidDateFormat
	}

	if end == nil || strings.TrimSpace(*end) == "" {
		return startDate, nil, nil
	}

	endDate, err := time.Parse(dateLayout, strings.TrimSpace(*end))
	if err != nil {
		return time.Time{}, nil, contracterrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return time.Time{}, nil, contracterrors.ErrInvalidDateRange
	}

	return startDate, &endDate, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func mapToResponse(c Contract) ContractResponse {
	resp := ContractResponse{
		ID:             c.ID.String(),
		EmployeeID:     c.EmployeeID.String(),
		ContractNumber: c.ContractNumber,
		ContractType:   c.ContractType,
		StartDate:      c.StartDate.Format(dateLayout),
		Salary:         money.Format(c.Salary),
		Currency:       c.Currency,
		Position:       c.Position,
		Department:     c.Department,
		WorkSchedule:   c.WorkSchedule,
		IsActive:       c.IsActive,
		CreatedBy:      c.CreatedBy.String(),
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
	if c.EndDate != nil {
		end := c.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	if c.Employee != nil {
		resp.EmployeeName = c.Employee.FullName
	}
	return resp
}

func mapToListResponse(contracts []Contract) []ContractResponse {
	resp := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		resp = append(resp, mapToResponse(c))
	}
	return resp
}
