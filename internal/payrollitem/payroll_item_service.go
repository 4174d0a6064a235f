package payrollitem

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	payrollitemerrors "rhplus/internal/payrollitem/errors"
	"rhplus/internal/shared/contextutil"
	"rhplus/internal/shared/money"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ActiveItemsKeyPrefix = "payroll_items:active:"
	activeItemsTTL       = time.Hour
)

var codePattern = regexp.MustCompile(`^[A-Z0-9_]{1,20}$`)

func ActiveItemsKey(companyID string) string {
	return ActiveItemsKeyPrefix + companyID
}

//go:generate mockgen -source=payroll_item_service.go -destination=mock/payroll_item_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreatePayrollItemRequest) (PayrollItemResponse, error)
	GetAll(ctx context.Context, companyID string) ([]PayrollItemResponse, error)
	GetByType(ctx context.Context, companyID, itemType string) ([]PayrollItemResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollItemResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdatePayrollItemRequest) (PayrollItemResponse, error)
	Deactivate(ctx context.Context, companyID, id string) (PayrollItemResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	SeedDefaults(ctx context.Context, companyID string) (SeedResult, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("payrollitem.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollitem.service")
	}

	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreatePayrollItemRequest) (PayrollItemResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PayrollItemResponse{}, payrollitemerrors.ErrInvalidCompanyID
	}

	code := NormalizeCode(req.Code)
	if !codePattern.MatchString(code) {
		return PayrollItemResponse{}, payrollitemerrors.ErrInvalidCode
	}
	if req.ItemType != ItemTypeEarning && req.ItemType != ItemTypeDeduction {
		return PayrollItemResponse{}, payrollitemerrors.ErrInvalidItemType
	}

	amount := decimal.Zero
	if req.DefaultAmount != nil {
		amount = *req.DefaultAmount
	}
	if err := validateDefaultAmount(amount, req.IsPercentage); err != nil {
		return PayrollItemResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByCode(ctx, companyID, code)
	if err != nil {
		return PayrollItemResponse{}, mapRepositoryError(err)
	}
	if exists {
		return PayrollItemResponse{}, payrollitemerrors.ErrItemCodeAlreadyExists
	}

	item := &PayrollItem{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		Code:          code,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		ItemType:      req.ItemType,
		DefaultAmount: amount,
		IsPercentage:  req.IsPercentage,
		IsActive:      true,
	}

	if err := qtx.Create(ctx, item); err != nil {
		log.Error("create payroll item persist failed", zap.String("code", code), zap.Error(err))
		return PayrollItemResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayrollItemResponse{}, err
	}

	s.invalidateCache(ctx, companyID)
	log.Info("payroll item created", zap.String("item_id", item.ID.String()), zap.String("code", code))

	return mapToResponse(*item), nil
}

// GetAll lists the active catalog. Results are cached per company and
// concurrent misses share one database read.
func (s *service) GetAll(ctx context.Context, companyID string) ([]PayrollItemResponse, error) {
	cacheKey := ActiveItemsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []PayrollItemResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		items, err := s.repo.FindAllActive(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(items)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, activeItemsTTL).Err(); err != nil {
					s.logger.Warn("cache active payroll items failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]PayrollItemResponse), nil
}

func (s *service) GetByType(ctx context.Context, companyID, itemType string) ([]PayrollItemResponse, error) {
	itemType = strings.ToUpper(strings.TrimSpace(itemType))
	if itemType != ItemTypeEarning && itemType != ItemTypeDeduction {
		return nil, payrollitemerrors.ErrInvalidItemType
	}

	items, err := s.repo.FindByType(ctx, companyID, itemType)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayrollItemResponse, error) {
	item, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollItemResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*item), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdatePayrollItemRequest) (PayrollItemResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item, err := qtx.LockByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollItemResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.ItemType != nil {
		if *req.ItemType != ItemTypeEarning && *req.ItemType != ItemTypeDeduction {
			return PayrollItemResponse{}, payrollitemerrors.ErrInvalidItemType
		}
		if *req.ItemType != item.ItemType {
			refs, err := qtx.CountReferences(ctx, companyID, id)
			if err != nil {
				return PayrollItemResponse{}, err
			}
			if refs > 0 {
				return PayrollItemResponse{}, payrollitemerrors.ErrItemTypeInUse
			}
		}
		item.ItemType = *req.ItemType
	}
	if req.DefaultAmount != nil {
		item.DefaultAmount = *req.DefaultAmount
	}
	if req.IsPercentage != nil {
		item.IsPercentage = *req.IsPercentage
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := validateDefaultAmount(item.DefaultAmount, item.IsPercentage); err != nil {
		return PayrollItemResponse{}, err
	}

	if err := qtx.Update(ctx, item); err != nil {
		return PayrollItemResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayrollItemResponse{}, err
	}

	s.invalidateCache(ctx, companyID)

	return mapToResponse(*item), nil
}

func (s *service) Deactivate(ctx context.Context, companyID, id string) (PayrollItemResponse, error) {
	inactive := false
	return s.Update(ctx, companyID, id, UpdatePayrollItemRequest{IsActive: &inactive})
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

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx, companyID)
	return nil
}

// SeedDefaults installs the starter catalog, leaving existing codes alone.
func (s *service) SeedDefaults(ctx context.Context, companyID string) (SeedResult, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SeedResult{}, payrollitemerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SeedResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	codes, err := qtx.FindCodes(ctx, companyID)
	if err != nil {
		return SeedResult{}, mapRepositoryError(err)
	}
	existing := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		existing[c] = struct{}{}
	}

	result := SeedResult{Created: []string{}, Skipped: []string{}}
	for _, d := range defaultCatalog {
		if _, ok := existing[d.Code]; ok {
			result.Skipped = append(result.Skipped, d.Code)
			continue
		}

		item := &PayrollItem{
			ID:            uuid.New(),
			CompanyID:     companyUUID,
			Code:          d.Code,
			Name:          d.Name,
			ItemType:      d.ItemType,
			DefaultAmount: d.amount(),
			IsPercentage:  d.IsPercentage,
			IsActive:      true,
		}
		if err := qtx.Create(ctx, item); err != nil {
			return SeedResult{}, mapRepositoryError(err)
		}
		result.Created = append(result.Created, d.Code)
	}

	if err := tx.Commit(); err != nil {
		return SeedResult{}, err
	}

	s.invalidateCache(ctx, companyID)
	s.logger.Info("default payroll items seeded",
		zap.String("company_id", companyID),
		zap.Int("created", len(result.Created)),
		zap.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

func (s *service) invalidateCache(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}

	cacheKey := ActiveItemsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate payroll items cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateDefaultAmount(amount decimal.Decimal, isPercentage bool) error {
	if amount.IsNegative() || !money.HasValidScale(amount) {
		return payrollitemerrors.ErrInvalidDefaultAmount
	}
	if isPercentage && amount.GreaterThan(money.Hundred) {
		return payrollitemerrors.ErrPercentageOutOfRange
	}
	return nil
}

func mapToResponse(item PayrollItem) PayrollItemResponse {
	return PayrollItemResponse{
		ID:            item.ID.String(),
		Code:          item.Code,
		Name:          item.Name,
		Description:   item.Description,
		ItemType:      item.ItemType,
		DefaultAmount: money.Format(item.DefaultAmount),
		IsPercentage:  item.IsPercentage,
		IsActive:      item.IsActive,
		CreatedAt:     item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(items []PayrollItem) []PayrollItemResponse {
	resp := make([]PayrollItemResponse, len(items))
	for i, item := range items {
		resp[i] = mapToResponse(item)
	}
	return resp
}
