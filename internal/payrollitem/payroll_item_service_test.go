package payrollitem_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rhplus/internal/payrollitem"
	payrollitemerrors "rhplus/internal/payrollitem/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeItemRepository struct {
	createFn        func(ctx context.Context, item *payrollitem.PayrollItem) error
	findAllActiveFn func(ctx context.Context, companyID string) ([]payrollitem.PayrollItem, error)
	findByTypeFn    func(ctx context.Context, companyID, itemType string) ([]payrollitem.PayrollItem, error)
	findByIDFn      func(ctx context.Context, companyID, id string) (*payrollitem.PayrollItem, error)
	lockByIDFn      func(ctx context.Context, companyID, id string) (*payrollitem.PayrollItem, error)
	countRefsFn     func(ctx context.Context, companyID, id string) (int64, error)
	findCodesFn     func(ctx context.Context, companyID string) ([]string, error)
	existsByCodeFn  func(ctx context.Context, companyID, code string) (bool, error)
	updateFn        func(ctx context.Context, item *payrollitem.PayrollItem) error
	deleteFn        func(ctx context.Context, companyID, id string) error
}

func (f *fakeItemRepository) WithTx(tx *sql.Tx) payrollitem.Repository { return f }

func (f *fakeItemRepository) Create(ctx context.Context, item *payrollitem.PayrollItem) error {
	if f.createFn != nil {
		return f.createFn(ctx, item)
	}
	return nil
}

func (f *fakeItemRepository) FindAllActive(ctx context.Context, companyID string) ([]payrollitem.PayrollItem, error) {
	if f.findAllActiveFn != nil {
		return f.findAllActiveFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeItemRepository) FindByType(ctx context.Context, companyID, itemType string) ([]payrollitem.PayrollItem, error) {
	if f.findByTypeFn != nil {
		return f.findByTypeFn(ctx, companyID, itemType)
	}
	return nil, nil
}

func (f *fakeItemRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*payrollitem.PayrollItem, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, companyID, id)
	}
	return nil, errors.New("not configured")
}

func (f *fakeItemRepository) LockByIDAndCompany(ctx context.Context, companyID, id string) (*payrollitem.PayrollItem, error) {
	if f.lockByIDFn != nil {
		return f.lockByIDFn(ctx, companyID, id)
	}
	return f.FindByIDAndCompany(ctx, companyID, id)
}

func (f *fakeItemRepository) CountReferences(ctx context.Context, companyID, id string) (int64, error) {
	if f.countRefsFn != nil {
		return f.countRefsFn(ctx, companyID, id)
	}
	return 0, nil
}

func (f *fakeItemRepository) FindCodes(ctx context.Context, companyID string) ([]string, error) {
	if f.findCodesFn != nil {
		return f.findCodesFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeItemRepository) ExistsByCode(ctx context.Context, companyID, code string) (bool, error) {
	if f.existsByCodeFn != nil {
		return f.existsByCodeFn(ctx, companyID, code)
	}
	return false, nil
}

func (f *fakeItemRepository) Update(ctx context.Context, item *payrollitem.PayrollItem) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, item)
	}
	return nil
}

func (f *fakeItemRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

type itemServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	repo      *fakeItemRepository
	service   payrollitem.Service
}

func setupItemServiceTest(t *testing.T, withRedis bool) *itemServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	var rdb *redis.Client
	var redisMock redismock.ClientMock
	if withRedis {
		rdb, redisMock = redismock.NewClientMock()
	}

	repo := &fakeItemRepository{}
	return &itemServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		repo:      repo,
		service:   payrollitem.NewService(db, repo, rdb),
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestPayrollItemService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success normalizes code", func(t *testing.T) {
		deps := setupItemServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		amount := decimal.RequireFromString("50000")
		deps.repo.existsByCodeFn = func(ctx context.Context, cid, code string) (bool, error) {
			assert.Equal(t, "OVERTIME", code)
			return false, nil
		}
		deps.repo.createFn = func(ctx context.Context, item *payrollitem.PayrollItem) error {
			assert.Equal(t, "OVERTIME", item.Code)
			assert.True(t, item.IsActive)
			assert.True(t, item.DefaultAmount.Equal(amount))
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, payrollitem.CreatePayrollItemRequest{
			Code:          " overtime ",
			Name:          "Horas Extra",
			ItemType:      payrollitem.ItemTypeEarning,
			DefaultAmount: &amount,
		})

		assert.NoError(t, err)
		assert.Equal(t, "OVERTIME", resp.Code)
		assert.Equal(t, "50000.00", resp.DefaultAmount)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate code pre-check", func(t *testing.T) {
		deps := setupItemServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.existsByCodeFn = func(ctx context.Context, cid, code string) (bool, error) { return true, nil }
		deps.repo.createFn = func(ctx context.Context, item *payrollitem.PayrollItem) error {
			t.Fatal("create must not be called")
			return nil
		}

		_, err := deps.service.Create(ctx, companyID, payrollitem.CreatePayrollItemRequest{
			Code: "BONUS", Name: "Bonificación", ItemType: payrollitem.ItemTypeEarning,
		})

		assert.ErrorIs(t, err, payrollitemerrors.ErrItemCodeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unique violation backstop", func(t *testing.T) {
		deps := setupItemServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.createFn = func(ctx context.Context, item *payrollitem.PayrollItem) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_payroll_item_code"}
		}

		_, err := deps.service.Create(ctx, companyID, payrollitem.CreatePayrollItemRequest{
			Code: "BONUS", Name: "Bonificación", ItemType: payrollitem.ItemTypeEarning,
		})

		assert.ErrorIs(t, err, payrollitemerrors.ErrItemCodeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("validation happens before the transaction", func(t *testing.T) {
		deps := setupItemServiceTest(t, false)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, payrollitem.CreatePayrollItemRequest{
			Code: "BAD-CODE", Name: "x", ItemType: payrollitem.ItemTypeEarning,
		})
		assert.ErrorIs(t, err, payrollitemerrors.ErrInvalidCode)

		over := decimal.RequireFromString("100.01")
		_, err = deps.service.Create(ctx, companyID, payrollitem.CreatePayrollItemRequest{
			Code: "HEALTH", Name: "Salud", ItemType: payrollitem.ItemTypeDeduction, DefaultAmount: &over, IsPercentage: true,
		})
		assert.ErrorIs(t, err, payrollitemerrors.ErrPercentageOutOfRange)

		fractional := decimal.RequireFromString("10.005")
		_, err = deps.service.Create(ctx, companyID, payrollitem.CreatePayrollItemRequest{
			Code: "LOAN", Name: "Préstamo", ItemType: payrollitem.ItemTypeDeduction, DefaultAmount: &fractional,
		})
		assert.ErrorIs(t, err, payrollitemerrors.ErrInvalidDefaultAmount)

		negative := decimal.RequireFromString("-1")
		_, err = deps.service.Create(ctx, companyID, payrollitem.CreatePayrollItemRequest{
			Code: "LOAN", Name: "Préstamo", ItemType: payrollitem.ItemTypeDeduction, DefaultAmount: &negative,
		})
		assert.ErrorIs(t, err, payrollitemerrors.ErrInvalidDefaultAmount)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollItemService_GetAll_Cache(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	itemID := uuid.New()
	key := payrollitem.ActiveItemsKey(companyID)

	items := []payrollitem.PayrollItem{{
		ID:            itemID,
		Code:          "TRANSPORT",
		Name:          "Auxilio de Transporte",
		ItemType:      payrollitem.ItemTypeEarning,
		DefaultAmount: decimal.RequireFromString("140606"),
		IsActive:      true,
	}}
	expected := []payrollitem.PayrollItemResponse{{
		ID:            itemID.String(),
		Code:          "TRANSPORT",
		Name:          "Auxilio de Transporte",
		ItemType:      payrollitem.ItemTypeEarning,
		DefaultAmount: "140606.00",
		IsActive:      true,
		CreatedAt:     time.Time{}.Format(time.RFC3339),
		UpdatedAt:     time.Time{}.Format(time.RFC3339),
	}}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	t.Run("miss loads and stores", func(t *testing.T) {
		deps := setupItemServiceTest(t, true)
		defer deps.db.Close()

		calls := 0
		deps.repo.findAllActiveFn = func(ctx context.Context, cid string) ([]payrollitem.PayrollItem, error) {
			calls++
			return items, nil
		}
		deps.redisMock.ExpectGet(key).RedisNil()
		deps.redisMock.ExpectSet(key, payload, time.Hour).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.Equal(t, 1, calls)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("hit skips the repository", func(t *testing.T) {
		deps := setupItemServiceTest(t, true)
		defer deps.db.Close()

		deps.repo.findAllActiveFn = func(ctx context.Context, cid string) ([]payrollitem.PayrollItem, error) {
			t.Fatal("repository must not be called on cache hit")
			return nil, nil
		}
		deps.redisMock.ExpectGet(key).SetVal(string(payload))

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestPayrollItemService_Deactivate_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	itemID := uuid.New().String()

	deps := setupItemServiceTest(t, true)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findByIDFn = func(ctx context.Context, cid, id string) (*payrollitem.PayrollItem, error) {
		return &payrollitem.PayrollItem{ID: uuid.MustParse(id), Code: "BONUS", ItemType: payrollitem.ItemTypeEarning, IsActive: true}, nil
	}
	deps.repo.updateFn = func(ctx context.Context, item *payrollitem.PayrollItem) error {
		assert.False(t, item.IsActive)
		return nil
	}
	deps.redisMock.ExpectDel(payrollitem.ActiveItemsKey(companyID)).SetVal(1)

	resp, err := deps.service.Deactivate(ctx, companyID, itemID)

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestPayrollItemService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	deduction := payrollitem.ItemTypeDeduction

	lockEarning := func(ctx context.Context, cid, id string) (*payrollitem.PayrollItem, error) {
		return &payrollitem.PayrollItem{ID: uuid.MustParse(id), Code: "BONUS", Name: "Bonificación", ItemType: payrollitem.ItemTypeEarning, IsActive: true}, nil
	}

	t.Run("type change on referenced item", func(t *testing.T) {
		deps := setupItemServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.lockByIDFn = lockEarning
		deps.repo.countRefsFn = func(ctx context.Context, cid, id string) (int64, error) {
			return 3, nil
		}
		deps.repo.updateFn = func(ctx context.Context, item *payrollitem.PayrollItem) error {
			t.Fatal("update must not run")
			return nil
		}

		_, err := deps.service.Update(ctx, companyID, uuid.New().String(), payrollitem.UpdatePayrollItemRequest{ItemType: &deduction})

		assert.ErrorIs(t, err, payrollitemerrors.ErrItemTypeInUse)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("type change on unused item", func(t *testing.T) {
		deps := setupItemServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.lockByIDFn = lockEarning

		resp, err := deps.service.Update(ctx, companyID, uuid.New().String(), payrollitem.UpdatePayrollItemRequest{ItemType: &deduction})

		assert.NoError(t, err)
		assert.Equal(t, payrollitem.ItemTypeDeduction, resp.ItemType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rename of referenced item", func(t *testing.T) {
		deps := setupItemServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.lockByIDFn = lockEarning
		deps.repo.countRefsFn = func(ctx context.Context, cid, id string) (int64, error) {
			t.Fatal("references are only checked on a type change")
			return 0, nil
		}
		name := "Bono de desempeño"
		earning := payrollitem.ItemTypeEarning

		resp, err := deps.service.Update(ctx, companyID, uuid.New().String(), payrollitem.UpdatePayrollItemRequest{Name: &name, ItemType: &earning})

		assert.NoError(t, err)
		assert.Equal(t, name, resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollItemService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("referenced item", func(t *testing.T) {
		deps := setupItemServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.deleteFn = func(ctx context.Context, cid, id string) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_payroll_entry_details_item"}
		}

		err := deps.service.Delete(ctx, companyID, uuid.New().String())

		assert.ErrorIs(t, err, payrollitemerrors.ErrItemInUse)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing item", func(t *testing.T) {
		deps := setupItemServiceTest(t, false)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.deleteFn = func(ctx context.Context, cid, id string) error {
			return gorm.ErrRecordNotFound
		}

		err := deps.service.Delete(ctx, companyID, uuid.New().String())

		assert.ErrorIs(t, err, payrollitemerrors.ErrItemNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollItemService_GetByType(t *testing.T) {
	deps := setupItemServiceTest(t, false)
	defer deps.db.Close()

	deps.repo.findByTypeFn = func(ctx context.Context, cid, itemType string) ([]payrollitem.PayrollItem, error) {
		assert.Equal(t, payrollitem.ItemTypeDeduction, itemType)
		return []payrollitem.PayrollItem{{ID: uuid.New(), Code: "HEALTH", ItemType: itemType}}, nil
	}

	resp, err := deps.service.GetByType(context.Background(), uuid.New().String(), "deduction")
	assert.NoError(t, err)
	assert.Len(t, resp, 1)

	_, err = deps.service.GetByType(context.Background(), uuid.New().String(), "BENEFIT")
	assert.ErrorIs(t, err, payrollitemerrors.ErrInvalidItemType)
}

func TestPayrollItemService_SeedDefaults(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	deps := setupItemServiceTest(t, false)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findCodesFn = func(ctx context.Context, cid string) ([]string, error) {
		return []string{"BASIC_SALARY", "LOAN"}, nil
	}
	created := map[string]payrollitem.PayrollItem{}
	deps.repo.createFn = func(ctx context.Context, item *payrollitem.PayrollItem) error {
		created[item.Code] = *item
		return nil
	}

	result, err := deps.service.SeedDefaults(ctx, companyID)

	assert.NoError(t, err)
	assert.Equal(t, []string{"BASIC_SALARY", "LOAN"}, result.Skipped)
	assert.Len(t, result.Created, 8)
	assert.True(t, created["TRANSPORT"].DefaultAmount.Equal(decimal.NewFromInt(140606)))
	assert.True(t, created["PENSION"].IsPercentage)
	assert.Equal(t, payrollitem.ItemTypeDeduction, created["PENSION"].ItemType)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
