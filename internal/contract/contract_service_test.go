package contract_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"rhplus/internal/contract"
	contracterrors "rhplus/internal/contract/errors"
	"rhplus/internal/shared/counter"
	countermock "rhplus/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeContractRepository struct {
	createFn            func(ctx context.Context, c *contract.Contract) error
	findAllActiveFn     func(ctx context.Context, companyID string) ([]contract.Contract, error)
	findByEmployeeFn    func(ctx context.Context, companyID, employeeID string) ([]contract.Contract, error)
	findCurrentFn       func(ctx context.Context, companyID, employeeID string) (*contract.Contract, error)
	findByIDFn          func(ctx context.Context, companyID, id string) (*contract.Contract, error)
	lockByEmployeeFn    func(ctx context.Context, companyID, employeeID string) ([]contract.Contract, error)
	deactivateOthersFn  func(ctx context.Context, companyID, employeeID, exceptID string) (int64, error)
	setActiveFn         func(ctx context.Context, companyID, id string, active bool) error
	employeeBelongsToFn func(ctx context.Context, companyID, employeeID string) (bool, error)
	deleteFn            func(ctx context.Context, companyID, id string) error

	calls []string
}

func (f *fakeContractRepository) WithTx(tx *sql.Tx) contract.Repository { return f }

func (f *fakeContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	f.calls = append(f.calls, "create")
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeContractRepository) FindAllActive(ctx context.Context, companyID string) ([]contract.Contract, error) {
	if f.findAllActiveFn != nil {
		return f.findAllActiveFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeContractRepository) FindActiveByEmployee(ctx context.Context, companyID, employeeID string) ([]contract.Contract, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeContractRepository) FindCurrentByEmployee(ctx context.Context, companyID, employeeID string) (*contract.Contract, error) {
	if f.findCurrentFn != nil {
		return f.findCurrentFn(ctx, companyID, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContractRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*contract.Contract, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContractRepository) LockByEmployee(ctx context.Context, companyID, employeeID string) ([]contract.Contract, error) {
	f.calls = append(f.calls, "lock")
	if f.lockByEmployeeFn != nil {
		return f.lockByEmployeeFn(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeContractRepository) DeactivateOthers(ctx context.Context, companyID, employeeID, exceptID string) (int64, error) {
	f.calls = append(f.calls, "deactivate_others")
	if f.deactivateOthersFn != nil {
		return f.deactivateOthersFn(ctx, companyID, employeeID, exceptID)
	}
	return 0, nil
}

func (f *fakeContractRepository) SetActive(ctx context.Context, companyID, id string, active bool) error {
	f.calls = append(f.calls, "set_active")
	if f.setActiveFn != nil {
		return f.setActiveFn(ctx, companyID, id, active)
	}
	return nil
}

func (f *fakeContractRepository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	if f.employeeBelongsToFn != nil {
		return f.employeeBelongsToFn(ctx, companyID, employeeID)
	}
	return true, nil
}

func (f *fakeContractRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

type contractServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeContractRepository
	counter *countermock.MockRepository
	service contract.Service
}

func setupContractServiceTest(t *testing.T) *contractServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	counterRepo := countermock.NewMockRepository(ctrl)
	repo := &fakeContractRepository{}

	return &contractServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		counter: counterRepo,
		service: contract.NewService(db, repo, counterRepo),
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

func validRequest(employeeID string) contract.CreateContractRequest {
	salary := decimal.RequireFromString("2500000")
	end := "2026-12-31"
	return contract.CreateContractRequest{
		EmployeeID:   employeeID,
		ContractType: contract.TypeFixedTerm,
		StartDate:    "2026-01-01",
		EndDate:      &end,
		Salary:       &salary,
		Position:     "Analista",
		Department:   "Finanzas",
	}
}

func TestContractService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("active create deactivates previous contracts first", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), companyID, counter.TypeContract).Return(int64(7), nil)

		deps.repo.deactivateOthersFn = func(ctx context.Context, cid, eid, exceptID string) (int64, error) {
			assert.Equal(t, employeeID, eid)
			assert.Empty(t, exceptID)
			return 1, nil
		}
		deps.repo.createFn = func(ctx context.Context, c *contract.Contract) error {
			assert.Equal(t, "CTR-000007", c.ContractNumber)
			assert.True(t, c.IsActive)
			assert.Equal(t, contract.CurrencyCOP, c.Currency)
			assert.Equal(t, contract.ScheduleFullTime, c.WorkSchedule)
			assert.Equal(t, actorID, c.CreatedBy.String())
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, actorID, validRequest(employeeID))

		assert.NoError(t, err)
		assert.Equal(t, "CTR-000007", resp.ContractNumber)
		assert.Equal(t, "2500000.00", resp.Salary)
		assert.Equal(t, "2026-12-31", *resp.EndDate)
		assert.Equal(t, []string{"lock", "deactivate_others", "create"}, deps.repo.calls)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("inactive create skips activation path", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), companyID, counter.TypeContract).Return(int64(1), nil)

		req := validRequest(employeeID)
		inactive := false
		req.IsActive = &inactive

		resp, err := deps.service.Create(ctx, companyID, actorID, req)

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.Equal(t, []string{"create"}, deps.repo.calls)
	})

	t.Run("end date before start date", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		req := validRequest(employeeID)
		end := "2025-12-31"
		req.EndDate = &end

		_, err := deps.service.Create(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, contracterrors.ErrInvalidDateRange)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("non positive salary", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		req := validRequest(employeeID)
		zero := decimal.Zero
		req.Salary = &zero

		_, err := deps.service.Create(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, contracterrors.ErrInvalidSalary)
	})

	t.Run("salary above column range", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		req := validRequest(employeeID)
		huge := decimal.RequireFromString("10000000000.00")
		req.Salary = &huge

		_, err := deps.service.Create(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, contracterrors.ErrInvalidSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee from another company", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.employeeBelongsToFn = func(ctx context.Context, cid, eid string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.Create(ctx, companyID, actorID, validRequest(employeeID))

		assert.ErrorIs(t, err, contracterrors.ErrEmployeeNotFound)
		assert.Empty(t, deps.repo.calls)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("active index violation maps to conflict", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), companyID, counter.TypeContract).Return(int64(2), nil)
		deps.repo.createFn = func(ctx context.Context, c *contract.Contract) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_contract_active_employee"}
		}

		_, err := deps.service.Create(ctx, companyID, actorID, validRequest(employeeID))

		assert.ErrorIs(t, err, contracterrors.ErrActiveContractConflict)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestContractService_Activate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.New()

	t.Run("activates and clears siblings", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, cid, cidID string) (*contract.Contract, error) {
			return &contract.Contract{ID: id, EmployeeID: employeeID, StartDate: time.Now(), IsActive: false}, nil
		}
		deps.repo.deactivateOthersFn = func(ctx context.Context, cid, eid, exceptID string) (int64, error) {
			assert.Equal(t, employeeID.String(), eid)
			assert.Equal(t, id.String(), exceptID)
			return 1, nil
		}
		deps.repo.setActiveFn = func(ctx context.Context, cid, cID string, active bool) error {
			assert.True(t, active)
			return nil
		}

		resp, err := deps.service.Activate(ctx, companyID, id.String())

		assert.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.Equal(t, []string{"lock", "deactivate_others", "set_active"}, deps.repo.calls)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already active is a no-op", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, cid, cidID string) (*contract.Contract, error) {
			return &contract.Contract{ID: id, EmployeeID: employeeID, IsActive: true}, nil
		}

		resp, err := deps.service.Activate(ctx, companyID, id.String())

		assert.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.NotContains(t, deps.repo.calls, "set_active")
	})

	t.Run("unknown contract", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Activate(ctx, companyID, uuid.NewString())

		assert.ErrorIs(t, err, contracterrors.ErrContractNotFound)
	})
}

func TestContractService_Reads(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("by employee requires employee", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByEmployee(ctx, companyID, " ")

		assert.ErrorIs(t, err, contracterrors.ErrEmployeeRequired)
	})

	t.Run("current without active contract", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetCurrent(ctx, companyID, uuid.NewString())

		assert.ErrorIs(t, err, contracterrors.ErrNoCurrentContract)
	})

	t.Run("current includes employee name", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		deps.repo.findCurrentFn = func(ctx context.Context, cid, eid string) (*contract.Contract, error) {
			return &contract.Contract{
				ID:       uuid.New(),
				Salary:   decimal.RequireFromString("1952937"),
				IsActive: true,
				Employee: &contract.ContractEmployee{FullName: "Ana Gómez"},
			}, nil
		}

		resp, err := deps.service.GetCurrent(ctx, companyID, uuid.NewString())

		assert.NoError(t, err)
		assert.Equal(t, "Ana Gómez", resp.EmployeeName)
		assert.Equal(t, "1952937.00", resp.Salary)
	})
}

func TestContractService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("referenced by entries", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.deleteFn = func(ctx context.Context, cid, id string) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_payroll_entries_contract"}
		}

		err := deps.service.Delete(ctx, uuid.NewString(), uuid.NewString())

		assert.ErrorIs(t, err, contracterrors.ErrContractInUse)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		boom := errors.New("boom")
		deps.repo.deleteFn = func(ctx context.Context, cid, id string) error { return boom }

		err := deps.service.Delete(ctx, uuid.NewString(), uuid.NewString())

		assert.ErrorIs(t, err, boom)
	})
}
