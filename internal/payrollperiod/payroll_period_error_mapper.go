package payrollperiod

import (
	"errors"

	payrollperioderrors "rhplus/internal/payrollperiod/errors"
	"rhplus/internal/shared/dberr"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollperioderrors.ErrPeriodNotFound
	}
	if dberr.IsForeignKeyViolation(err, "fk_payroll_entries_period") {
		return payrollperioderrors.ErrPeriodInUse
	}

	return err
}
