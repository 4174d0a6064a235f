package payroll

import (
	"errors"

	payrollerrors "rhplus/internal/payroll/errors"
	"rhplus/internal/shared/dberr"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return payrollerrors.ErrEntryNotFound
	case dberr.IsUniqueViolation(err, "uq_payroll_entry_contract_period"):
		return payrollerrors.ErrEntryAlreadyExists
	case dberr.IsForeignKeyViolation(err, "fk_payroll_entries_contract"):
		return payrollerrors.ErrContractNotFound
	case dberr.IsForeignKeyViolation(err, "fk_payroll_entries_period"):
		return payrollerrors.ErrPeriodNotFound
	case dberr.IsForeignKeyViolation(err, "fk_payroll_entry_details_item"):
		return payrollerrors.ErrItemNotFound
	case dberr.IsNumericOverflow(err):
		return payrollerrors.ErrTotalsOutOfRange
	}

	return err
}

// mapNotFound maps a missing row to notFound and everything else through
// mapRepositoryError.
func mapNotFound(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return mapRepositoryError(err)
}
