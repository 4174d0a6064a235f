package contract

import (
	"errors"

	contracterrors "rhplus/internal/contract/errors"
	"rhplus/internal/shared/dberr"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contracterrors.ErrContractNotFound
	}
	if dberr.IsUniqueViolation(err, "uq_contract_active_employee") {
		return contracterrors.ErrActiveContractConflict
	}
	if dberr.IsForeignKeyViolation(err, "fk_payroll_entries_contract") {
		return contracterrors.ErrContractInUse
	}
	if dberr.IsForeignKeyViolation(err, "fk_contracts_employee") {
		return contracterrors.ErrEmployeeNotFound
	}
	if dberr.IsNumericOverflow(err) {
		return contracterrors.ErrInvalidSalary
	}

	return err
}
