package payrollitem

import (
	"errors"

	payrollitemerrors "rhplus/internal/payrollitem/errors"
	"rhplus/internal/shared/dberr"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollitemerrors.ErrItemNotFound
	}
	if dberr.IsUniqueViolation(err, "uq_payroll_item_code") {
		return payrollitemerrors.ErrItemCodeAlreadyExists
	}
	if dberr.IsForeignKeyViolation(err, "") {
		return payrollitemerrors.ErrItemInUse
	}

	return err
}
