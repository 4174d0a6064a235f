package payrollitemerrors

import (
	"net/http"

	"rhplus/internal/shared/apperror"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll item not found",
		http.StatusNotFound,
	)
	ErrItemCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Payroll item code already exists in this company",
		http.StatusConflict,
	)
	ErrItemInUse = apperror.New(
		apperror.CodeConflict,
		"Payroll item is referenced by payroll entries and cannot be deleted",
		http.StatusConflict,
	)
	ErrItemTypeInUse = apperror.New(
		apperror.CodeConflict,
		"Item type cannot change while payroll entries reference the item",
		http.StatusConflict,
	)
	ErrInvalidCode = apperror.New(
		apperror.CodeInvalidInput,
		"Code must be 1 to 20 characters of A-Z, 0-9 or underscore",
		http.StatusBadRequest,
	)
	ErrInvalidItemType = apperror.New(
		apperror.CodeInvalidInput,
		"Item type must be EARNING or DEDUCTION",
		http.StatusBadRequest,
	)
	ErrInvalidDefaultAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Default amount must be zero or positive with at most two decimal places",
		http.StatusBadRequest,
	)
	ErrPercentageOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Percentage items cannot exceed 100",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
)
