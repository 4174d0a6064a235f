package payrollerrors

import (
	"net/http"

	"rhplus/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll entry not found",
		http.StatusNotFound,
	)
	ErrDetailNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll entry detail not found",
		http.StatusNotFound,
	)
	ErrContractNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contract not found",
		http.StatusNotFound,
	)
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll period not found",
		http.StatusNotFound,
	)
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll item not found",
		http.StatusNotFound,
	)
	ErrPayslipNotGenerated = apperror.New(
		apperror.CodeNotFound,
		"Payslip has not been generated yet",
		http.StatusNotFound,
	)

	ErrEntryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A payroll entry already exists for this contract and period",
		http.StatusConflict,
	)
	ErrEntryAlreadyApproved = apperror.New(
		apperror.CodeConflict,
		"Payroll entry is already approved",
		http.StatusConflict,
	)
	ErrEntryLocked = apperror.New(
		apperror.CodeConflict,
		"Payroll entry is approved and can no longer be modified",
		http.StatusConflict,
	)

	ErrPeriodClosed = apperror.New(
		apperror.CodePreconditionFailed,
		"Payroll period is closed",
		http.StatusUnprocessableEntity,
	)
	ErrContractInactive = apperror.New(
		apperror.CodePreconditionFailed,
		"Contract is not active",
		http.StatusUnprocessableEntity,
	)
	ErrEntryNotApproved = apperror.New(
		apperror.CodePreconditionFailed,
		"Payroll entry must be approved first",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be between 0 and 9999999999.99 with at most two decimal places",
		http.StatusBadRequest,
	)
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be greater than 0 and below 100000 with at most two decimal places",
		http.StatusBadRequest,
	)
	ErrInvalidBaseSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Base salary must be zero or greater with at most two decimal places",
		http.StatusBadRequest,
	)
	ErrTotalsOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Entry totals exceed the supported range",
		http.StatusBadRequest,
	)
	ErrNotesTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Notes cannot exceed 255 characters",
		http.StatusBadRequest,
	)
	ErrItemInactive = apperror.New(
		apperror.CodeInvalidInput,
		"Payroll item is inactive",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status must be approved or pending",
		http.StatusBadRequest,
	)
	ErrEmployeeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee query parameter is required",
		http.StatusBadRequest,
	)
	ErrPeriodRequired = apperror.New(
		apperror.CodeInvalidInput,
		"period query parameter is required",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)
)
