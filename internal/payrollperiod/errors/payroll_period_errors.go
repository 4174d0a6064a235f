package payrollperioderrors

import (
	"net/http"

	"rhplus/internal/shared/apperror"
)

var (
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll period not found",
		http.StatusNotFound,
	)
	ErrNoOpenPeriod = apperror.New(
		apperror.CodeNotFound,
		"There is no open payroll period",
		http.StatusNotFound,
	)
	ErrPeriodAlreadyClosed = apperror.New(
		apperror.CodeConflict,
		"Payroll period is already closed",
		http.StatusConflict,
	)
	ErrPeriodHasPendingEntries = apperror.New(
		apperror.CodePreconditionFailed,
		"Payroll period has entries pending approval",
		http.StatusUnprocessableEntity,
	)
	ErrPeriodInUse = apperror.New(
		apperror.CodeConflict,
		"Payroll period has entries and cannot be deleted",
		http.StatusConflict,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date cannot be before start date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
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
