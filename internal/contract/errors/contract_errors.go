package contracterrors

import (
	"net/http"

	"rhplus/internal/shared/apperror"
)

var (
	ErrContractNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contract not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found in this company",
		http.StatusNotFound,
	)
	ErrNoCurrentContract = apperror.New(
		apperror.CodeNotFound,
		"Employee has no active contract",
		http.StatusNotFound,
	)
	ErrActiveContractConflict = apperror.New(
		apperror.CodeConflict,
		"Employee already has an active contract",
		http.StatusConflict,
	)
	ErrContractInUse = apperror.New(
		apperror.CodeConflict,
		"Contract is referenced by payroll entries and cannot be deleted",
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
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must be between 0 and 9999999999.99 with at most two decimal places",
		http.StatusBadRequest,
	)
	ErrEmployeeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee query parameter is required",
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
