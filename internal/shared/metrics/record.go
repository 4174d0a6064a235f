package metrics

import (
	"errors"

	"rhplus/internal/shared/apperror"
)

const ResultOK = "ok"

// ObservePayrollOperation records the outcome of a payroll operation.
func ObservePayrollOperation(operation string, err error) {
	PayrollOperationsTotal.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return ResultOK
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return apperror.CodeInternalError
}
