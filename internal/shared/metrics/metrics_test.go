package metrics

import (
	"errors"
	"net/http"
	"testing"

	"rhplus/internal/shared/apperror"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePayrollOperation(t *testing.T) {
	conflict := apperror.New(apperror.CodeConflict, "entry already approved", http.StatusConflict)

	before := testutil.ToFloat64(PayrollOperationsTotal.WithLabelValues("approve_entry", apperror.CodeConflict))
	ObservePayrollOperation("approve_entry", conflict)
	after := testutil.ToFloat64(PayrollOperationsTotal.WithLabelValues("approve_entry", apperror.CodeConflict))

	assert.Equal(t, before+1, after)
}

func TestResultLabel(t *testing.T) {
	assert.Equal(t, ResultOK, resultLabel(nil))
	assert.Equal(t, apperror.CodeInternalError, resultLabel(errors.New("boom")))
	assert.Equal(t, apperror.CodePreconditionFailed, resultLabel(
		apperror.New(apperror.CodePreconditionFailed, "period closed", http.StatusUnprocessableEntity),
	))
}
