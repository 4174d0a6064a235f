package payrollperiod_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rhplus/internal/payrollperiod"
	payrollperioderrors "rhplus/internal/payrollperiod/errors"
	"rhplus/internal/payrollperiod/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestContext(method, target, body, companyID, employeeID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("company_id", companyID)
	c.Set("employee_id", employeeID)
	return c, w
}

func TestPayrollPeriodHandler_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.NewString()
	actorID := uuid.NewString()
	id := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Close(gomock.Any(), companyID, actorID, id).
			Return(payrollperiod.PeriodResponse{ID: id, IsClosed: true}, nil)

		c, w := newTestContext(http.MethodPost, "/api/v1/payroll-periods/"+id+"/close", "", companyID, actorID)
		c.Params = gin.Params{{Key: "id", Value: id}}
		payrollperiod.NewHandler(svc).Close(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
	})

	t.Run("already closed", func(t *testing.T) {
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Close(gomock.Any(), companyID, actorID, id).
			Return(payrollperiod.PeriodResponse{}, payrollperioderrors.ErrPeriodAlreadyClosed)

		c, w := newTestContext(http.MethodPost, "/api/v1/payroll-periods/"+id+"/close", "", companyID, actorID)
		c.Params = gin.Params{{Key: "id", Value: id}}
		payrollperiod.NewHandler(svc).Close(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestPayrollPeriodHandler_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)

	c, w := newTestContext(http.MethodPost, "/api/v1/payroll-periods",
		`{"name":"Q1","period_type":"YEARLY","start_date":"2026-01-01","end_date":"2026-03-31"}`,
		uuid.NewString(), uuid.NewString())
	payrollperiod.NewHandler(svc).Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
