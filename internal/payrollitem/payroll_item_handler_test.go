package payrollitem_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rhplus/internal/payrollitem"
	payrollitemerrors "rhplus/internal/payrollitem/errors"
	"rhplus/internal/payrollitem/mock"

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
		Message string `json:"message"`
	} `json:"error"`
}

func newTestContext(method, target, body string, companyID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("company_id", companyID)
	return c, w
}

func TestPayrollItemHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), companyID, gomock.Any()).
			DoAndReturn(func(_ any, _ string, req payrollitem.CreatePayrollItemRequest) (payrollitem.PayrollItemResponse, error) {
				assert.Equal(t, "HEALTH", req.Code)
				assert.True(t, req.IsPercentage)
				assert.Equal(t, "4", req.DefaultAmount.String())
				return payrollitem.PayrollItemResponse{ID: uuid.NewString(), Code: req.Code, DefaultAmount: "4.00"}, nil
			})

		c, w := newTestContext(http.MethodPost, "/api/v1/payroll-items",
			`{"code":"HEALTH","name":"Salud (4%)","item_type":"DEDUCTION","default_amount":"4","is_percentage":true}`, companyID)
		payrollitem.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"default_amount":"4.00"`)
	})

	t.Run("binding error", func(t *testing.T) {
		svc := mock.NewMockService(ctrl)

		c, w := newTestContext(http.MethodPost, "/api/v1/payroll-items", `{"name":"Salud","item_type":"TAX"}`, companyID)
		payrollitem.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), companyID, gomock.Any()).
			Return(payrollitem.PayrollItemResponse{}, payrollitemerrors.ErrItemCodeAlreadyExists)

		c, w := newTestContext(http.MethodPost, "/api/v1/payroll-items",
			`{"code":"BONUS","name":"Bonificación","item_type":"EARNING"}`, companyID)
		payrollitem.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestPayrollItemHandler_GetAll_Paginates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New().String()
	items := make([]payrollitem.PayrollItemResponse, 12)
	for i := range items {
		items[i] = payrollitem.PayrollItemResponse{ID: uuid.NewString()}
	}

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().GetAll(gomock.Any(), companyID).Return(items, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/payroll-items?page=2&page_size=5", "", companyID)
	payrollitem.NewHandler(svc).GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []payrollitem.PayrollItemResponse `json:"data"`
		Meta struct {
			Total int `json:"total"`
			Page  int `json:"page"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 5)
	assert.Equal(t, 12, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.Page)
}

func TestPayrollItemHandler_Delete_InUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New().String()
	itemID := uuid.New().String()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), companyID, itemID).Return(payrollitemerrors.ErrItemInUse)

	c, w := newTestContext(http.MethodDelete, "/api/v1/payroll-items/"+itemID, "", companyID)
	c.Params = gin.Params{{Key: "id", Value: itemID}}
	payrollitem.NewHandler(svc).Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
