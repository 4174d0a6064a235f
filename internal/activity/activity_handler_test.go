package activity_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rhplus/internal/activity"
	activityerrors "rhplus/internal/activity/errors"
	"rhplus/internal/activity/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestContext(target, companyID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Set("company_id", companyID)
	return c, w
}

func TestActivityHandler_GetRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.NewString()

	t.Run("binds query filter", func(t *testing.T) {
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			ListRecent(gomock.Any(), companyID, activity.ListFilter{Type: "payroll", Limit: 5}).
			Return([]activity.ActivityResponse{{ID: "a1", Title: "Período de nómina cerrado"}}, nil)

		c, w := newTestContext("/api/v1/activities?type=payroll&limit=5", companyID)
		activity.NewHandler(svc).GetRecent(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Ok   bool                        `json:"ok"`
			Data []activity.ActivityResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Len(t, env.Data, 1)
	})

	t.Run("non numeric limit rejected before service", func(t *testing.T) {
		svc := mock.NewMockService(ctrl)

		c, w := newTestContext("/api/v1/activities?limit=many", companyID)
		activity.NewHandler(svc).GetRecent(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("limit out of range", func(t *testing.T) {
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			ListRecent(gomock.Any(), companyID, activity.ListFilter{Limit: 500}).
			Return(nil, activityerrors.ErrInvalidLimit)

		c, w := newTestContext("/api/v1/activities?limit=500", companyID)
		activity.NewHandler(svc).GetRecent(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
