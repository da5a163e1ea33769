package attendance

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"memberdesk/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Mark(ctx context.Context, tenantID string, req MarkRequest) (*Attendance, bool, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*Attendance), args.Bool(1), args.Error(2)
}

func (m *MockService) List(ctx context.Context, tenantID string, filter ListFilter) ([]Record, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Record), args.Error(1)
}

func withTenant(c *gin.Context) {
	tenantID := c.Param("tenantId")
	if tenantID == "" {
		tenantID = c.GetHeader("tenantId")
	}
	c.Set(api.TenantIDKey, tenantID)
	c.Next()
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc)

	router.POST("/attendance/", withTenant, h.Mark)
	router.GET("/attendance/:tenantId", withTenant, h.List)
	return router
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("tenantId", "T1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Mark_CheckIn(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("Mark", mock.Anything, "T1", mock.MatchedBy(func(r MarkRequest) bool {
		return r.UserID == 101 && r.CheckInBy != nil && *r.CheckInBy == 3 && r.CheckOutBy == nil
	})).Return(&Attendance{ID: 7, UserID: 101, CheckInBy: 3}, true, nil)

	w := doJSON(router, http.MethodPost, "/attendance/", `{"UserId":101,"CheckInBy":3}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Checked in successfully")
	svc.AssertExpectations(t)
}

func TestHandler_Mark_CheckOut(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("Mark", mock.Anything, "T1", mock.Anything).Return(&Attendance{ID: 7, UserID: 101}, false, nil)

	w := doJSON(router, http.MethodPost, "/attendance/", `{"UserId":101,"CheckOutBy":4}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Checked out successfully")
}

func TestHandler_Mark_Rejected(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("Mark", mock.Anything, "T1", mock.Anything).Return(nil, false, ErrAlreadyCheckedOut)

	w := doJSON(router, http.MethodPost, "/attendance/", `{"UserId":101,"CheckOutBy":4}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already checked out")
}

func TestHandler_Mark_MissingUser(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	w := doJSON(router, http.MethodPost, "/attendance/", `{"CheckInBy":3}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UserId")
	svc.AssertNotCalled(t, "Mark", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	day := api.NewDate(2025, 3, 10)
	svc.On("List", mock.Anything, "T1", ListFilter{Date: &day, UserID: 101}).
		Return([]Record{{ID: 7, UserID: 101, CheckIn: "10 Mar 2025, 07:05"}}, nil)

	w := doJSON(router, http.MethodGet, "/attendance/T1?date=2025-03-10&userId=101", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"CheckIn":"10 Mar 2025, 07:05"`)
	svc.AssertExpectations(t)
}

func TestHandler_List_BadDate(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	w := doJSON(router, http.MethodGet, "/attendance/T1?date=10-03-2025", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "expected YYYY-MM-DD")
}
