package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/middleware"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"github.com/marafik-io/greenspace/internal/modules/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTaskService is a mock implementation of service.TaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, actor uuid.UUID, in service.TaskInput) (*model.Task, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, actor uuid.UUID, admin bool, taskID uuid.UUID, in service.TaskInput) (*model.Task, error) {
	args := m.Called(ctx, actor, admin, taskID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) SoftDelete(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error {
	args := m.Called(ctx, actor, taskID)
	return args.Error(0)
}

func (m *MockTaskService) HardDelete(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error {
	args := m.Called(ctx, actor, taskID)
	return args.Error(0)
}

func (m *MockTaskService) Restore(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error {
	args := m.Called(ctx, actor, taskID)
	return args.Error(0)
}

func (m *MockTaskService) Purge(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error {
	args := m.Called(ctx, actor, taskID)
	return args.Error(0)
}

func (m *MockTaskService) Hide(ctx context.Context, actor uuid.UUID, taskIDs []uuid.UUID) (int, error) {
	args := m.Called(ctx, actor, taskIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskService) HideOne(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) (bool, error) {
	args := m.Called(ctx, actor, taskID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context, in service.ListTasksInput) (*service.ListTasksOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListTasksOutput), args.Error(1)
}

func (m *MockTaskService) History(ctx context.Context, viewer uuid.UUID) (*service.HistoryOutput, error) {
	args := m.Called(ctx, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HistoryOutput), args.Error(1)
}

func setupTaskRouter(svc service.TaskService, accountID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxAccountID, accountID)
	})
	h := NewTaskHandler(svc)
	r.GET("/tasks", h.ListTasks)
	r.POST("/tasks", h.CreateTask)
	r.PUT("/tasks/:task_id", h.UpdateTask)
	r.DELETE("/tasks/:task_id", h.DeleteTask)
	r.POST("/tasks/hide", h.HideTasks)
	return r
}

func postForm(r *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTaskHandler_CreateTask(t *testing.T) {
	accountID := uuid.New()
	typeID := uuid.New()

	t.Run("coerces day fields", func(t *testing.T) {
		svc := new(MockTaskService)
		svc.On("Create", mock.Anything, accountID, mock.MatchedBy(func(in service.TaskInput) bool {
			// jour_1 numeric, jour_2 garbage -> 0, jour_3 absent -> 0
			return in.Days[0] == 4 && in.Days[1] == 0 && in.Days[2] == 0 && in.Days[4] == -2
		})).Return(&model.Task{ID: uuid.New()}, nil)

		form := url.Values{}
		form.Set("task_type_id", typeID.String())
		form.Set("adresse", "Centre Ville")
		form.Set("date", "2025-7")
		form.Set("jour_1", "4")
		form.Set("jour_2", "abc")
		form.Set("jour_5", "-2")

		w := postForm(setupTaskRouter(svc, accountID), "/tasks", form)
		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc := new(MockTaskService)
		form := url.Values{}
		form.Set("task_type_id", typeID.String())
		// no adresse, no date
		w := postForm(setupTaskRouter(svc, accountID), "/tasks", form)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed task type id", func(t *testing.T) {
		svc := new(MockTaskService)
		form := url.Values{}
		form.Set("task_type_id", "not-a-uuid")
		form.Set("adresse", "Centre Ville")
		form.Set("date", "2025-07")
		w := postForm(setupTaskRouter(svc, accountID), "/tasks", form)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid month from service", func(t *testing.T) {
		svc := new(MockTaskService)
		svc.On("Create", mock.Anything, accountID, mock.Anything).Return(nil, service.ErrInvalidMonth)

		form := url.Values{}
		form.Set("task_type_id", typeID.String())
		form.Set("adresse", "Centre Ville")
		form.Set("date", "2025-13")
		w := postForm(setupTaskRouter(svc, accountID), "/tasks", form)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	accountID := uuid.New()
	typeID := uuid.New()
	taskID := uuid.New()

	t.Run("employee scope is passed through", func(t *testing.T) {
		svc := new(MockTaskService)
		svc.On("Update", mock.Anything, accountID, false, taskID, mock.Anything).
			Return(&model.Task{ID: taskID}, nil)

		form := url.Values{}
		form.Set("task_type_id", typeID.String())
		form.Set("adresse", "Centre Ville")
		form.Set("date", "2025-07")

		req := httptest.NewRequest(http.MethodPut, "/tasks/"+taskID.String(), strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		setupTaskRouter(svc, accountID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("foreign row is indistinguishable from missing", func(t *testing.T) {
		svc := new(MockTaskService)
		svc.On("Update", mock.Anything, accountID, false, taskID, mock.Anything).
			Return(nil, service.ErrNotFoundOrUnauthorized)

		form := url.Values{}
		form.Set("task_type_id", typeID.String())
		form.Set("adresse", "Centre Ville")
		form.Set("date", "2025-07")

		req := httptest.NewRequest(http.MethodPut, "/tasks/"+taskID.String(), strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		setupTaskRouter(svc, accountID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	accountID := uuid.New()
	taskID := uuid.New()

	svc := new(MockTaskService)
	svc.On("SoftDelete", mock.Anything, accountID, taskID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/tasks/"+taskID.String(), nil)
	w := httptest.NewRecorder()
	setupTaskRouter(svc, accountID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestTaskHandler_HideTasks(t *testing.T) {
	accountID := uuid.New()
	a, b := uuid.New(), uuid.New()

	t.Run("parses ids and skips malformed ones", func(t *testing.T) {
		svc := new(MockTaskService)
		svc.On("Hide", mock.Anything, accountID, []uuid.UUID{a, b}).Return(2, nil)

		form := url.Values{}
		form.Add("task_ids", a.String())
		form.Add("task_ids", "garbage")
		form.Add("task_ids", b.String())

		w := postForm(setupTaskRouter(svc, accountID), "/tasks/hide", form)
		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing list", func(t *testing.T) {
		svc := new(MockTaskService)
		w := postForm(setupTaskRouter(svc, accountID), "/tasks/hide", url.Values{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaskHandler_ListTasks(t *testing.T) {
	accountID := uuid.New()
	svc := new(MockTaskService)
	svc.On("List", mock.Anything, mock.MatchedBy(func(in service.ListTasksInput) bool {
		return in.Owner != nil && *in.Owner == accountID &&
			in.Viewer != nil && *in.Viewer == accountID && in.Month == ""
	})).Return(&service.ListTasksOutput{Types: map[string]service.TypeListing{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	w := httptest.NewRecorder()
	setupTaskRouter(svc, accountID).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
