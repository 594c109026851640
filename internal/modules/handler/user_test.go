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
)

// MockIdentityService is a mock implementation of service.IdentityService
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) List(ctx context.Context) (*service.UserListOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserListOutput), args.Error(1)
}

func (m *MockIdentityService) ToggleStatus(ctx context.Context, actor, target uuid.UUID) (bool, error) {
	args := m.Called(ctx, actor, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityService) ChangeRole(ctx context.Context, actor, target, newRoleID uuid.UUID) error {
	args := m.Called(ctx, actor, target, newRoleID)
	return args.Error(0)
}

func (m *MockIdentityService) EditProfile(ctx context.Context, actor, target uuid.UUID, lastName, email string) error {
	args := m.Called(ctx, actor, target, lastName, email)
	return args.Error(0)
}

func (m *MockIdentityService) Delete(ctx context.Context, actor, target uuid.UUID) error {
	args := m.Called(ctx, actor, target)
	return args.Error(0)
}

func setupUserRouter(svc service.IdentityService, actorIdentity uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxIdentity, &model.Identity{ID: actorIdentity, Active: true})
	})
	h := NewUserHandler(svc)
	r.GET("/admin/users", h.ListUsers)
	r.POST("/admin/users/:identity_id/toggle-status", h.ToggleStatus)
	r.PUT("/admin/users/:identity_id/role", h.ChangeRole)
	r.PUT("/admin/users/:identity_id/profile", h.EditProfile)
	r.DELETE("/admin/users/:identity_id", h.DeleteUser)
	return r
}

func TestUserHandler_ToggleStatus(t *testing.T) {
	actor := uuid.New()
	target := uuid.New()

	t.Run("toggles", func(t *testing.T) {
		svc := new(MockIdentityService)
		svc.On("ToggleStatus", mock.Anything, actor, target).Return(false, nil)

		req := httptest.NewRequest(http.MethodPost, "/admin/users/"+target.String()+"/toggle-status", nil)
		w := httptest.NewRecorder()
		setupUserRouter(svc, actor).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"active":false`)
	})

	t.Run("self modification is forbidden", func(t *testing.T) {
		svc := new(MockIdentityService)
		svc.On("ToggleStatus", mock.Anything, actor, actor).Return(false, service.ErrSelfModification)

		req := httptest.NewRequest(http.MethodPost, "/admin/users/"+actor.String()+"/toggle-status", nil)
		w := httptest.NewRecorder()
		setupUserRouter(svc, actor).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUserHandler_ChangeRole(t *testing.T) {
	actor := uuid.New()
	target := uuid.New()
	roleID := uuid.New()

	svc := new(MockIdentityService)
	svc.On("ChangeRole", mock.Anything, actor, target, roleID).Return(nil)

	form := url.Values{}
	form.Set("role_id", roleID.String())
	req := httptest.NewRequest(http.MethodPut, "/admin/users/"+target.String()+"/role", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	setupUserRouter(svc, actor).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUserHandler_EditProfile(t *testing.T) {
	actor := uuid.New()
	target := uuid.New()

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := new(MockIdentityService)
		svc.On("EditProfile", mock.Anything, actor, target, "Bennani", "dup@ville.ma").
			Return(service.ErrEmailTaken)

		form := url.Values{}
		form.Set("last_name", "Bennani")
		form.Set("email", "dup@ville.ma")
		req := httptest.NewRequest(http.MethodPut, "/admin/users/"+target.String()+"/profile", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		setupUserRouter(svc, actor).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing fields rejected at binding", func(t *testing.T) {
		svc := new(MockIdentityService)
		req := httptest.NewRequest(http.MethodPut, "/admin/users/"+target.String()+"/profile", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		setupUserRouter(svc, actor).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "EditProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	actor := uuid.New()
	target := uuid.New()

	svc := new(MockIdentityService)
	svc.On("Delete", mock.Anything, actor, target).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/users/"+target.String(), nil)
	w := httptest.NewRecorder()
	setupUserRouter(svc, actor).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUserHandler_ListUsers(t *testing.T) {
	actor := uuid.New()
	svc := new(MockIdentityService)
	svc.On("List", mock.Anything).Return(&service.UserListOutput{
		Users: []service.UserView{}, Total: 0,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	w := httptest.NewRecorder()
	setupUserRouter(svc, actor).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
