package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"thinkscope-cms/helper"
	"thinkscope-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	loginFn      func(req models.LoginRequest) (*models.AuthResponse, error)
	createUserFn func(req models.CreateUserRequest) (*models.AdminUser, error)
	users        []models.AdminUser
}

func (s *stubAuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	if s.loginFn != nil {
		return s.loginFn(req)
	}
	return &models.AuthResponse{Token: "token", User: models.AdminUser{Email: req.Email}}, nil
}

func (s *stubAuthService) ValidateCredentials(email, password string) (*models.AdminUser, error) {
	return nil, nil
}

func (s *stubAuthService) CreateSession(user *models.AdminUser) (string, error) {
	return "token", nil
}

func (s *stubAuthService) VerifySession(token string) (*models.AdminUser, error) {
	return nil, models.ErrorUnauthorized{Message: "invalid or expired token"}
}

func (s *stubAuthService) ListUsers() ([]models.AdminUser, error) {
	return s.users, nil
}

func (s *stubAuthService) CreateUser(req models.CreateUserRequest) (*models.AdminUser, error) {
	if s.createUserFn != nil {
		return s.createUserFn(req)
	}
	return &models.AdminUser{Email: req.Email}, nil
}

func authRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc, helper.NewHTTPHelper())

	router := gin.New()
	router.POST("/api/admin/login", h.Login)
	router.GET("/api/admin/users", h.GetUsers)
	router.POST("/api/admin/users", h.CreateUser)
	return router
}

func TestLoginMissingFields(t *testing.T) {
	router := authRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"email": "admin@thinkscope.in"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields: password")
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(req models.LoginRequest) (*models.AuthResponse, error) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		},
	}
	router := authRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"email": "admin@thinkscope.in", "password": "wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLoginSuccess(t *testing.T) {
	router := authRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"email": "admin@thinkscope.in", "password": "s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"token"`)
}

func TestCreateUserConflict(t *testing.T) {
	svc := &stubAuthService{
		createUserFn: func(req models.CreateUserRequest) (*models.AdminUser, error) {
			return nil, models.ErrorConflict{Message: "a user with this email already exists"}
		},
	}
	router := authRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users",
		strings.NewReader(`{"email": "dup@thinkscope.in", "password": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetUsers(t *testing.T) {
	svc := &stubAuthService{users: []models.AdminUser{
		{Email: "a@thinkscope.in"},
		{Email: "b@thinkscope.in"},
	}}
	router := authRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@thinkscope.in")
	assert.Contains(t, w.Body.String(), "b@thinkscope.in")
}
