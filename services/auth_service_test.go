package services

import (
	"testing"
	"time"

	"thinkscope-cms/config"
	"thinkscope-cms/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockAdminUserRepo struct {
	users   []models.AdminUser
	created []*models.AdminUser
}

func (m *mockAdminUserRepo) Create(user *models.AdminUser) error {
	user.ID = uint(len(m.users) + len(m.created) + 1)
	m.created = append(m.created, user)
	m.users = append(m.users, *user)
	return nil
}

func (m *mockAdminUserRepo) GetByEmail(email string) (*models.AdminUser, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminUserRepo) GetAll() ([]models.AdminUser, error) {
	return m.users, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestLoginRoundTrip(t *testing.T) {
	repo := &mockAdminUserRepo{users: []models.AdminUser{{
		ID:       1,
		Email:    "admin@thinkscope.in",
		Password: hashPassword(t, "s3cret"),
		Role:     "admin",
		IsActive: true,
	}}}
	svc := NewAuthService(repo, &config.Config{})

	resp, err := svc.Login(models.LoginRequest{Email: "admin@thinkscope.in", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.Password)

	user, err := svc.VerifySession(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@thinkscope.in", user.Email)
	assert.Empty(t, user.Password)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &mockAdminUserRepo{users: []models.AdminUser{{
		Email:    "admin@thinkscope.in",
		Password: hashPassword(t, "s3cret"),
		IsActive: true,
	}}}
	svc := NewAuthService(repo, &config.Config{})

	_, err := svc.Login(models.LoginRequest{Email: "admin@thinkscope.in", Password: "wrong"})
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := &mockAdminUserRepo{users: []models.AdminUser{{
		Email:    "admin@thinkscope.in",
		Password: hashPassword(t, "s3cret"),
		IsActive: false,
	}}}
	svc := NewAuthService(repo, &config.Config{})

	_, err := svc.Login(models.LoginRequest{Email: "admin@thinkscope.in", Password: "s3cret"})
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(&mockAdminUserRepo{}, &config.Config{})

	_, err := svc.Login(models.LoginRequest{Email: "ghost@thinkscope.in", Password: "anything"})
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestLoginEnvFallback(t *testing.T) {
	cfg := &config.Config{AdminEmail: "root@thinkscope.in", AdminPassword: "bootstrap"}
	svc := NewAuthService(&mockAdminUserRepo{}, cfg)

	resp, err := svc.Login(models.LoginRequest{Email: "root@thinkscope.in", Password: "bootstrap"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Role)

	// The fallback token must survive verification too.
	user, err := svc.VerifySession(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "root@thinkscope.in", user.Email)
}

func TestVerifySessionGarbageToken(t *testing.T) {
	svc := NewAuthService(&mockAdminUserRepo{}, &config.Config{})

	_, err := svc.VerifySession("not-a-jwt")
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestVerifySessionExpiredToken(t *testing.T) {
	repo := &mockAdminUserRepo{users: []models.AdminUser{{
		Email:    "admin@thinkscope.in",
		Password: hashPassword(t, "s3cret"),
		IsActive: true,
	}}}
	svc := NewAuthService(repo, &config.Config{})

	// Same claims CreateSession issues, but with the expiry in the past.
	now := time.Now()
	claims := jwt.MapClaims{
		"email": "admin@thinkscope.in",
		"role":  "admin",
		"exp":   now.Add(-time.Hour).Unix(),
		"iat":   now.Add(-2 * time.Hour).Unix(),
		"nbf":   now.Add(-2 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	require.NoError(t, err)

	_, err = svc.VerifySession(token)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestVerifySessionDeactivatedUser(t *testing.T) {
	repo := &mockAdminUserRepo{users: []models.AdminUser{{
		Email:    "admin@thinkscope.in",
		Password: hashPassword(t, "s3cret"),
		IsActive: true,
	}}}
	svc := NewAuthService(repo, &config.Config{})

	resp, err := svc.Login(models.LoginRequest{Email: "admin@thinkscope.in", Password: "s3cret"})
	require.NoError(t, err)

	// Deactivate after the token was issued; the token must stop working.
	repo.users[0].IsActive = false

	_, err = svc.VerifySession(resp.Token)
	assert.IsType(t, models.ErrorUnauthorized{}, err)
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := &mockAdminUserRepo{}
	svc := NewAuthService(repo, &config.Config{})

	user, err := svc.CreateUser(models.CreateUserRequest{
		Email:    "editor@thinkscope.in",
		Password: "s3cret",
		Name:     "Editor",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", user.Role)
	assert.Empty(t, user.Password, "response must not carry the hash")

	require.Len(t, repo.created, 1)
	stored := repo.created[0].Password
	assert.NotEqual(t, "s3cret", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("s3cret")))
}

func TestCreateUserInvalidEmail(t *testing.T) {
	svc := NewAuthService(&mockAdminUserRepo{}, &config.Config{})

	_, err := svc.CreateUser(models.CreateUserRequest{Email: "not-an-email", Password: "x"})
	assert.IsType(t, models.ErrorValidation{}, err)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := &mockAdminUserRepo{users: []models.AdminUser{{Email: "editor@thinkscope.in"}}}
	svc := NewAuthService(repo, &config.Config{})

	_, err := svc.CreateUser(models.CreateUserRequest{Email: "editor@thinkscope.in", Password: "x"})
	assert.IsType(t, models.ErrorConflict{}, err)
	assert.Empty(t, repo.created)
}

func TestListUsersStripsPasswords(t *testing.T) {
	repo := &mockAdminUserRepo{users: []models.AdminUser{
		{Email: "a@thinkscope.in", Password: "hash-a"},
		{Email: "b@thinkscope.in", Password: "hash-b"},
	}}
	svc := NewAuthService(repo, &config.Config{})

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}
