package services

import (
	"crypto/subtle"
	"errors"
	"regexp"
	"time"

	"thinkscope-cms/config"
	"thinkscope-cms/models"
	"thinkscope-cms/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService interface {
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	ValidateCredentials(email, password string) (*models.AdminUser, error)
	CreateSession(user *models.AdminUser) (string, error)
	VerifySession(token string) (*models.AdminUser, error)
	ListUsers() ([]models.AdminUser, error)
	CreateUser(req models.CreateUserRequest) (*models.AdminUser, error)
}

type authService struct {
	userRepo repositories.AdminUserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.AdminUserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.CreateSession(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

// ValidateCredentials checks the pair against the active admin user record,
// falling back to the env-configured bootstrap credential when set. The
// returned user never carries the password hash.
func (s *authService) ValidateCredentials(email, password string) (*models.AdminUser, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if fallback := s.fallbackUser(email, password); fallback != nil {
				return fallback, nil
			}
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	return sanitize(user), nil
}

func (s *authService) CreateSession(user *models.AdminUser) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  user.Role,
		"exp":   now.Add(config.JWTExpiration).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// VerifySession parses the token and re-checks the user's current state, so
// a deactivated user's outstanding tokens stop working immediately.
func (s *authService) VerifySession(tokenString string) (*models.AdminUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrorUnauthorized{Message: "invalid or expired token"}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.ErrorUnauthorized{Message: "invalid or expired token"}
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, models.ErrorUnauthorized{Message: "invalid or expired token"}
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if s.cfg != nil && s.cfg.AdminEmail != "" && email == s.cfg.AdminEmail {
				return &models.AdminUser{Email: email, Role: "admin", IsActive: true}, nil
			}
			return nil, models.ErrorUnauthorized{Message: "invalid or expired token"}
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, models.ErrorUnauthorized{Message: "invalid or expired token"}
	}

	return sanitize(user), nil
}

func (s *authService) ListUsers() ([]models.AdminUser, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *authService) CreateUser(req models.CreateUserRequest) (*models.AdminUser, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, models.ErrorValidation{Message: "invalid email format"}
	}

	existing, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrorConflict{Message: "a user with this email already exists"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "admin"
	}

	user := &models.AdminUser{
		Email:    req.Email,
		Password: string(hashed),
		Name:     req.Name,
		Role:     role,
		IsActive: true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return sanitize(user), nil
}

func (s *authService) fallbackUser(email, password string) *models.AdminUser {
	if s.cfg == nil || s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil
	}
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.cfg.AdminEmail))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword))
	if emailMatch == 1 && passMatch == 1 {
		return &models.AdminUser{Email: email, Role: "admin", IsActive: true}
	}
	return nil
}

func sanitize(user *models.AdminUser) *models.AdminUser {
	sanitized := *user
	sanitized.Password = ""
	return &sanitized
}
