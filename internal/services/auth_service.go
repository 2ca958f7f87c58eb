package services

import (
	"context"
	"errors"
	"time"

	"tagalong/internal/config"
	"tagalong/internal/models"
	"tagalong/internal/store"
	"tagalong/internal/utils"
	"tagalong/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	SignIn(ctx context.Context, request *SignInRequest) (*AuthResponse, error)
	SignUp(ctx context.Context, request *SignUpRequest) (*AuthResponse, error)
	GetUser(ctx context.Context, id string) (*models.PublicProfile, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type AuthResponse struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	User      *models.PublicProfile `json:"user"`
}

// TokenClaims mirrors what the auth middleware parses back out.
type TokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type authService struct {
	users    *store.UserStore
	security *config.SecurityConfig
	logger   *logger.Logger
}

func NewAuthService(users *store.UserStore, security *config.SecurityConfig, log *logger.Logger) AuthService {
	return &authService{
		users:    users,
		security: security,
		logger:   log,
	}
}

func (s *authService) SignIn(ctx context.Context, request *SignInRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(request.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.WithUserID(user.ID).Info("User signed in")

	return s.issueToken(user)
}

func (s *authService) SignUp(ctx context.Context, request *SignUpRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(request.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:         utils.NewID(),
		Name:       request.Name,
		Email:      request.Email,
		Password:   string(hash),
		Rating:     0,
		IsVerified: false,
		Status:     models.UserStatusActive,
		DateJoined: time.Now(),
	}
	if err := s.users.Add(user); err != nil {
		return nil, err
	}

	s.logger.WithUserID(user.ID).Info("User registered")

	return s.issueToken(user)
}

func (s *authService) GetUser(ctx context.Context, id string) (*models.PublicProfile, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.users.GetByID(userID)
}

func (s *authService) issueToken(user *models.User) (*AuthResponse, error) {
	ttl := s.security.JWTAccessTokenTTL
	if ttl == 0 {
		ttl = utils.JWTAccessTokenTTL
	}
	expiresAt := time.Now().Add(ttl)

	claims := &TokenClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.security.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Public(),
	}, nil
}
