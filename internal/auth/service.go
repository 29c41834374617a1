package auth

import (
	"fmt"
	"strings"
	"time"

	"lead-center-backend/internal/config"
	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthClaims are the JWT claims carried by every issued token
type AuthClaims struct {
	UserID uuid.UUID       `json:"user_id"`
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and validates login tokens. Account status gates login:
// pending users cannot log in yet and inactive users are blocked.
type AuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepositoryInterface
}

// NewAuthService creates a new AuthService
func NewAuthService(cfg *config.Config, userRepo repository.UserRepositoryInterface) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// LoginResponse is the result of a successful login
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	UserID    uuid.UUID       `json:"user_id"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
}

// Login verifies credentials and account status, then issues a JWT
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Same answer as a bad password; do not leak which emails exist.
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch user.Status {
	case models.UserStatusPending:
		return nil, apperrors.ErrUserPending
	case models.UserStatusInactive:
		return nil, apperrors.ErrUserInactive
	}

	ttl := time.Duration(s.cfg.JWTTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	expiresAt := time.Now().Add(ttl)

	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    "lead-center",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Name:      user.Name,
		Role:      user.Role,
	}, nil
}

// ValidateJWT parses and verifies a token string
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
