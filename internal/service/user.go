package service

import (
	"fmt"
	"strings"

	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"max=20"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin caller"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID     uuid.UUID         `json:"id"`
	Name   string            `json:"name"`
	Phone  string            `json:"phone,omitempty"`
	Email  string            `json:"email"`
	Role   models.UserRole   `json:"role"`
	Status models.UserStatus `json:"status"`
}

// UserListResponse is a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateUser registers a new user. Accounts start pending and cannot log in
// or receive leads until an admin activates them.
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.UserRoleCaller
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Phone:        req.Phone,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Role:         role,
		Status:       models.UserStatusPending,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := s.toResponse(user)
	return &resp, nil
}

// GetUserByID retrieves a user by id
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(user)
	return &resp, nil
}

// ListUsers retrieves users with pagination
func (s *UserService) ListUsers(page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 500 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	users, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = s.toResponse(&u)
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// SetStatus moves a user to a new lifecycle status
func (s *UserService) SetStatus(id uuid.UUID, status models.UserStatus) (*UserResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid status")
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.GetUserByID(id)
}

// EligibleCallers lists the users leads may be assigned to
func (s *UserService) EligibleCallers() ([]UserResponse, error) {
	users, err := s.repo.GetEligibleCallers()
	if err != nil {
		return nil, fmt.Errorf("failed to get eligible callers: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = s.toResponse(&u)
	}
	return responses, nil
}

// toResponse converts a User model to an API response
func (s *UserService) toResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Phone:  user.Phone,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}
}
