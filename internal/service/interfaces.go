package service

import (
	"context"

	"lead-center-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	ListLeads(page, pageSize int) (*LeadListResponse, error)
	GetLead(refID string) (*LeadResponse, error)
	CreateLead(req *CreateLeadRequest) (*LeadResponse, error)
	GetHistory(refID string) ([]AssignmentResponse, error)
	SetCampaignTag(refIDs []string, campaignName string) (int, error)
	ListCampaigns() ([]CampaignResponse, error)
	SetCustomField(refID, field, value string, callerID uuid.UUID) (*LeadResponse, error)
}

// ImportServiceInterface defines the interface for lead import
type ImportServiceInterface interface {
	Import(batch *ImportBatch, campaignName string) (int, error)
}

// AssignmentServiceInterface defines the interface for assignment operations
type AssignmentServiceInterface interface {
	ListAssignments() ([]AssignmentResponse, error)
	BulkAssign(refIDs []string, callerID uuid.UUID) ([]AssignmentResponse, error)
	CreateDisposition(req *CreateDispositionRequest) (*AssignmentResponse, error)
	SuggestSubDisposition(ctx context.Context, leadRef, remarks string) (*SuggestionResult, error)
}

// DashboardServiceInterface defines the interface for derived dashboard views
type DashboardServiceInterface interface {
	Summary(callerID *uuid.UUID) (*DashboardSummaryResponse, error)
	CallerStats() ([]CallerStatsResponse, error)
	RecentActivity(limit int, callerID *uuid.UUID) ([]ActivityResponse, error)
	CallerQueue(callerID uuid.UUID) (*CallerQueueResponse, error)
	QueueNeighbors(callerID uuid.UUID, refID string) (*QueueNeighborsResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	ListUsers(page, pageSize int) (*UserListResponse, error)
	SetStatus(id uuid.UUID, status models.UserStatus) (*UserResponse, error)
	EligibleCallers() ([]UserResponse, error)
}

// SuggestionServiceInterface is the advisory capability of the external
// sub-disposition suggester. A failure here must never block a disposition
// update.
type SuggestionServiceInterface interface {
	Suggest(ctx context.Context, remarks string, history []models.Assignment) (*SuggestionResult, error)
}
