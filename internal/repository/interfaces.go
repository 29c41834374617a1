package repository

import (
	"lead-center-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	CreateBatch(leads []*models.Lead, campaignName string) (int, error)
	GetByRefID(refID string) (*models.Lead, error)
	GetAll(limit, offset int) ([]models.Lead, int64, error)
	GetAllOrdered() ([]models.Lead, error)
	ExistingRefIDs(refIDs []string) ([]string, error)
	SetCustomField(refID, field string, value models.CustomFieldValue) error
	TagCampaign(refIDs []string, campaignName string) (int, error)
}

// AssignmentRepositoryInterface defines the interface for the append-only
// assignment log. There is deliberately no Update or Delete: a change of
// disposition is a new event.
type AssignmentRepositoryInterface interface {
	Create(event *models.Assignment) error
	CreateBatch(events []*models.Assignment) error
	GetAll() ([]models.Assignment, error)
	GetByLeadRef(leadRef string) ([]models.Assignment, error)
	GetByUserID(userID uuid.UUID) ([]models.Assignment, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetEligibleCallers() ([]models.User, error)
	UpdateStatus(id uuid.UUID, status models.UserStatus) error
	Update(user *models.User) error
}

// CampaignRepositoryInterface defines the interface for campaign repository operations
type CampaignRepositoryInterface interface {
	GetOrCreate(name string) (*models.Campaign, error)
	GetByName(name string) (*models.Campaign, error)
	GetAll() ([]models.Campaign, error)
}
