package testutils

import (
	"fmt"
	"time"

	"lead-center-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all test data factories
type FactorySet struct {
	Lead       *LeadFactory
	User       *UserFactory
	Assignment *AssignmentFactory
	Campaign   *CampaignFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Lead:       NewLeadFactory(),
		User:       NewUserFactory(),
		Assignment: NewAssignmentFactory(),
		Campaign:   NewCampaignFactory(),
	}
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values
func (f *LeadFactory) Create() *models.Lead {
	id := uuid.New()
	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RefID:        "LD-" + id.String()[:8],
		Name:         "Test Lead",
		Phone:        "+919876543210",
		Gender:       "female",
		School:       "Test School",
		Locality:     "Test Locality",
		District:     "Test District",
		CustomFields: models.CustomFieldMap{},
	}
}

// WithRefID sets a custom ref id for the lead
func (f *LeadFactory) WithRefID(refID string) *models.Lead {
	lead := f.Create()
	lead.RefID = refID
	return lead
}

// WithName sets a custom name for the lead
func (f *LeadFactory) WithName(name string) *models.Lead {
	lead := f.Create()
	lead.Name = name
	return lead
}

// WithPhone sets a custom phone number for the lead
func (f *LeadFactory) WithPhone(phone string) *models.Lead {
	lead := f.Create()
	lead.Phone = phone
	return lead
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Emails are unique per call
// to avoid index conflicts.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "Test Caller",
		Phone:  "+919812345678",
		Email:  fmt.Sprintf("caller-%s@test.com", id.String()[:8]),
		Role:   models.UserRoleCaller,
		Status: models.UserStatusActive,
	}
}

// WithName sets a custom display name for the user
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithStatus sets a custom status for the user
func (f *UserFactory) WithStatus(status models.UserStatus) *models.User {
	user := f.Create()
	user.Status = status
	return user
}

// Admin creates an active admin user
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Name = "Test Admin"
	user.Role = models.UserRoleAdmin
	return user
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test Assignment with default values. Seq is left zero so
// the database assigns the next sequence value on insert.
func (f *AssignmentFactory) Create() *models.Assignment {
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeadRef:      "LD-TEST0001",
		UserID:       uuid.New(),
		UserName:     "Test Caller",
		AssignedTime: time.Now(),
		Disposition:  models.DispositionNew,
	}
}

// ForLead sets the lead ref for the assignment
func (f *AssignmentFactory) ForLead(leadRef string) *models.Assignment {
	ev := f.Create()
	ev.LeadRef = leadRef
	return ev
}

// ForUser sets the owning user for the assignment
func (f *AssignmentFactory) ForUser(user *models.User) *models.Assignment {
	ev := f.Create()
	ev.UserID = user.ID
	ev.UserName = user.Name
	return ev
}

// WithDisposition sets a disposition and stamps its time
func (f *AssignmentFactory) WithDisposition(d models.Disposition) *models.Assignment {
	ev := f.Create()
	now := time.Now()
	ev.Disposition = d
	ev.DispositionTime = &now
	return ev
}

// CampaignFactory provides methods to create test Campaign data
type CampaignFactory struct{}

// NewCampaignFactory creates a new CampaignFactory
func NewCampaignFactory() *CampaignFactory {
	return &CampaignFactory{}
}

// Create creates a test Campaign with a unique name
func (f *CampaignFactory) Create() *models.Campaign {
	id := uuid.New()
	return &models.Campaign{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Campaign " + id.String()[:8],
	}
}

// WithName sets a custom name for the campaign
func (f *CampaignFactory) WithName(name string) *models.Campaign {
	campaign := f.Create()
	campaign.Name = name
	return campaign
}
