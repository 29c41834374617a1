package service

import (
	"fmt"
	"strings"
	"time"

	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/leadstate"
	"lead-center-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
)

// LeadService provides lead-related business logic
type LeadService struct {
	repo           repository.LeadRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	campaignRepo   repository.CampaignRepositoryInterface
	validator      *validator.Validate
	phoneRegion    string
}

// Ensure LeadService implements LeadServiceInterface
var _ LeadServiceInterface = (*LeadService)(nil)

// NewLeadService creates a new LeadService
func NewLeadService(
	repo repository.LeadRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	campaignRepo repository.CampaignRepositoryInterface,
	validator *validator.Validate,
	phoneRegion string,
) *LeadService {
	return &LeadService{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		campaignRepo:   campaignRepo,
		validator:      validator,
		phoneRegion:    phoneRegion,
	}
}

// CreateLeadRequest represents the data needed to create a lead manually
type CreateLeadRequest struct {
	RefID    string `json:"ref_id" validate:"omitempty,max=40"`
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Gender   string `json:"gender" validate:"max=20"`
	School   string `json:"school" validate:"max=100"`
	Locality string `json:"locality" validate:"max=100"`
	District string `json:"district" validate:"max=100"`
}

// CustomFieldResponse is one named custom field in API responses
type CustomFieldResponse struct {
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeadResponse represents a single lead in API responses, including its
// derived current state
type LeadResponse struct {
	RefID              string                         `json:"ref_id"`
	Name               string                         `json:"name"`
	Phone              string                         `json:"phone"`
	Gender             string                         `json:"gender,omitempty"`
	School             string                         `json:"school,omitempty"`
	Locality           string                         `json:"locality,omitempty"`
	District           string                         `json:"district,omitempty"`
	Campaigns          []string                       `json:"campaigns"`
	CustomFields       map[string]CustomFieldResponse `json:"custom_fields"`
	CreatedAt          time.Time                      `json:"created_at"`
	CurrentDisposition models.Disposition             `json:"current_disposition"`
	CurrentOwnerID     *uuid.UUID                     `json:"current_owner_id,omitempty"`
	CurrentOwnerName   string                         `json:"current_owner_name,omitempty"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Leads    []LeadResponse `json:"leads"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// AssignmentResponse represents one assignment event in API responses
type AssignmentResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Seq                int64              `json:"seq"`
	LeadRef            string             `json:"lead_ref"`
	UserID             uuid.UUID          `json:"user_id"`
	UserName           string             `json:"user_name"`
	AssignedTime       time.Time          `json:"assigned_time"`
	Disposition        models.Disposition `json:"disposition"`
	DispositionTime    *time.Time         `json:"disposition_time,omitempty"`
	SubDisposition     string             `json:"sub_disposition,omitempty"`
	SubDispositionTime *time.Time         `json:"sub_disposition_time,omitempty"`
	Remark             string             `json:"remark,omitempty"`
	FollowUpDate       *time.Time         `json:"follow_up_date,omitempty"`
	ScheduleDate       *time.Time         `json:"schedule_date,omitempty"`
}

// ListLeads retrieves leads with pagination, each merged with its current
// derived state from the assignment log.
func (s *LeadService) ListLeads(page, pageSize int) (*LeadListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 500 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	leads, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}

	events, err := s.assignmentRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment log: %w", err)
	}
	latest := leadstate.Reduce(events)

	responses := make([]LeadResponse, len(leads))
	for i, l := range leads {
		responses[i] = s.toResponse(&l, latest)
	}

	return &LeadListResponse{
		Leads:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetLead retrieves a single lead by ref id with its current state
func (s *LeadService) GetLead(refID string) (*LeadResponse, error) {
	lead, err := s.repo.GetByRefID(refID)
	if err != nil {
		return nil, err
	}

	events, err := s.assignmentRepo.GetByLeadRef(refID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment history: %w", err)
	}
	latest := leadstate.Reduce(events)

	resp := s.toResponse(lead, latest)
	return &resp, nil
}

// CreateLead creates a lead manually. The phone number is normalized to
// E.164 when it parses for the configured region; the raw input is kept
// otherwise. A missing ref id gets a generated one.
func (s *LeadService) CreateLead(req *CreateLeadRequest) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	refID := strings.TrimSpace(req.RefID)
	if refID == "" {
		refID = NewLeadRefID()
	}
	if existing, err := s.repo.GetByRefID(refID); err == nil && existing != nil {
		return nil, apperrors.ErrLeadExists
	}

	lead := &models.Lead{
		RefID:        refID,
		Name:         strings.TrimSpace(req.Name),
		Phone:        NormalizePhone(req.Phone, s.phoneRegion),
		Gender:       req.Gender,
		School:       req.School,
		Locality:     req.Locality,
		District:     req.District,
		CustomFields: models.CustomFieldMap{},
	}

	if err := s.repo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	resp := s.toResponse(lead, nil)
	return &resp, nil
}

// GetHistory retrieves one lead's full assignment history, newest first
func (s *LeadService) GetHistory(refID string) ([]AssignmentResponse, error) {
	if _, err := s.repo.GetByRefID(refID); err != nil {
		return nil, err
	}

	events, err := s.assignmentRepo.GetByLeadRef(refID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment history: %w", err)
	}

	responses := make([]AssignmentResponse, len(events))
	for i, ev := range events {
		responses[i] = ToAssignmentResponse(&ev)
	}
	return responses, nil
}

// SetCampaignTag tags every lead in refIDs with the named campaign,
// creating the campaign if it does not exist yet. All-or-nothing.
func (s *LeadService) SetCampaignTag(refIDs []string, campaignName string) (int, error) {
	campaignName = strings.TrimSpace(campaignName)
	if campaignName == "" {
		return 0, apperrors.NewValidationError("campaign", "campaign name is required")
	}
	if len(refIDs) == 0 {
		return 0, apperrors.ErrEmptyLeadSelection
	}

	count, err := s.repo.TagCampaign(refIDs, campaignName)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CampaignResponse represents one campaign in API responses
type CampaignResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ListCampaigns retrieves every campaign, newest first
func (s *LeadService) ListCampaigns() ([]CampaignResponse, error) {
	campaigns, err := s.campaignRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}

	responses := make([]CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		responses[i] = CampaignResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
	}
	return responses, nil
}

// SetCustomField fills a named custom field on a lead, stamped with the
// acting user's name and the current time. Already-populated fields are
// read-only; the write is rejected with ErrCustomFieldAlreadySet.
func (s *LeadService) SetCustomField(refID, field, value string, callerID uuid.UUID) (*LeadResponse, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, apperrors.NewValidationError("field", "custom field name is required")
	}
	if strings.TrimSpace(value) == "" {
		return nil, apperrors.NewValidationError("value", "custom field value is required")
	}

	user, err := s.userRepo.GetByID(callerID)
	if err != nil {
		return nil, err
	}

	stamp := models.CustomFieldValue{
		Value:     value,
		UpdatedBy: user.Name,
		UpdatedAt: time.Now(),
	}
	if err := s.repo.SetCustomField(refID, field, stamp); err != nil {
		return nil, err
	}

	return s.GetLead(refID)
}

// toResponse converts a Lead model plus the latest-state map to an API response
func (s *LeadService) toResponse(lead *models.Lead, latest map[string]models.Assignment) LeadResponse {
	resp := LeadResponse{
		RefID:              lead.RefID,
		Name:               lead.Name,
		Phone:              lead.Phone,
		Gender:             lead.Gender,
		School:             lead.School,
		Locality:           lead.Locality,
		District:           lead.District,
		Campaigns:          make([]string, 0, len(lead.Campaigns)),
		CustomFields:       make(map[string]CustomFieldResponse, len(lead.CustomFields)),
		CreatedAt:          lead.CreatedAt,
		CurrentDisposition: models.DispositionNew,
	}
	for _, c := range lead.Campaigns {
		resp.Campaigns = append(resp.Campaigns, c.Name)
	}
	for name, f := range lead.CustomFields {
		resp.CustomFields[name] = CustomFieldResponse{
			Value:     f.Value,
			UpdatedBy: f.UpdatedBy,
			UpdatedAt: f.UpdatedAt,
		}
	}
	if ev, ok := latest[lead.RefID]; ok {
		resp.CurrentDisposition = leadstate.EffectiveDisposition(&ev)
		ownerID := ev.UserID
		resp.CurrentOwnerID = &ownerID
		resp.CurrentOwnerName = ev.UserName
	}
	return resp
}

// ToAssignmentResponse converts an Assignment model to an API response
func ToAssignmentResponse(ev *models.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:                 ev.ID,
		Seq:                ev.Seq,
		LeadRef:            ev.LeadRef,
		UserID:             ev.UserID,
		UserName:           ev.UserName,
		AssignedTime:       ev.AssignedTime,
		Disposition:        ev.Disposition,
		DispositionTime:    ev.DispositionTime,
		SubDisposition:     ev.SubDisposition,
		SubDispositionTime: ev.SubDispositionTime,
		Remark:             ev.Remark,
		FollowUpDate:       ev.FollowUpDate,
		ScheduleDate:       ev.ScheduleDate,
	}
}

// NewLeadRefID generates an opaque lead ref id
func NewLeadRefID() string {
	return "LD-" + strings.ToUpper(uuid.New().String()[:8])
}

// NormalizePhone formats a raw phone number to E.164 for the given region.
// Numbers that do not parse are returned trimmed but otherwise verbatim;
// normalization is best effort, not validation.
func NormalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
