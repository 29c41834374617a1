package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/logger"
	"lead-center-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AssignmentService provides business logic for the assignment log
type AssignmentService struct {
	repo       repository.AssignmentRepositoryInterface
	leadRepo   repository.LeadRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	suggestion SuggestionServiceInterface
	catalog    *DispositionCatalog
	validator  *validator.Validate
}

// Ensure AssignmentService implements AssignmentServiceInterface
var _ AssignmentServiceInterface = (*AssignmentService)(nil)

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	repo repository.AssignmentRepositoryInterface,
	leadRepo repository.LeadRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	suggestion SuggestionServiceInterface,
	catalog *DispositionCatalog,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		repo:       repo,
		leadRepo:   leadRepo,
		userRepo:   userRepo,
		suggestion: suggestion,
		catalog:    catalog,
		validator:  validator,
	}
}

// CreateDispositionRequest represents the data a caller files after working a lead
type CreateDispositionRequest struct {
	LeadRef        string     `json:"lead_ref" validate:"required"`
	CallerID       uuid.UUID  `json:"caller_id" validate:"required"`
	Disposition    string     `json:"disposition" validate:"required"`
	SubDisposition string     `json:"sub_disposition"`
	Remark         string     `json:"remark" validate:"max=500"`
	FollowUpDate   *time.Time `json:"follow_up_date"`
	ScheduleDate   *time.Time `json:"schedule_date"`
}

// ListAssignments retrieves the full assignment log
func (s *AssignmentService) ListAssignments() ([]AssignmentResponse, error) {
	events, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment log: %w", err)
	}

	responses := make([]AssignmentResponse, len(events))
	for i, ev := range events {
		responses[i] = ToAssignmentResponse(&ev)
	}
	return responses, nil
}

// BulkAssign hands a set of leads to one caller: one New event per lead,
// written in a single transaction. The target must resolve to an active
// caller, and every lead must exist.
func (s *AssignmentService) BulkAssign(refIDs []string, callerID uuid.UUID) ([]AssignmentResponse, error) {
	if len(refIDs) == 0 {
		return nil, apperrors.ErrEmptyLeadSelection
	}

	caller, err := s.userRepo.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsEligibleCaller() {
		return nil, apperrors.ErrUserNotEligible
	}

	existing, err := s.leadRepo.ExistingRefIDs(refIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve leads: %w", err)
	}
	if len(existing) != len(dedupe(refIDs)) {
		return nil, apperrors.ErrLeadNotFound
	}

	now := time.Now()
	events := make([]*models.Assignment, 0, len(refIDs))
	for _, ref := range dedupe(refIDs) {
		events = append(events, &models.Assignment{
			LeadRef:      ref,
			UserID:       caller.ID,
			UserName:     caller.Name,
			AssignedTime: now,
			Disposition:  models.DispositionNew,
		})
	}

	if err := s.repo.CreateBatch(events); err != nil {
		return nil, fmt.Errorf("failed to create assignments: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"caller": caller.ID,
		"leads":  len(events),
	}).Info("bulk-assigned leads")

	responses := make([]AssignmentResponse, len(events))
	for i, ev := range events {
		responses[i] = ToAssignmentResponse(ev)
	}
	return responses, nil
}

// CreateDisposition appends exactly one new event carrying the caller's
// outcome. History is never rewritten; this event becomes the lead's latest
// state by the timestamp-max rule.
func (s *AssignmentService) CreateDisposition(req *CreateDispositionRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	disposition := models.Disposition(req.Disposition)
	if !disposition.IsValid() || disposition == models.DispositionNew {
		return nil, apperrors.ErrInvalidDisposition
	}

	sub := strings.TrimSpace(req.SubDisposition)
	if sub != "" && !s.catalog.Contains(disposition, sub) {
		return nil, apperrors.ErrInvalidSubDisposition
	}

	caller, err := s.userRepo.GetByID(req.CallerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.leadRepo.GetByRefID(req.LeadRef); err != nil {
		return nil, err
	}

	now := time.Now()
	event := &models.Assignment{
		LeadRef:         req.LeadRef,
		UserID:          caller.ID,
		UserName:        caller.Name,
		AssignedTime:    now,
		Disposition:     disposition,
		DispositionTime: &now,
		Remark:          strings.TrimSpace(req.Remark),
		FollowUpDate:    req.FollowUpDate,
		ScheduleDate:    req.ScheduleDate,
	}
	if sub != "" {
		event.SubDisposition = sub
		event.SubDispositionTime = &now
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to record disposition: %w", err)
	}

	resp := ToAssignmentResponse(event)
	return &resp, nil
}

// SuggestSubDisposition asks the external suggester for an advisory label
// given free-text remarks and the lead's recent history. Suggester failures
// surface as upstream errors here, but the disposition flow never waits on
// or requires this call.
func (s *AssignmentService) SuggestSubDisposition(ctx context.Context, leadRef, remarks string) (*SuggestionResult, error) {
	if _, err := s.leadRepo.GetByRefID(leadRef); err != nil {
		return nil, err
	}

	history, err := s.repo.GetByLeadRef(leadRef)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment history: %w", err)
	}
	// The suggester only needs recent context, not the whole history.
	if len(history) > 10 {
		history = history[:10]
	}

	result, err := s.suggestion.Suggest(ctx, remarks, history)
	if err != nil {
		logger.New().WithField("lead", leadRef).Warnf("suggestion unavailable: %v", err)
		return nil, err
	}
	return result, nil
}

// dedupe preserves first-seen order
func dedupe(refs []string) []string {
	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
