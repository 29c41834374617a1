package service

import (
	"fmt"
	"sort"

	"lead-center-backend/internal/database/models"
	"lead-center-backend/internal/leadstate"
	"lead-center-backend/internal/repository"

	"github.com/google/uuid"
)

// DefaultActivityFeedSize is how many recent events the activity feed shows
const DefaultActivityFeedSize = 5

// DashboardService derives aggregate views from the assignment log.
// Everything here is recomputed on read; there is no materialized state.
type DashboardService struct {
	leadRepo       repository.LeadRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	userRepo       repository.UserRepositoryInterface
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	leadRepo repository.LeadRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		leadRepo:       leadRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
	}
}

// DashboardSummaryResponse is the disposition histogram. Buckets with zero
// members are absent; consumers render missing categories as zero.
type DashboardSummaryResponse struct {
	TotalLeads   int64                      `json:"total_leads"`
	Dispositions map[models.Disposition]int `json:"dispositions"`
}

// CallerStatsResponse is one caller's handled count
type CallerStatsResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Name    string    `json:"name"`
	Handled int       `json:"handled"`
}

// ActivityResponse is one entry of the recent-activity feed
type ActivityResponse struct {
	AssignmentResponse
	LeadName string `json:"lead_name,omitempty"`
}

// CallerQueueResponse is a caller's ordered worklist
type CallerQueueResponse struct {
	CallerID uuid.UUID `json:"caller_id"`
	RefIDs   []string  `json:"ref_ids"`
	Total    int       `json:"total"`
}

// QueueNeighborsResponse holds prev/next navigation inside a caller queue.
// An empty pointer means the lead sits at that end of the queue; InQueue is
// false when the lead is not in the caller's worklist at all.
type QueueNeighborsResponse struct {
	RefID    string `json:"ref_id"`
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
	InQueue  bool   `json:"in_queue"`
}

// Summary computes the disposition histogram. With a callerID the log is
// pre-filtered to that caller's events before reduction, so the result is
// "my dashboard"; without one it is the admin-wide view where leads with no
// events count under New.
func (s *DashboardService) Summary(callerID *uuid.UUID) (*DashboardSummaryResponse, error) {
	if callerID != nil {
		events, err := s.assignmentRepo.GetByUserID(*callerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get caller events: %w", err)
		}
		latest := leadstate.Reduce(events)
		hist := leadstate.EntryHistogram(latest)
		return &DashboardSummaryResponse{
			TotalLeads:   int64(len(latest)),
			Dispositions: hist,
		}, nil
	}

	leads, err := s.leadRepo.GetAllOrdered()
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}
	events, err := s.assignmentRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment log: %w", err)
	}

	latest := leadstate.Reduce(events)
	hist := leadstate.Histogram(leads, latest)
	return &DashboardSummaryResponse{
		TotalLeads:   int64(len(leads)),
		Dispositions: hist,
	}, nil
}

// CallerStats computes per-caller handled counts over the latest state,
// keyed by stable user id and sorted by handled count descending.
func (s *DashboardService) CallerStats() ([]CallerStatsResponse, error) {
	events, err := s.assignmentRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment log: %w", err)
	}
	counts := leadstate.HandledCounts(leadstate.Reduce(events))

	// Resolve display names; counts for deleted users would simply drop out,
	// but users are never deleted in this system.
	users, _, err := s.userRepo.GetAll(1000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	stats := make([]CallerStatsResponse, 0, len(counts))
	for _, u := range users {
		if u.Role != models.UserRoleCaller {
			continue
		}
		stats = append(stats, CallerStatsResponse{
			UserID:  u.ID,
			Name:    u.Name,
			Handled: counts[u.ID],
		})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Handled > stats[j].Handled })
	return stats, nil
}

// RecentActivity returns the most recent dispositioned events, system-wide
// or scoped to one caller.
func (s *DashboardService) RecentActivity(limit int, callerID *uuid.UUID) ([]ActivityResponse, error) {
	if limit <= 0 {
		limit = DefaultActivityFeedSize
	}

	var events []models.Assignment
	var err error
	if callerID != nil {
		events, err = s.assignmentRepo.GetByUserID(*callerID)
	} else {
		events, err = s.assignmentRepo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment log: %w", err)
	}

	feed := leadstate.RecentActivity(events, limit)

	// Lead names make the feed readable without a second round trip.
	names := make(map[string]string)
	if leads, err := s.leadRepo.GetAllOrdered(); err == nil {
		for _, l := range leads {
			names[l.RefID] = l.Name
		}
	}

	responses := make([]ActivityResponse, len(feed))
	for i, ev := range feed {
		responses[i] = ActivityResponse{
			AssignmentResponse: ToAssignmentResponse(&ev),
			LeadName:           names[ev.LeadRef],
		}
	}
	return responses, nil
}

// CallerQueue builds a caller's worklist fresh from the lead store and the
// assignment log. Worklist order follows the lead store.
func (s *DashboardService) CallerQueue(callerID uuid.UUID) (*CallerQueueResponse, error) {
	if _, err := s.userRepo.GetByID(callerID); err != nil {
		return nil, err
	}

	queue, err := s.buildQueue(callerID)
	if err != nil {
		return nil, err
	}

	return &CallerQueueResponse{
		CallerID: callerID,
		RefIDs:   queue,
		Total:    len(queue),
	}, nil
}

// QueueNeighbors finds the previous and next leads around refID in the
// caller's worklist.
func (s *DashboardService) QueueNeighbors(callerID uuid.UUID, refID string) (*QueueNeighborsResponse, error) {
	if _, err := s.userRepo.GetByID(callerID); err != nil {
		return nil, err
	}
	if _, err := s.leadRepo.GetByRefID(refID); err != nil {
		return nil, err
	}

	queue, err := s.buildQueue(callerID)
	if err != nil {
		return nil, err
	}

	prev, next, ok := leadstate.Neighbors(queue, refID)
	return &QueueNeighborsResponse{
		RefID:    refID,
		Previous: prev,
		Next:     next,
		InQueue:  ok,
	}, nil
}

func (s *DashboardService) buildQueue(callerID uuid.UUID) ([]string, error) {
	leads, err := s.leadRepo.GetAllOrdered()
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}
	events, err := s.assignmentRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment log: %w", err)
	}
	return leadstate.Queue(leads, leadstate.Reduce(events), callerID), nil
}
