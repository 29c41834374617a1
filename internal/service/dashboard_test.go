package service_test

import (
	"testing"
	"time"

	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/mocks"
	"lead-center-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardServiceTestSuite defines the test suite for DashboardService
type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockLeadRepo       *mocks.MockLeadRepositoryInterface
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	dashboardService   *service.DashboardService
}

// SetupTest sets up the test suite
func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	suite.dashboardService = service.NewDashboardService(
		suite.mockLeadRepo,
		suite.mockAssignmentRepo,
		suite.mockUserRepo,
	)
}

// TearDownTest cleans up after each test
func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func lead(refID string) models.Lead {
	return models.Lead{RefID: refID, Name: "Lead " + refID}
}

func event(leadRef string, userID uuid.UUID, seq int64, at time.Time, d models.Disposition) models.Assignment {
	ev := models.Assignment{
		Seq:          seq,
		LeadRef:      leadRef,
		UserID:       userID,
		UserName:     "Caller",
		AssignedTime: at,
		Disposition:  d,
	}
	if d != models.DispositionNew && d != "" {
		ev.DispositionTime = &at
	}
	return ev
}

// TestSummaryAdminView tests the global histogram where leads with no events
// count under New
func (suite *DashboardServiceTestSuite) TestSummaryAdminView() {
	callerID := uuid.New()
	base := time.Now()

	leads := []models.Lead{lead("LD-A"), lead("LD-B"), lead("LD-C")}
	events := []models.Assignment{
		event("LD-A", callerID, 1, base, models.DispositionNew),
		event("LD-A", callerID, 2, base.Add(time.Hour), models.DispositionInterested),
		event("LD-B", callerID, 3, base, models.DispositionCallback),
	}

	suite.mockLeadRepo.EXPECT().GetAllOrdered().Return(leads, nil)
	suite.mockAssignmentRepo.EXPECT().GetAll().Return(events, nil)

	summary, err := suite.dashboardService.Summary(nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), summary.TotalLeads)
	assert.Equal(suite.T(), 1, summary.Dispositions[models.DispositionInterested])
	assert.Equal(suite.T(), 1, summary.Dispositions[models.DispositionCallback])
	// LD-C has no events and counts as New
	assert.Equal(suite.T(), 1, summary.Dispositions[models.DispositionNew])
}

// TestSummaryCallerView tests the caller-scoped histogram over that caller's
// events only
func (suite *DashboardServiceTestSuite) TestSummaryCallerView() {
	callerID := uuid.New()
	base := time.Now()

	events := []models.Assignment{
		event("LD-A", callerID, 1, base, models.DispositionInterested),
		event("LD-B", callerID, 2, base, models.DispositionNew),
	}

	suite.mockAssignmentRepo.EXPECT().GetByUserID(callerID).Return(events, nil)

	summary, err := suite.dashboardService.Summary(&callerID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), summary.TotalLeads)
	assert.Equal(suite.T(), 1, summary.Dispositions[models.DispositionInterested])
	assert.Equal(suite.T(), 1, summary.Dispositions[models.DispositionNew])
}

// TestCallerStats tests per-caller handled counts sorted busiest first
func (suite *DashboardServiceTestSuite) TestCallerStats() {
	busy := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Busy", Role: models.UserRoleCaller}
	idle := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Idle", Role: models.UserRoleCaller}
	admin := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Admin", Role: models.UserRoleAdmin}
	base := time.Now()

	events := []models.Assignment{
		event("LD-A", busy.ID, 1, base, models.DispositionNew),
		event("LD-B", busy.ID, 2, base, models.DispositionNew),
		event("LD-C", idle.ID, 3, base, models.DispositionNew),
	}

	suite.mockAssignmentRepo.EXPECT().GetAll().Return(events, nil)
	suite.mockUserRepo.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return([]models.User{idle, busy, admin}, int64(3), nil)

	stats, err := suite.dashboardService.CallerStats()

	assert.NoError(suite.T(), err)
	// Admin is excluded, busiest caller first
	assert.Len(suite.T(), stats, 2)
	assert.Equal(suite.T(), busy.ID, stats[0].UserID)
	assert.Equal(suite.T(), 2, stats[0].Handled)
	assert.Equal(suite.T(), idle.ID, stats[1].UserID)
	assert.Equal(suite.T(), 1, stats[1].Handled)
}

// TestRecentActivity tests the feed ordering and lead name enrichment
func (suite *DashboardServiceTestSuite) TestRecentActivity() {
	callerID := uuid.New()
	base := time.Now()

	events := []models.Assignment{
		event("LD-A", callerID, 1, base.Add(-2*time.Hour), models.DispositionInterested),
		event("LD-B", callerID, 2, base.Add(-time.Hour), models.DispositionCallback),
		event("LD-C", callerID, 3, base, models.DispositionNotReachable),
	}

	suite.mockAssignmentRepo.EXPECT().GetAll().Return(events, nil)
	suite.mockLeadRepo.EXPECT().GetAllOrdered().Return([]models.Lead{lead("LD-A"), lead("LD-B"), lead("LD-C")}, nil)

	feed, err := suite.dashboardService.RecentActivity(2, nil)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), feed, 2)
	assert.Equal(suite.T(), "LD-C", feed[0].LeadRef)
	assert.Equal(suite.T(), "Lead LD-C", feed[0].LeadName)
	assert.Equal(suite.T(), "LD-B", feed[1].LeadRef)
}

// TestCallerQueue tests queue construction in lead-store order
func (suite *DashboardServiceTestSuite) TestCallerQueue() {
	caller := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.UserRoleCaller, Status: models.UserStatusActive}
	other := uuid.New()
	base := time.Now()

	leads := []models.Lead{lead("LD-A"), lead("LD-B"), lead("LD-C")}
	events := []models.Assignment{
		event("LD-A", caller.ID, 1, base, models.DispositionNew),
		event("LD-B", other, 2, base, models.DispositionNew),
		event("LD-C", caller.ID, 3, base, models.DispositionNew),
	}

	suite.mockUserRepo.EXPECT().GetByID(caller.ID).Return(&caller, nil)
	suite.mockLeadRepo.EXPECT().GetAllOrdered().Return(leads, nil)
	suite.mockAssignmentRepo.EXPECT().GetAll().Return(events, nil)

	queue, err := suite.dashboardService.CallerQueue(caller.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"LD-A", "LD-C"}, queue.RefIDs)
	assert.Equal(suite.T(), 2, queue.Total)
}

// TestQueueNeighbors tests prev/next navigation inside a queue
func (suite *DashboardServiceTestSuite) TestQueueNeighbors() {
	caller := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.UserRoleCaller, Status: models.UserStatusActive}
	base := time.Now()

	leads := []models.Lead{lead("LD-A"), lead("LD-B"), lead("LD-C")}
	events := []models.Assignment{
		event("LD-A", caller.ID, 1, base, models.DispositionNew),
		event("LD-B", caller.ID, 2, base, models.DispositionNew),
		event("LD-C", caller.ID, 3, base, models.DispositionNew),
	}

	suite.mockUserRepo.EXPECT().GetByID(caller.ID).Return(&caller, nil)
	suite.mockLeadRepo.EXPECT().GetByRefID("LD-B").Return(&models.Lead{RefID: "LD-B"}, nil)
	suite.mockLeadRepo.EXPECT().GetAllOrdered().Return(leads, nil)
	suite.mockAssignmentRepo.EXPECT().GetAll().Return(events, nil)

	neighbors, err := suite.dashboardService.QueueNeighbors(caller.ID, "LD-B")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), neighbors.InQueue)
	assert.Equal(suite.T(), "LD-A", neighbors.Previous)
	assert.Equal(suite.T(), "LD-C", neighbors.Next)
}

// TestQueueNeighborsUnknownCaller tests the not-found path
func (suite *DashboardServiceTestSuite) TestQueueNeighborsUnknownCaller() {
	callerID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(callerID).Return(nil, apperrors.ErrUserNotFound)

	neighbors, err := suite.dashboardService.QueueNeighbors(callerID, "LD-A")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
	assert.Nil(suite.T(), neighbors)
}

// TestDashboardServiceTestSuite runs the test suite
func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
