package service_test

import (
	"context"
	"testing"
	"time"

	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/mocks"
	"lead-center-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentServiceTestSuite defines the test suite for AssignmentService
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockLeadRepo       *mocks.MockLeadRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockSuggestion     *mocks.MockSuggestionServiceInterface
	assignmentService  *service.AssignmentService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockSuggestion = mocks.NewMockSuggestionServiceInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.assignmentService = service.NewAssignmentService(
		suite.mockAssignmentRepo,
		suite.mockLeadRepo,
		suite.mockUserRepo,
		suite.mockSuggestion,
		service.DefaultDispositionCatalog(),
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) activeCaller() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Asha",
		Email:     "asha@test.com",
		Role:      models.UserRoleCaller,
		Status:    models.UserStatusActive,
	}
}

// TestBulkAssign tests assigning several leads to one caller
func (suite *AssignmentServiceTestSuite) TestBulkAssign() {
	caller := suite.activeCaller()
	refs := []string{"LD-A", "LD-B", "LD-C"}

	suite.mockUserRepo.EXPECT().
		GetByID(caller.ID).
		Return(caller, nil).
		Times(1)

	suite.mockLeadRepo.EXPECT().
		ExistingRefIDs(refs).
		Return([]string{"LD-A", "LD-B", "LD-C"}, nil).
		Times(1)

	var captured []*models.Assignment
	suite.mockAssignmentRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(events []*models.Assignment) error {
			captured = events
			return nil
		}).
		Times(1)

	responses, err := suite.assignmentService.BulkAssign(refs, caller.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 3)
	assert.Len(suite.T(), captured, 3)
	for i, ev := range captured {
		assert.Equal(suite.T(), refs[i], ev.LeadRef)
		assert.Equal(suite.T(), caller.ID, ev.UserID)
		assert.Equal(suite.T(), caller.Name, ev.UserName)
		assert.Equal(suite.T(), models.DispositionNew, ev.Disposition)
		assert.False(suite.T(), ev.AssignedTime.IsZero())
	}
}

// TestBulkAssignDeduplicatesRefs tests that repeated refs produce one event each
func (suite *AssignmentServiceTestSuite) TestBulkAssignDeduplicatesRefs() {
	caller := suite.activeCaller()
	refs := []string{"LD-A", "LD-A", "LD-B"}

	suite.mockUserRepo.EXPECT().GetByID(caller.ID).Return(caller, nil)
	suite.mockLeadRepo.EXPECT().ExistingRefIDs(refs).Return([]string{"LD-A", "LD-B"}, nil)
	suite.mockAssignmentRepo.EXPECT().
		CreateBatch(gomock.Len(2)).
		Return(nil)

	responses, err := suite.assignmentService.BulkAssign(refs, caller.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
}

// TestBulkAssignEmptySelection tests rejecting an empty lead selection
func (suite *AssignmentServiceTestSuite) TestBulkAssignEmptySelection() {
	responses, err := suite.assignmentService.BulkAssign(nil, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyLeadSelection)
	assert.Nil(suite.T(), responses)
}

// TestBulkAssignIneligibleCaller tests rejecting a pending or admin target
func (suite *AssignmentServiceTestSuite) TestBulkAssignIneligibleCaller() {
	caller := suite.activeCaller()
	caller.Status = models.UserStatusPending

	suite.mockUserRepo.EXPECT().GetByID(caller.ID).Return(caller, nil)

	responses, err := suite.assignmentService.BulkAssign([]string{"LD-A"}, caller.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotEligible)
	assert.Nil(suite.T(), responses)
}

// TestBulkAssignMissingLead tests the all-or-nothing check on lead existence
func (suite *AssignmentServiceTestSuite) TestBulkAssignMissingLead() {
	caller := suite.activeCaller()
	refs := []string{"LD-A", "LD-MISSING"}

	suite.mockUserRepo.EXPECT().GetByID(caller.ID).Return(caller, nil)
	suite.mockLeadRepo.EXPECT().ExistingRefIDs(refs).Return([]string{"LD-A"}, nil)

	responses, err := suite.assignmentService.BulkAssign(refs, caller.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
	assert.Nil(suite.T(), responses)
}

// TestCreateDisposition tests appending a disposition event
func (suite *AssignmentServiceTestSuite) TestCreateDisposition() {
	caller := suite.activeCaller()
	req := &service.CreateDispositionRequest{
		LeadRef:        "LD-A",
		CallerID:       caller.ID,
		Disposition:    string(models.DispositionInterested),
		SubDisposition: "Requested Brochure",
		Remark:         "call back tomorrow",
	}

	suite.mockUserRepo.EXPECT().GetByID(caller.ID).Return(caller, nil)
	suite.mockLeadRepo.EXPECT().GetByRefID("LD-A").Return(&models.Lead{RefID: "LD-A"}, nil)

	var captured *models.Assignment
	suite.mockAssignmentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(ev *models.Assignment) error {
			captured = ev
			return nil
		})

	resp, err := suite.assignmentService.CreateDisposition(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), models.DispositionInterested, captured.Disposition)
	assert.Equal(suite.T(), "Requested Brochure", captured.SubDisposition)
	assert.NotNil(suite.T(), captured.DispositionTime)
	assert.NotNil(suite.T(), captured.SubDispositionTime)
	assert.Equal(suite.T(), caller.Name, captured.UserName)
}

// TestCreateDispositionRejectsNew tests that New cannot be recorded as an outcome
func (suite *AssignmentServiceTestSuite) TestCreateDispositionRejectsNew() {
	resp, err := suite.assignmentService.CreateDisposition(&service.CreateDispositionRequest{
		LeadRef:     "LD-A",
		CallerID:    uuid.New(),
		Disposition: string(models.DispositionNew),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDisposition)
	assert.Nil(suite.T(), resp)
}

// TestCreateDispositionUnknownDisposition tests rejecting labels outside the fixed set
func (suite *AssignmentServiceTestSuite) TestCreateDispositionUnknownDisposition() {
	resp, err := suite.assignmentService.CreateDisposition(&service.CreateDispositionRequest{
		LeadRef:     "LD-A",
		CallerID:    uuid.New(),
		Disposition: "Converted",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDisposition)
	assert.Nil(suite.T(), resp)
}

// TestCreateDispositionUnknownSubDisposition tests the catalog check
func (suite *AssignmentServiceTestSuite) TestCreateDispositionUnknownSubDisposition() {
	resp, err := suite.assignmentService.CreateDisposition(&service.CreateDispositionRequest{
		LeadRef:        "LD-A",
		CallerID:       uuid.New(),
		Disposition:    string(models.DispositionInterested),
		SubDisposition: "No such label",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSubDisposition)
	assert.Nil(suite.T(), resp)
}

// TestSuggestSubDisposition tests the advisory suggester call
func (suite *AssignmentServiceTestSuite) TestSuggestSubDisposition() {
	history := []models.Assignment{
		{LeadRef: "LD-A", AssignedTime: time.Now()},
	}

	suite.mockLeadRepo.EXPECT().GetByRefID("LD-A").Return(&models.Lead{RefID: "LD-A"}, nil)
	suite.mockAssignmentRepo.EXPECT().GetByLeadRef("LD-A").Return(history, nil)
	suite.mockSuggestion.EXPECT().
		Suggest(gomock.Any(), "asked for fees", history).
		Return(&service.SuggestionResult{Label: "Fee inquiry", Confidence: 0.82}, nil)

	result, err := suite.assignmentService.SuggestSubDisposition(context.Background(), "LD-A", "asked for fees")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Fee inquiry", result.Label)
	assert.InDelta(suite.T(), 0.82, result.Confidence, 0.001)
}

// TestSuggestSubDispositionUpstreamFailure tests that suggester errors surface
// without touching the assignment log
func (suite *AssignmentServiceTestSuite) TestSuggestSubDispositionUpstreamFailure() {
	suite.mockLeadRepo.EXPECT().GetByRefID("LD-A").Return(&models.Lead{RefID: "LD-A"}, nil)
	suite.mockAssignmentRepo.EXPECT().GetByLeadRef("LD-A").Return(nil, nil)
	suite.mockSuggestion.EXPECT().
		Suggest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewUpstreamError("suggestion", "timeout"))

	result, err := suite.assignmentService.SuggestSubDisposition(context.Background(), "LD-A", "hello")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsUpstream(err))
	assert.Nil(suite.T(), result)
}

// TestAssignmentServiceTestSuite runs the test suite
func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
