package service_test

import (
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

// LeadServiceTestSuite defines the test suite for LeadService
type LeadServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockLeadRepo       *mocks.MockLeadRepositoryInterface
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockCampaignRepo   *mocks.MockCampaignRepositoryInterface
	leadService        *service.LeadService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *LeadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockCampaignRepo = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.leadService = service.NewLeadService(
		suite.mockLeadRepo,
		suite.mockAssignmentRepo,
		suite.mockUserRepo,
		suite.mockCampaignRepo,
		suite.validator,
		"IN",
	)
}

// TearDownTest cleans up after each test
func (suite *LeadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListLeadsMergesCurrentState tests that listed leads carry their derived
// owner and disposition
func (suite *LeadServiceTestSuite) TestListLeadsMergesCurrentState() {
	callerID := uuid.New()
	base := time.Now()

	leads := []models.Lead{lead("LD-A"), lead("LD-B")}
	events := []models.Assignment{
		event("LD-A", callerID, 1, base, models.DispositionNew),
		event("LD-A", callerID, 2, base.Add(time.Hour), models.DispositionInterested),
	}

	suite.mockLeadRepo.EXPECT().GetAll(50, 0).Return(leads, int64(2), nil)
	suite.mockAssignmentRepo.EXPECT().GetAll().Return(events, nil)

	resp, err := suite.leadService.ListLeads(1, 50)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), resp.Total)
	assert.Equal(suite.T(), models.DispositionInterested, resp.Leads[0].CurrentDisposition)
	assert.NotNil(suite.T(), resp.Leads[0].CurrentOwnerID)
	assert.Equal(suite.T(), callerID, *resp.Leads[0].CurrentOwnerID)
	// LD-B has no events: unowned, disposition New
	assert.Equal(suite.T(), models.DispositionNew, resp.Leads[1].CurrentDisposition)
	assert.Nil(suite.T(), resp.Leads[1].CurrentOwnerID)
}

// TestCreateLead tests manual lead creation with phone normalization
func (suite *LeadServiceTestSuite) TestCreateLead() {
	req := &service.CreateLeadRequest{
		RefID: "LD-MANUAL",
		Name:  "Meera",
		Phone: "98765 43210",
	}

	suite.mockLeadRepo.EXPECT().GetByRefID("LD-MANUAL").Return(nil, apperrors.ErrLeadNotFound)

	var captured *models.Lead
	suite.mockLeadRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(l *models.Lead) error {
			captured = l
			return nil
		})

	resp, err := suite.leadService.CreateLead(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "LD-MANUAL", resp.RefID)
	assert.Equal(suite.T(), "+919876543210", captured.Phone)
	assert.Equal(suite.T(), models.DispositionNew, resp.CurrentDisposition)
}

// TestCreateLeadGeneratesRefID tests that a missing ref id is generated
func (suite *LeadServiceTestSuite) TestCreateLeadGeneratesRefID() {
	req := &service.CreateLeadRequest{Name: "Meera", Phone: "9876543210"}

	suite.mockLeadRepo.EXPECT().GetByRefID(gomock.Any()).Return(nil, apperrors.ErrLeadNotFound)
	suite.mockLeadRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.leadService.CreateLead(req)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.RefID)
	assert.Contains(suite.T(), resp.RefID, "LD-")
}

// TestCreateLeadDuplicate tests rejecting an already-used ref id
func (suite *LeadServiceTestSuite) TestCreateLeadDuplicate() {
	req := &service.CreateLeadRequest{RefID: "LD-DUP", Name: "Meera", Phone: "9876543210"}

	suite.mockLeadRepo.EXPECT().
		GetByRefID("LD-DUP").
		Return(&models.Lead{RefID: "LD-DUP"}, nil)

	resp, err := suite.leadService.CreateLead(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadExists)
	assert.Nil(suite.T(), resp)
}

// TestCreateLeadValidationError tests field validation on create
func (suite *LeadServiceTestSuite) TestCreateLeadValidationError() {
	req := &service.CreateLeadRequest{Name: "", Phone: "9876543210"}

	resp, err := suite.leadService.CreateLead(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetHistory tests retrieving a lead's full event history
func (suite *LeadServiceTestSuite) TestGetHistory() {
	callerID := uuid.New()
	base := time.Now()
	events := []models.Assignment{
		event("LD-A", callerID, 2, base.Add(time.Hour), models.DispositionInterested),
		event("LD-A", callerID, 1, base, models.DispositionNew),
	}

	suite.mockLeadRepo.EXPECT().GetByRefID("LD-A").Return(&models.Lead{RefID: "LD-A"}, nil)
	suite.mockAssignmentRepo.EXPECT().GetByLeadRef("LD-A").Return(events, nil)

	history, err := suite.leadService.GetHistory("LD-A")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), history, 2)
	assert.Equal(suite.T(), int64(2), history[0].Seq)
}

// TestGetHistoryUnknownLead tests the not-found path
func (suite *LeadServiceTestSuite) TestGetHistoryUnknownLead() {
	suite.mockLeadRepo.EXPECT().GetByRefID("LD-NONE").Return(nil, apperrors.ErrLeadNotFound)

	history, err := suite.leadService.GetHistory("LD-NONE")

	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
	assert.Nil(suite.T(), history)
}

// TestSetCampaignTag tests tagging a selection of leads
func (suite *LeadServiceTestSuite) TestSetCampaignTag() {
	refs := []string{"LD-A", "LD-B"}

	suite.mockLeadRepo.EXPECT().TagCampaign(refs, "Spring Intake").Return(2, nil)

	count, err := suite.leadService.SetCampaignTag(refs, "Spring Intake")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, count)
}

// TestSetCampaignTagEmptySelection tests rejecting an empty selection
func (suite *LeadServiceTestSuite) TestSetCampaignTagEmptySelection() {
	count, err := suite.leadService.SetCampaignTag(nil, "Spring Intake")

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyLeadSelection)
	assert.Zero(suite.T(), count)
}

// TestSetCustomField tests a one-time custom field fill with audit stamp
func (suite *LeadServiceTestSuite) TestSetCustomField() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Asha",
	}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)

	var captured models.CustomFieldValue
	suite.mockLeadRepo.EXPECT().
		SetCustomField("LD-A", "preferred_course", gomock.Any()).
		DoAndReturn(func(refID, field string, v models.CustomFieldValue) error {
			captured = v
			return nil
		})
	suite.mockLeadRepo.EXPECT().GetByRefID("LD-A").Return(&models.Lead{
		RefID: "LD-A",
		CustomFields: models.CustomFieldMap{
			"preferred_course": {Value: "Science", UpdatedBy: "Asha", UpdatedAt: time.Now()},
		},
	}, nil)
	suite.mockAssignmentRepo.EXPECT().GetByLeadRef("LD-A").Return(nil, nil)

	resp, err := suite.leadService.SetCustomField("LD-A", "preferred_course", "Science", user.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Science", captured.Value)
	assert.Equal(suite.T(), "Asha", captured.UpdatedBy)
	assert.False(suite.T(), captured.UpdatedAt.IsZero())
	assert.Equal(suite.T(), "Science", resp.CustomFields["preferred_course"].Value)
}

// TestSetCustomFieldAlreadySet tests that populated fields stay read-only
func (suite *LeadServiceTestSuite) TestSetCustomFieldAlreadySet() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Asha"}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockLeadRepo.EXPECT().
		SetCustomField("LD-A", "preferred_course", gomock.Any()).
		Return(apperrors.ErrCustomFieldAlreadySet)

	resp, err := suite.leadService.SetCustomField("LD-A", "preferred_course", "Arts", user.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCustomFieldAlreadySet)
	assert.Nil(suite.T(), resp)
}

// TestListCampaigns tests campaign listing
func (suite *LeadServiceTestSuite) TestListCampaigns() {
	suite.mockCampaignRepo.EXPECT().GetAll().Return([]models.Campaign{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Spring Intake"},
	}, nil)

	campaigns, err := suite.leadService.ListCampaigns()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), campaigns, 1)
	assert.Equal(suite.T(), "Spring Intake", campaigns[0].Name)
}

// TestNormalizePhone tests best-effort E.164 normalization
func (suite *LeadServiceTestSuite) TestNormalizePhone() {
	assert.Equal(suite.T(), "+919876543210", service.NormalizePhone("98765 43210", "IN"))
	assert.Equal(suite.T(), "+919876543210", service.NormalizePhone("+91 98765 43210", "IN"))
	// Unparseable input is kept verbatim after trimming
	assert.Equal(suite.T(), "not-a-number", service.NormalizePhone(" not-a-number ", "IN"))
	assert.Equal(suite.T(), "", service.NormalizePhone("  ", "IN"))
}

// TestLeadServiceTestSuite runs the test suite
func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
