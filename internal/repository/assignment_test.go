//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"lead-center-backend/internal/database/models"
	"lead-center-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AssignmentRepositoryTestSuite tests the AssignmentRepository
type AssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAssignsSequence tests that the database hands out increasing seq values
func (suite *AssignmentRepositoryTestSuite) TestCreateAssignsSequence() {
	first := suite.factories.Assignment.ForLead("LD-SEQ00001")
	second := suite.factories.Assignment.ForLead("LD-SEQ00001")

	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))

	suite.NotZero(first.Seq)
	suite.NotZero(second.Seq)
	suite.Greater(second.Seq, first.Seq)
}

// TestCreateBatch tests that a bulk append lands completely
func (suite *AssignmentRepositoryTestSuite) TestCreateBatch() {
	events := []*models.Assignment{
		suite.factories.Assignment.ForLead("LD-BLK00001"),
		suite.factories.Assignment.ForLead("LD-BLK00002"),
		suite.factories.Assignment.ForLead("LD-BLK00003"),
	}

	err := suite.repo.CreateBatch(events)

	suite.NoError(err)

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(all, 3)
}

// TestCreateBatchEmpty tests that an empty batch is a no-op
func (suite *AssignmentRepositoryTestSuite) TestCreateBatchEmpty() {
	err := suite.repo.CreateBatch(nil)

	suite.NoError(err)
}

// TestGetByLeadRefNewestFirst tests per-lead history ordering
func (suite *AssignmentRepositoryTestSuite) TestGetByLeadRefNewestFirst() {
	base := time.Now().Truncate(time.Second)

	older := suite.factories.Assignment.ForLead("LD-HIS00001")
	older.AssignedTime = base.Add(-time.Hour)
	newer := suite.factories.Assignment.ForLead("LD-HIS00001")
	newer.AssignedTime = base
	other := suite.factories.Assignment.ForLead("LD-HIS00002")
	other.AssignedTime = base

	suite.NoError(suite.repo.Create(older))
	suite.NoError(suite.repo.Create(newer))
	suite.NoError(suite.repo.Create(other))

	history, err := suite.repo.GetByLeadRef("LD-HIS00001")

	suite.NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(newer.ID, history[0].ID)
	suite.Equal(older.ID, history[1].ID)
}

// TestGetByLeadRefTieBreakOnSeq tests that equal assigned times fall back to seq
func (suite *AssignmentRepositoryTestSuite) TestGetByLeadRefTieBreakOnSeq() {
	at := time.Now().Truncate(time.Second)

	first := suite.factories.Assignment.ForLead("LD-TIE00001")
	first.AssignedTime = at
	second := suite.factories.Assignment.ForLead("LD-TIE00001")
	second.AssignedTime = at

	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))

	history, err := suite.repo.GetByLeadRef("LD-TIE00001")

	suite.NoError(err)
	suite.Require().Len(history, 2)
	// Same timestamp: the later write wins the newest-first ordering.
	suite.Equal(second.ID, history[0].ID)
}

// TestGetByUserID tests filtering the log by caller
func (suite *AssignmentRepositoryTestSuite) TestGetByUserID() {
	caller := suite.factories.User.Create()
	mine := suite.factories.Assignment.ForUser(caller)
	other := suite.factories.Assignment.Create()

	suite.NoError(suite.repo.Create(mine))
	suite.NoError(suite.repo.Create(other))

	events, err := suite.repo.GetByUserID(caller.ID)

	suite.NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(mine.ID, events[0].ID)
}

// TestDispositionEventRoundTrip tests that disposition fields survive storage
func (suite *AssignmentRepositoryTestSuite) TestDispositionEventRoundTrip() {
	now := time.Now().Truncate(time.Second)
	ev := suite.factories.Assignment.WithDisposition(models.DispositionInterested)
	ev.LeadRef = "LD-DSP00001"
	ev.SubDisposition = "Requested Brochure"
	ev.SubDispositionTime = &now
	ev.Remark = "Wants the fee structure by mail"
	ev.FollowUpDate = &now

	suite.NoError(suite.repo.Create(ev))

	history, err := suite.repo.GetByLeadRef("LD-DSP00001")
	suite.NoError(err)
	suite.Require().Len(history, 1)
	got := history[0]
	suite.Equal(models.DispositionInterested, got.Disposition)
	suite.NotNil(got.DispositionTime)
	suite.Equal("Requested Brochure", got.SubDisposition)
	suite.NotNil(got.SubDispositionTime)
	suite.Equal("Wants the fee structure by mail", got.Remark)
	suite.NotNil(got.FollowUpDate)
}

// TestAssignmentRepositoryTestSuite runs the test suite
func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
