//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)

	got, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(user.Email, got.Email)
}

// TestCreateDuplicateEmail tests the unique email index
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user1 := suite.factories.User.Create()
	user1.Email = "taken@test.com"
	suite.NoError(suite.repo.Create(user1))

	user2 := suite.factories.User.Create()
	user2.Email = "taken@test.com"
	err := suite.repo.Create(user2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByEmailNotFound tests looking up a missing email
func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	got, err := suite.repo.GetByEmail("ghost@test.com")

	suite.Nil(got)
	suite.True(errors.Is(err, apperrors.ErrUserNotFound))
}

// TestGetAllOrdersByName tests listing users in name order
func (suite *UserRepositoryTestSuite) TestGetAllOrdersByName() {
	suite.NoError(suite.repo.Create(suite.factories.User.WithName("Meena")))
	suite.NoError(suite.repo.Create(suite.factories.User.WithName("Asha")))

	users, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(users, 2)
	suite.Equal("Asha", users[0].Name)
	suite.Equal("Meena", users[1].Name)
}

// TestGetEligibleCallers tests that only active callers qualify
func (suite *UserRepositoryTestSuite) TestGetEligibleCallers() {
	active := suite.factories.User.WithName("Asha")
	pending := suite.factories.User.WithStatus(models.UserStatusPending)
	inactive := suite.factories.User.WithStatus(models.UserStatusInactive)
	admin := suite.factories.User.Admin()

	for _, u := range []*models.User{active, pending, inactive, admin} {
		suite.NoError(suite.repo.Create(u))
	}

	callers, err := suite.repo.GetEligibleCallers()

	suite.NoError(err)
	suite.Require().Len(callers, 1)
	suite.Equal(active.ID, callers[0].ID)
}

// TestUpdateStatus tests moving a user through the lifecycle
func (suite *UserRepositoryTestSuite) TestUpdateStatus() {
	user := suite.factories.User.WithStatus(models.UserStatusPending)
	suite.NoError(suite.repo.Create(user))

	err := suite.repo.UpdateStatus(user.ID, models.UserStatusActive)

	suite.NoError(err)

	got, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(models.UserStatusActive, got.Status)
}

// TestUpdateStatusUnknownUser tests updating a user that does not exist
func (suite *UserRepositoryTestSuite) TestUpdateStatusUnknownUser() {
	err := suite.repo.UpdateStatus(uuid.New(), models.UserStatusActive)

	suite.True(errors.Is(err, apperrors.ErrUserNotFound))
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
