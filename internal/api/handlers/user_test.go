package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lead-center-backend/internal/api/handlers"
	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/mocks"
	"lead-center-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUserSvc *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	router      *gin.Engine
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserSvc = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockUserSvc)

	suite.router = gin.New()
	suite.router.POST("/auth/register", suite.handler.CreateUser)
	suite.router.GET("/users", suite.handler.ListUsers)
	suite.router.GET("/users/:id", suite.handler.GetUser)
	suite.router.PUT("/users/:id/status", suite.handler.SetStatus)
	suite.router.GET("/callers", suite.handler.EligibleCallers)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) makeJSONRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	jsonBytes, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(method, url, bytes.NewReader(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *UserHandlerTestSuite) TestCreateUser_Success() {
	created := &service.UserResponse{
		ID:     uuid.New(),
		Name:   "Asha",
		Email:  "asha@test.com",
		Role:   models.UserRoleCaller,
		Status: models.UserStatusPending,
	}
	suite.mockUserSvc.EXPECT().CreateUser(gomock.Any()).DoAndReturn(
		func(req *service.CreateUserRequest) (*service.UserResponse, error) {
			assert.Equal(suite.T(), "asha@test.com", req.Email)
			return created, nil
		})

	w := suite.makeJSONRequest(http.MethodPost, "/auth/register", service.CreateUserRequest{
		Name:     "Asha",
		Email:    "asha@test.com",
		Password: "s3cret-pass",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "pending")
}

func (suite *UserHandlerTestSuite) TestCreateUser_DuplicateEmail_Conflict() {
	suite.mockUserSvc.EXPECT().CreateUser(gomock.Any()).Return(nil, apperrors.ErrUserExists)

	w := suite.makeJSONRequest(http.MethodPost, "/auth/register", service.CreateUserRequest{
		Name:     "Asha",
		Email:    "asha@test.com",
		Password: "s3cret-pass",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *UserHandlerTestSuite) TestListUsers_Success() {
	resp := &service.UserListResponse{
		Users:    []service.UserResponse{{ID: uuid.New(), Name: "Asha"}},
		Total:    1,
		Page:     1,
		PageSize: 50,
	}
	suite.mockUserSvc.EXPECT().ListUsers(1, 50).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.UserListResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), got.Total)
}

func (suite *UserHandlerTestSuite) TestGetUser_InvalidID_BadRequest() {
	req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid user id")
}

func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	id := uuid.New()
	suite.mockUserSvc.EXPECT().GetUserByID(id).Return(nil, apperrors.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/users/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestSetStatus_Success() {
	id := uuid.New()
	updated := &service.UserResponse{ID: id, Name: "Asha", Status: models.UserStatusActive}
	suite.mockUserSvc.EXPECT().SetStatus(id, models.UserStatusActive).Return(updated, nil)

	w := suite.makeJSONRequest(http.MethodPut, "/users/"+id.String()+"/status", handlers.SetStatusBody{
		Status: models.UserStatusActive,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "active")
}

func (suite *UserHandlerTestSuite) TestSetStatus_InvalidStatus_BadRequest() {
	id := uuid.New()
	suite.mockUserSvc.EXPECT().SetStatus(id, models.UserStatus("frozen")).
		Return(nil, apperrors.NewValidationError("status", "must be one of pending, active, inactive"))

	w := suite.makeJSONRequest(http.MethodPut, "/users/"+id.String()+"/status", gin.H{"status": "frozen"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestEligibleCallers_Success() {
	callers := []service.UserResponse{
		{ID: uuid.New(), Name: "Asha", Role: models.UserRoleCaller, Status: models.UserStatusActive},
	}
	suite.mockUserSvc.EXPECT().EligibleCallers().Return(callers, nil)

	req := httptest.NewRequest(http.MethodGet, "/callers", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Asha")
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
