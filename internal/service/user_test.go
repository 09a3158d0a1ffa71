package service_test

import (
	"testing"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/mocks"
	"crm-portal-backend/internal/scope"
	"crm-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockWorkspaceRepo *mocks.MockWorkspaceRepositoryInterface
	userService       *service.UserService
	sc                scope.Scope
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockWorkspaceRepo = mocks.NewMockWorkspaceRepositoryInterface(suite.ctrl)

	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockWorkspaceRepo)
	suite.sc = scope.Scope{UserID: uuid.New(), WorkspaceID: uuid.New()}
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestMe tests returning the caller's profile with workspace details
func (suite *UserServiceTestSuite) TestMe() {
	suite.mockUserRepo.EXPECT().
		GetByID(suite.sc.UserID).
		Return(&models.User{
			BaseModel:   models.BaseModel{ID: suite.sc.UserID},
			Email:       "jane@crm.test",
			Name:        "Jane Doe",
			WorkspaceID: &suite.sc.WorkspaceID,
		}, nil).
		Times(1)

	suite.mockWorkspaceRepo.EXPECT().
		GetByID(suite.sc.WorkspaceID).
		Return(&models.Workspace{
			BaseModel: models.BaseModel{ID: suite.sc.WorkspaceID},
			Name:      "Acme Workspace",
		}, nil).
		Times(1)

	response, err := suite.userService.Me(suite.sc)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.sc.UserID.String(), response.ID)
	assert.Equal(suite.T(), "jane@crm.test", response.Email)
	assert.Equal(suite.T(), "Acme Workspace", response.WorkspaceName)
}

// TestMeUserNotFound tests a session whose user row has vanished
func (suite *UserServiceTestSuite) TestMeUserNotFound() {
	suite.mockUserRepo.EXPECT().
		GetByID(suite.sc.UserID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.userService.Me(suite.sc)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
