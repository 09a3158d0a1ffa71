package handlers

import (
	"net/http"
	"testing"
	"time"

	"crm-portal-backend/internal/mocks"
	"crm-portal-backend/internal/service"
	"crm-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// FeedHandlerTestSuite defines the test suite for FeedHandler
type FeedHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockFeedService *mocks.MockFeedServiceInterface
	handler         *FeedHandler
	httpSuite       *testutils.HTTPTestSuite
	resolver        *stubResolver
}

// SetupTest sets up the test suite
func (suite *FeedHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFeedService = mocks.NewMockFeedServiceInterface(suite.ctrl)
	suite.resolver = &stubResolver{sc: newTestScope()}

	suite.handler = NewFeedHandler(suite.mockFeedService, suite.resolver)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/feed", suite.handler.GetFeed)
	v1.GET("/feed/badges", suite.handler.GetBadgeCounts)
}

// TearDownTest cleans up after each test
func (suite *FeedHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetFeed tests the merged feed endpoint
func (suite *FeedHandlerTestSuite) TestGetFeed() {
	expectedResponse := &service.FeedResponse{
		Items: []service.FeedItem{
			{Kind: "activity", ID: uuid.New(), Title: "call", Date: time.Now().Format(time.RFC3339)},
			{Kind: "ticket", ID: uuid.New(), Title: "Printer on fire", Status: "open", Priority: "high"},
		},
	}

	suite.mockFeedService.EXPECT().
		GetFeed(suite.resolver.sc, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/feed", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.FeedResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Items, 2)
	assert.Equal(suite.T(), "activity", response.Items[0].Kind)
	assert.Equal(suite.T(), "ticket", response.Items[1].Kind)
}

// TestGetFeedWithLimit tests that the limit query reaches the service
func (suite *FeedHandlerTestSuite) TestGetFeedWithLimit() {
	suite.mockFeedService.EXPECT().
		GetFeed(suite.resolver.sc, 5).
		Return(&service.FeedResponse{Items: []service.FeedItem{}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/feed?limit=5", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetFeedFailure tests an unexpected service error
func (suite *FeedHandlerTestSuite) TestGetFeedFailure() {
	suite.mockFeedService.EXPECT().
		GetFeed(suite.resolver.sc, 20).
		Return(nil, assert.AnError).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/feed", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to get feed")
}

// TestGetBadgeCounts tests the badge counts endpoint
func (suite *FeedHandlerTestSuite) TestGetBadgeCounts() {
	expectedResponse := &service.BadgeCountsResponse{
		UpcomingActivities: 3,
		OpenTickets:        2,
		UnassociatedEmails: 7,
	}

	suite.mockFeedService.EXPECT().
		GetBadgeCounts(suite.resolver.sc).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/feed/badges", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.BadgeCountsResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 3, response.UpcomingActivities)
	assert.Equal(suite.T(), 2, response.OpenTickets)
	assert.Equal(suite.T(), 7, response.UnassociatedEmails)
}

// TestFeedHandlerTestSuite runs the test suite
func TestFeedHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FeedHandlerTestSuite))
}
