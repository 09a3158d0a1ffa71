package handlers

import (
	"net/http"
	"testing"

	"crm-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// HealthHandlerTestSuite defines the test suite for HealthHandler
type HealthHandlerTestSuite struct {
	suite.Suite
	handler   *HealthHandler
	httpSuite *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *HealthHandlerTestSuite) SetupTest() {
	suite.handler = NewHealthHandler(nil)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/health/live", suite.handler.Live)
}

// TestLive tests that the liveness payload identifies this service
func (suite *HealthHandlerTestSuite) TestLive() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)

	assert.Equal(suite.T(), "crm-portal-backend", response["service"])
	assert.Equal(suite.T(), true, response["alive"])
}

// TestHealthHandlerTestSuite runs the test suite
func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
