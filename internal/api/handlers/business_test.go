package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/mocks"
	"crm-portal-backend/internal/service"
	"crm-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BusinessHandlerTestSuite defines the test suite for BusinessHandler
type BusinessHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockBusinessService *mocks.MockBusinessServiceInterface
	handler             *BusinessHandler
	httpSuite           *testutils.HTTPTestSuite
	resolver            *stubResolver
}

// SetupTest sets up the test suite
func (suite *BusinessHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBusinessService = mocks.NewMockBusinessServiceInterface(suite.ctrl)
	suite.resolver = &stubResolver{sc: newTestScope()}

	suite.handler = NewBusinessHandler(suite.mockBusinessService, suite.resolver)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	businesses := v1.Group("/businesses")
	{
		businesses.POST("", suite.handler.CreateBusiness)
		businesses.GET("", suite.handler.ListBusinesses)
		businesses.GET("/stages", suite.handler.GetStageCatalog)
		businesses.GET("/:id", suite.handler.GetBusiness)
		businesses.PUT("/:id", suite.handler.UpdateBusiness)
		businesses.PUT("/:id/stage", suite.handler.UpdateBusinessStage)
		businesses.DELETE("/:id", suite.handler.DeleteBusiness)
	}
}

// TearDownTest cleans up after each test
func (suite *BusinessHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateBusiness tests creating a business
func (suite *BusinessHandlerTestSuite) TestCreateBusiness() {
	businessID := uuid.New()
	requestBody := map[string]interface{}{
		"name":  "Acme Corp",
		"email": "info@acme.test",
	}

	expectedResponse := &service.BusinessResponse{
		ID:        businessID,
		Name:      "Acme Corp",
		Email:     "info@acme.test",
		Stage:     "lead",
		StageInfo: models.BusinessStageLead.Info(),
		Status:    "active",
	}

	suite.mockBusinessService.EXPECT().
		Create(suite.resolver.sc, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/businesses", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.BusinessResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Acme Corp", response.Name)
	assert.Equal(suite.T(), "lead", response.Stage)
}

// TestCreateBusinessInvalidStage tests creating a business with an unknown stage
func (suite *BusinessHandlerTestSuite) TestCreateBusinessInvalidStage() {
	requestBody := map[string]interface{}{
		"name":  "Acme Corp",
		"stage": "negotiating",
	}

	suite.mockBusinessService.EXPECT().
		Create(suite.resolver.sc, gomock.Any()).
		Return(nil, apperrors.ErrInvalidStage).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/businesses", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid stage")
}

// TestGetBusiness tests getting a business by ID
func (suite *BusinessHandlerTestSuite) TestGetBusiness() {
	businessID := uuid.New()
	expectedResponse := &service.BusinessResponse{
		ID:    businessID,
		Name:  "Acme Corp",
		Stage: "customer",
	}

	suite.mockBusinessService.EXPECT().
		GetByID(suite.resolver.sc, businessID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/businesses/%s", businessID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.BusinessResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), businessID, response.ID)
}

// TestGetBusinessNotFound tests that out-of-tenant ids surface as 404
func (suite *BusinessHandlerTestSuite) TestGetBusinessNotFound() {
	businessID := uuid.New()

	suite.mockBusinessService.EXPECT().
		GetByID(suite.resolver.sc, businessID).
		Return(nil, apperrors.ErrBusinessNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/businesses/%s", businessID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "business not found")
}

// TestGetBusinessInvalidID tests getting a business with a malformed ID
func (suite *BusinessHandlerTestSuite) TestGetBusinessInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/businesses/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid business ID")
}

// TestListBusinesses tests listing businesses
func (suite *BusinessHandlerTestSuite) TestListBusinesses() {
	expectedResponse := &service.BusinessListResponse{
		Businesses: []service.BusinessResponse{{ID: uuid.New(), Name: "Acme Corp"}},
		Total:      1,
		Page:       1,
		PageSize:   20,
	}

	suite.mockBusinessService.EXPECT().
		List(suite.resolver.sc, 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/businesses", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.BusinessListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Businesses, 1)
}

// TestListBusinessesByStage tests the stage query filter
func (suite *BusinessHandlerTestSuite) TestListBusinessesByStage() {
	expectedResponse := &service.BusinessListResponse{
		Businesses: []service.BusinessResponse{{ID: uuid.New(), Name: "Acme Corp", Stage: "qualified"}},
		Total:      1,
		Page:       1,
		PageSize:   20,
	}

	suite.mockBusinessService.EXPECT().
		ListByStage(suite.resolver.sc, "qualified", 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/businesses?stage=qualified", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestUpdateBusinessStage tests moving a business through the pipeline
func (suite *BusinessHandlerTestSuite) TestUpdateBusinessStage() {
	businessID := uuid.New()
	requestBody := map[string]interface{}{"stage": "customer"}

	expectedResponse := &service.BusinessResponse{
		ID:        businessID,
		Name:      "Acme Corp",
		Stage:     "customer",
		StageInfo: models.BusinessStageCustomer.Info(),
	}

	suite.mockBusinessService.EXPECT().
		UpdateStage(suite.resolver.sc, businessID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/businesses/%s/stage", businessID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.BusinessResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "customer", response.Stage)
	assert.Equal(suite.T(), "Customer", response.StageInfo.Label)
}

// TestUpdateBusinessStageInvalid tests an unknown target stage
func (suite *BusinessHandlerTestSuite) TestUpdateBusinessStageInvalid() {
	businessID := uuid.New()
	requestBody := map[string]interface{}{"stage": "wishful"}

	suite.mockBusinessService.EXPECT().
		UpdateStage(suite.resolver.sc, businessID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidStage).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/businesses/%s/stage", businessID), requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestDeleteBusiness tests deleting a business
func (suite *BusinessHandlerTestSuite) TestDeleteBusiness() {
	businessID := uuid.New()

	suite.mockBusinessService.EXPECT().
		Delete(suite.resolver.sc, businessID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/businesses/%s", businessID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestGetStageCatalog tests the stage catalog endpoint
func (suite *BusinessHandlerTestSuite) TestGetStageCatalog() {
	catalog := []service.StageCatalogEntry{
		{Stage: "lead", Info: models.BusinessStageLead.Info()},
		{Stage: "customer", Info: models.BusinessStageCustomer.Info()},
	}

	suite.mockBusinessService.EXPECT().
		StageCatalog().
		Return(catalog).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/businesses/stages", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.StageCatalogEntry
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
	assert.Equal(suite.T(), "Lead", response[0].Info.Label)
}

// TestBusinessHandlerTestSuite runs the test suite
func TestBusinessHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessHandlerTestSuite))
}
