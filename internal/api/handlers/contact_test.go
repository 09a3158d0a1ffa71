package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/mocks"
	"crm-portal-backend/internal/service"
	"crm-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ContactHandlerTestSuite defines the test suite for ContactHandler
type ContactHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockContactService *mocks.MockContactServiceInterface
	handler            *ContactHandler
	httpSuite          *testutils.HTTPTestSuite
	resolver           *stubResolver
}

// SetupTest sets up the test suite
func (suite *ContactHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContactService = mocks.NewMockContactServiceInterface(suite.ctrl)
	suite.resolver = &stubResolver{sc: newTestScope()}

	suite.handler = NewContactHandler(suite.mockContactService, suite.resolver)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/businesses/:id/contacts", suite.handler.CreateContact)
	v1.GET("/businesses/:id/contacts", suite.handler.ListContacts)
	v1.PUT("/contacts/:id", suite.handler.UpdateContact)
	v1.DELETE("/contacts/:id", suite.handler.DeleteContact)
}

// TearDownTest cleans up after each test
func (suite *ContactHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateContact tests creating a contact under a business
func (suite *ContactHandlerTestSuite) TestCreateContact() {
	businessID := uuid.New()
	requestBody := map[string]interface{}{
		"name":  "Jane Doe",
		"email": "jane@acme.test",
	}

	expectedResponse := &service.ContactResponse{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       "Jane Doe",
		Email:      "jane@acme.test",
	}

	suite.mockContactService.EXPECT().
		Create(suite.resolver.sc, businessID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/businesses/%s/contacts", businessID), requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.ContactResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Jane Doe", response.Name)
	assert.Equal(suite.T(), businessID, response.BusinessID)
}

// TestCreateContactBusinessNotFound tests creating under a foreign business
func (suite *ContactHandlerTestSuite) TestCreateContactBusinessNotFound() {
	businessID := uuid.New()
	requestBody := map[string]interface{}{"name": "Jane Doe"}

	suite.mockContactService.EXPECT().
		Create(suite.resolver.sc, businessID, gomock.Any()).
		Return(nil, apperrors.ErrBusinessNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/businesses/%s/contacts", businessID), requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "business not found")
}

// TestListContacts tests listing contacts of a business
func (suite *ContactHandlerTestSuite) TestListContacts() {
	businessID := uuid.New()
	contacts := []service.ContactResponse{
		{ID: uuid.New(), BusinessID: businessID, Name: "Jane Doe"},
		{ID: uuid.New(), BusinessID: businessID, Name: "John Smith"},
	}

	suite.mockContactService.EXPECT().
		ListByBusiness(suite.resolver.sc, businessID).
		Return(contacts, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/businesses/%s/contacts", businessID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.ContactResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestUpdateContactNotFound tests updating a missing or foreign contact
func (suite *ContactHandlerTestSuite) TestUpdateContactNotFound() {
	contactID := uuid.New()
	requestBody := map[string]interface{}{"name": "Jane Doe"}

	suite.mockContactService.EXPECT().
		Update(suite.resolver.sc, contactID, gomock.Any()).
		Return(nil, apperrors.ErrContactNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/contacts/%s", contactID), requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "contact not found")
}

// TestDeleteContact tests deleting a contact
func (suite *ContactHandlerTestSuite) TestDeleteContact() {
	contactID := uuid.New()

	suite.mockContactService.EXPECT().
		Delete(suite.resolver.sc, contactID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/contacts/%s", contactID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteContactInvalidID tests deleting with a malformed ID
func (suite *ContactHandlerTestSuite) TestDeleteContactInvalidID() {
	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/contacts/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid contact ID")
}

// TestContactHandlerTestSuite runs the test suite
func TestContactHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}
