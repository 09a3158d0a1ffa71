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

// EmailHandlerTestSuite defines the test suite for EmailHandler
type EmailHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockEmailService *mocks.MockEmailServiceInterface
	handler          *EmailHandler
	httpSuite        *testutils.HTTPTestSuite
	resolver         *stubResolver
}

// SetupTest sets up the test suite
func (suite *EmailHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmailService = mocks.NewMockEmailServiceInterface(suite.ctrl)
	suite.resolver = &stubResolver{sc: newTestScope()}

	suite.handler = NewEmailHandler(suite.mockEmailService, suite.resolver)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	emails := v1.Group("/emails")
	{
		emails.POST("", suite.handler.IngestEmail)
		emails.GET("", suite.handler.ListEmails)
		emails.GET("/:id", suite.handler.GetEmail)
		emails.POST("/:id/associate", suite.handler.AssociateEmail)
		emails.PUT("/:id/association", suite.handler.ManualAssociateEmail)
	}
}

// TearDownTest cleans up after each test
func (suite *EmailHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestIngestEmail tests ingesting an inbound email
func (suite *EmailHandlerTestSuite) TestIngestEmail() {
	businessID := uuid.New()
	requestBody := map[string]interface{}{
		"from_email": "jane@acme.test",
		"to_emails":  []string{"support@crm.test"},
		"subject":    "Renewal question",
	}

	expectedResponse := &service.EmailResponse{
		ID:         uuid.New(),
		FromEmail:  "jane@acme.test",
		Subject:    "Renewal question",
		BusinessID: &businessID,
	}

	suite.mockEmailService.EXPECT().
		Ingest(suite.resolver.sc, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/emails", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.EmailResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "jane@acme.test", response.FromEmail)
	assert.Equal(suite.T(), &businessID, response.BusinessID)
}

// TestIngestEmailInvalidAddress tests rejecting a malformed sender address
func (suite *EmailHandlerTestSuite) TestIngestEmailInvalidAddress() {
	requestBody := map[string]interface{}{
		"from_email": "jane@acme.test",
	}

	suite.mockEmailService.EXPECT().
		Ingest(suite.resolver.sc, gomock.Any()).
		Return(nil, apperrors.NewValidationError("from_email", "must be a valid email address")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/emails", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetEmail tests getting an email by ID
func (suite *EmailHandlerTestSuite) TestGetEmail() {
	emailID := uuid.New()
	expectedResponse := &service.EmailResponse{
		ID:        emailID,
		FromEmail: "jane@acme.test",
		Subject:   "Renewal question",
	}

	suite.mockEmailService.EXPECT().
		GetByID(suite.resolver.sc, emailID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/emails/%s", emailID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.EmailResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), emailID, response.ID)
}

// TestGetEmailNotFound tests that foreign email ids surface as 404
func (suite *EmailHandlerTestSuite) TestGetEmailNotFound() {
	emailID := uuid.New()

	suite.mockEmailService.EXPECT().
		GetByID(suite.resolver.sc, emailID).
		Return(nil, apperrors.ErrEmailNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/emails/%s", emailID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "email not found")
}

// TestListEmails tests listing emails
func (suite *EmailHandlerTestSuite) TestListEmails() {
	expectedResponse := &service.EmailListResponse{
		Emails:   []service.EmailResponse{{ID: uuid.New(), FromEmail: "jane@acme.test"}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockEmailService.EXPECT().
		List(suite.resolver.sc, 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/emails", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.EmailListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Emails, 1)
}

// TestListUnassociatedEmails tests the unassociated query filter
func (suite *EmailHandlerTestSuite) TestListUnassociatedEmails() {
	expectedResponse := &service.EmailListResponse{
		Emails:   []service.EmailResponse{{ID: uuid.New(), FromEmail: "stranger@unknown.test"}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockEmailService.EXPECT().
		ListUnassociated(suite.resolver.sc, 1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/emails?unassociated=true", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestAssociateEmail tests re-running the resolver for a stored email
func (suite *EmailHandlerTestSuite) TestAssociateEmail() {
	emailID := uuid.New()
	businessID := uuid.New()
	contactID := uuid.New()

	suite.mockEmailService.EXPECT().
		GetByID(suite.resolver.sc, emailID).
		Return(&service.EmailResponse{ID: emailID}, nil).
		Times(1)

	suite.mockEmailService.EXPECT().
		Associate(emailID).
		Return(&service.AssociationResult{BusinessID: &businessID, ContactID: &contactID}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/emails/%s/associate", emailID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.AssociationResult
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), &businessID, response.BusinessID)
	assert.Equal(suite.T(), &contactID, response.ContactID)
}

// TestAssociateEmailNoMatch tests that a no-match resolver run is still a 200
func (suite *EmailHandlerTestSuite) TestAssociateEmailNoMatch() {
	emailID := uuid.New()

	suite.mockEmailService.EXPECT().
		GetByID(suite.resolver.sc, emailID).
		Return(&service.EmailResponse{ID: emailID}, nil).
		Times(1)

	suite.mockEmailService.EXPECT().
		Associate(emailID).
		Return(&service.AssociationResult{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/emails/%s/associate", emailID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.AssociationResult
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Nil(suite.T(), response.BusinessID)
	assert.Nil(suite.T(), response.ContactID)
}

// TestAssociateEmailNotFound tests that the workspace check runs before the resolver
func (suite *EmailHandlerTestSuite) TestAssociateEmailNotFound() {
	emailID := uuid.New()

	suite.mockEmailService.EXPECT().
		GetByID(suite.resolver.sc, emailID).
		Return(nil, apperrors.ErrEmailNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/emails/%s/associate", emailID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestManualAssociateEmail tests overriding an association by hand
func (suite *EmailHandlerTestSuite) TestManualAssociateEmail() {
	emailID := uuid.New()
	businessID := uuid.New()
	requestBody := map[string]interface{}{"business_id": businessID.String()}

	expectedResponse := &service.EmailResponse{
		ID:         emailID,
		FromEmail:  "jane@acme.test",
		BusinessID: &businessID,
	}

	suite.mockEmailService.EXPECT().
		ManualAssociate(suite.resolver.sc, emailID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/emails/%s/association", emailID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.EmailResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), &businessID, response.BusinessID)
}

// TestManualAssociateEmailBusinessNotFound tests a foreign business target
func (suite *EmailHandlerTestSuite) TestManualAssociateEmailBusinessNotFound() {
	emailID := uuid.New()
	requestBody := map[string]interface{}{"business_id": uuid.New().String()}

	suite.mockEmailService.EXPECT().
		ManualAssociate(suite.resolver.sc, emailID, gomock.Any()).
		Return(nil, apperrors.ErrBusinessNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/emails/%s/association", emailID), requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestManualAssociateEmailContactMismatch tests a contact outside the business
func (suite *EmailHandlerTestSuite) TestManualAssociateEmailContactMismatch() {
	emailID := uuid.New()
	requestBody := map[string]interface{}{
		"business_id": uuid.New().String(),
		"contact_id":  uuid.New().String(),
	}

	suite.mockEmailService.EXPECT().
		ManualAssociate(suite.resolver.sc, emailID, gomock.Any()).
		Return(nil, apperrors.ErrContactBusinessMismatch).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/emails/%s/association", emailID), requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestEmailHandlerTestSuite runs the test suite
func TestEmailHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmailHandlerTestSuite))
}
