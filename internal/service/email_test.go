package service_test

import (
	"testing"
	"time"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/mocks"
	"crm-portal-backend/internal/notify"
	"crm-portal-backend/internal/scope"
	"crm-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EmailServiceTestSuite defines the test suite for EmailService
type EmailServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockEmailRepo   *mocks.MockInboundEmailRepositoryInterface
	mockContactRepo *mocks.MockContactRepositoryInterface
	mockBizRepo     *mocks.MockBusinessRepositoryInterface
	emailService    *service.EmailService
	sc              scope.Scope
}

// SetupTest sets up the test suite
func (suite *EmailServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmailRepo = mocks.NewMockInboundEmailRepositoryInterface(suite.ctrl)
	suite.mockContactRepo = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockBizRepo = mocks.NewMockBusinessRepositoryInterface(suite.ctrl)

	suite.emailService = service.NewEmailService(
		suite.mockEmailRepo,
		suite.mockContactRepo,
		suite.mockBizRepo,
		validator.New(),
		notify.NoopInvalidator{},
	)
	suite.sc = scope.Scope{UserID: uuid.New(), WorkspaceID: uuid.New()}
}

// TearDownTest cleans up after each test
func (suite *EmailServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestAssociateContactWins tests that a contact address match wins over any
// business match
func (suite *EmailServiceTestSuite) TestAssociateContactWins() {
	emailID := uuid.New()
	contactID := uuid.New()
	businessID := uuid.New()
	email := &models.InboundEmail{
		BaseModel:   models.BaseModel{ID: emailID},
		WorkspaceID: suite.sc.WorkspaceID,
		FromEmail:   "john@acme.test",
		ReceivedAt:  time.Now(),
	}

	suite.mockEmailRepo.EXPECT().
		GetByID(emailID).
		Return(email, nil).
		Times(1)

	suite.mockContactRepo.EXPECT().
		GetFirstByEmails([]string{"john@acme.test"}).
		Return(&models.Contact{
			BaseModel:  models.BaseModel{ID: contactID},
			BusinessID: businessID,
			Email:      "john@acme.test",
		}, nil).
		Times(1)

	// Business matching must not run once a contact matched

	suite.mockEmailRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(e *models.InboundEmail) error {
			assert.Equal(suite.T(), &contactID, e.ContactID)
			assert.Equal(suite.T(), &businessID, e.BusinessID)
			return nil
		}).
		Times(1)

	result, err := suite.emailService.Associate(emailID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), &contactID, result.ContactID)
	assert.Equal(suite.T(), &businessID, result.BusinessID)
}

// TestAssociateBusinessFallback tests the business layer running only after
// no contact matched
func (suite *EmailServiceTestSuite) TestAssociateBusinessFallback() {
	emailID := uuid.New()
	businessID := uuid.New()
	email := &models.InboundEmail{
		BaseModel:   models.BaseModel{ID: emailID},
		WorkspaceID: suite.sc.WorkspaceID,
		FromEmail:   "info@acme.test",
		ReceivedAt:  time.Now(),
	}

	suite.mockEmailRepo.EXPECT().
		GetByID(emailID).
		Return(email, nil).
		Times(1)

	suite.mockContactRepo.EXPECT().
		GetFirstByEmails([]string{"info@acme.test"}).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockBizRepo.EXPECT().
		GetFirstByEmails([]string{"info@acme.test"}).
		Return(&models.Business{
			BaseModel: models.BaseModel{ID: businessID},
			Email:     "info@acme.test",
		}, nil).
		Times(1)

	suite.mockEmailRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	result, err := suite.emailService.Associate(emailID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), result.ContactID)
	assert.Equal(suite.T(), &businessID, result.BusinessID)
}

// TestAssociateNoMatch tests that no address match leaves the email
// untouched; nothing is written and domain overlap is never consulted
func (suite *EmailServiceTestSuite) TestAssociateNoMatch() {
	emailID := uuid.New()
	email := &models.InboundEmail{
		BaseModel:   models.BaseModel{ID: emailID},
		WorkspaceID: suite.sc.WorkspaceID,
		FromEmail:   "stranger@acme.test",
		ReceivedAt:  time.Now(),
	}

	suite.mockEmailRepo.EXPECT().
		GetByID(emailID).
		Return(email, nil).
		Times(1)

	suite.mockContactRepo.EXPECT().
		GetFirstByEmails(gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockBizRepo.EXPECT().
		GetFirstByEmails(gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	// No Update expectation: an empty outcome must not touch the row

	result, err := suite.emailService.Associate(emailID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), result.BusinessID)
	assert.Nil(suite.T(), result.ContactID)
}

// TestAssociateNoMatchKeepsManualAssociation tests that re-running the
// resolver on an email a human already associated does not erase the
// override when the addresses match nothing
func (suite *EmailServiceTestSuite) TestAssociateNoMatchKeepsManualAssociation() {
	emailID := uuid.New()
	businessID := uuid.New()
	contactID := uuid.New()
	email := &models.InboundEmail{
		BaseModel:   models.BaseModel{ID: emailID},
		WorkspaceID: suite.sc.WorkspaceID,
		FromEmail:   "stranger@elsewhere.test",
		ReceivedAt:  time.Now(),
		BusinessID:  &businessID,
		ContactID:   &contactID,
	}

	suite.mockEmailRepo.EXPECT().
		GetByID(emailID).
		Return(email, nil).
		Times(1)

	suite.mockContactRepo.EXPECT().
		GetFirstByEmails(gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockBizRepo.EXPECT().
		GetFirstByEmails(gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.emailService.Associate(emailID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), result.BusinessID)
	assert.Nil(suite.T(), result.ContactID)
	assert.Equal(suite.T(), &businessID, email.BusinessID)
	assert.Equal(suite.T(), &contactID, email.ContactID)
}

// TestAssociateNotFound tests associating a missing email id
func (suite *EmailServiceTestSuite) TestAssociateNotFound() {
	emailID := uuid.New()

	suite.mockEmailRepo.EXPECT().
		GetByID(emailID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.emailService.Associate(emailID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailNotFound)
}

// TestIngest tests that ingestion stores the row and immediately runs the resolver
func (suite *EmailServiceTestSuite) TestIngest() {
	contactID := uuid.New()
	businessID := uuid.New()
	req := &service.IngestEmailRequest{
		FromEmail: "john@acme.test",
		ToEmails:  []string{"support@crm.test"},
		Subject:   "Need help",
	}

	var storedID uuid.UUID
	suite.mockEmailRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(e *models.InboundEmail) error {
			assert.Equal(suite.T(), suite.sc.WorkspaceID, e.WorkspaceID)
			assert.False(suite.T(), e.ReceivedAt.IsZero())
			e.ID = uuid.New()
			storedID = e.ID
			return nil
		}).
		Times(1)

	suite.mockEmailRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.InboundEmail, error) {
			assert.Equal(suite.T(), storedID, id)
			return &models.InboundEmail{
				BaseModel:   models.BaseModel{ID: id},
				WorkspaceID: suite.sc.WorkspaceID,
				FromEmail:   "john@acme.test",
				ReceivedAt:  time.Now(),
			}, nil
		}).
		Times(2) // once inside Associate, once to refresh after it

	suite.mockContactRepo.EXPECT().
		GetFirstByEmails(gomock.Any()).
		Return(&models.Contact{
			BaseModel:  models.BaseModel{ID: contactID},
			BusinessID: businessID,
		}, nil).
		Times(1)

	suite.mockEmailRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.emailService.Ingest(suite.sc, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestIngestSurvivesResolverFailure tests that a resolver error after the row
// is stored does not fail the ingestion
func (suite *EmailServiceTestSuite) TestIngestSurvivesResolverFailure() {
	req := &service.IngestEmailRequest{
		FromEmail: "john@acme.test",
	}

	suite.mockEmailRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(e *models.InboundEmail) error {
			e.ID = uuid.New()
			return nil
		}).
		Times(1)

	// Resolver blows up reading its own row back
	suite.mockEmailRepo.EXPECT().
		GetByID(gomock.Any()).
		Return(nil, gorm.ErrInvalidDB).
		Times(1)

	response, err := suite.emailService.Ingest(suite.sc, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Nil(suite.T(), response.BusinessID)
	assert.Nil(suite.T(), response.ContactID)
}

// TestIngestInvalidAddress tests rejecting a malformed sender address
func (suite *EmailServiceTestSuite) TestIngestInvalidAddress() {
	req := &service.IngestEmailRequest{
		FromEmail: "not-an-address",
	}

	response, err := suite.emailService.Ingest(suite.sc, req)

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestManualAssociate tests the manual override path
func (suite *EmailServiceTestSuite) TestManualAssociate() {
	emailID := uuid.New()
	businessID := uuid.New()
	contactID := uuid.New()
	email := &models.InboundEmail{
		BaseModel:   models.BaseModel{ID: emailID},
		WorkspaceID: suite.sc.WorkspaceID,
		FromEmail:   "john@acme.test",
		ReceivedAt:  time.Now(),
	}

	suite.mockEmailRepo.EXPECT().
		GetByIDInWorkspace(emailID, suite.sc.WorkspaceID).
		Return(email, nil).
		Times(1)

	suite.mockBizRepo.EXPECT().
		GetByIDInWorkspace(businessID, suite.sc.WorkspaceID).
		Return(&models.Business{BaseModel: models.BaseModel{ID: businessID}, WorkspaceID: suite.sc.WorkspaceID}, nil).
		Times(1)

	suite.mockContactRepo.EXPECT().
		GetByID(contactID).
		Return(&models.Contact{
			BaseModel:  models.BaseModel{ID: contactID},
			BusinessID: businessID,
		}, nil).
		Times(1)

	suite.mockEmailRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.emailService.ManualAssociate(suite.sc, emailID, &service.ManualAssociateRequest{
		BusinessID: &businessID,
		ContactID:  &contactID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), &businessID, response.BusinessID)
	assert.Equal(suite.T(), &contactID, response.ContactID)
}

// TestManualAssociateContactMismatch tests that a contact of a different
// business cannot be attached manually
func (suite *EmailServiceTestSuite) TestManualAssociateContactMismatch() {
	emailID := uuid.New()
	businessID := uuid.New()
	contactID := uuid.New()
	email := &models.InboundEmail{
		BaseModel:   models.BaseModel{ID: emailID},
		WorkspaceID: suite.sc.WorkspaceID,
		FromEmail:   "john@acme.test",
		ReceivedAt:  time.Now(),
	}

	suite.mockEmailRepo.EXPECT().
		GetByIDInWorkspace(emailID, suite.sc.WorkspaceID).
		Return(email, nil).
		Times(1)

	suite.mockBizRepo.EXPECT().
		GetByIDInWorkspace(businessID, suite.sc.WorkspaceID).
		Return(&models.Business{BaseModel: models.BaseModel{ID: businessID}, WorkspaceID: suite.sc.WorkspaceID}, nil).
		Times(1)

	suite.mockContactRepo.EXPECT().
		GetByID(contactID).
		Return(&models.Contact{
			BaseModel:  models.BaseModel{ID: contactID},
			BusinessID: uuid.New(),
		}, nil).
		Times(1)

	response, err := suite.emailService.ManualAssociate(suite.sc, emailID, &service.ManualAssociateRequest{
		BusinessID: &businessID,
		ContactID:  &contactID,
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrContactBusinessMismatch)
}

// TestManualAssociateClear tests that a nil business clears the association
func (suite *EmailServiceTestSuite) TestManualAssociateClear() {
	emailID := uuid.New()
	businessID := uuid.New()
	email := &models.InboundEmail{
		BaseModel:   models.BaseModel{ID: emailID},
		WorkspaceID: suite.sc.WorkspaceID,
		FromEmail:   "john@acme.test",
		ReceivedAt:  time.Now(),
		BusinessID:  &businessID,
	}

	suite.mockEmailRepo.EXPECT().
		GetByIDInWorkspace(emailID, suite.sc.WorkspaceID).
		Return(email, nil).
		Times(1)

	suite.mockEmailRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(e *models.InboundEmail) error {
			assert.Nil(suite.T(), e.BusinessID)
			assert.Nil(suite.T(), e.ContactID)
			return nil
		}).
		Times(1)

	response, err := suite.emailService.ManualAssociate(suite.sc, emailID, &service.ManualAssociateRequest{})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.BusinessID)
}

// TestGetByIDNotFound tests that foreign emails read as missing
func (suite *EmailServiceTestSuite) TestGetByIDNotFound() {
	emailID := uuid.New()

	suite.mockEmailRepo.EXPECT().
		GetByIDInWorkspace(emailID, suite.sc.WorkspaceID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.emailService.GetByID(suite.sc, emailID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailNotFound)
}

// TestListUnassociated tests listing emails the resolver could not place
func (suite *EmailServiceTestSuite) TestListUnassociated() {
	emails := []models.InboundEmail{
		{BaseModel: models.BaseModel{ID: uuid.New()}, WorkspaceID: suite.sc.WorkspaceID, FromEmail: "a@x.test", ReceivedAt: time.Now()},
	}

	suite.mockEmailRepo.EXPECT().
		GetUnassociated(suite.sc.WorkspaceID, 20, 0).
		Return(emails, int64(1), nil).
		Times(1)

	response, err := suite.emailService.ListUnassociated(suite.sc, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Emails, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestEmailServiceTestSuite runs the test suite
func TestEmailServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmailServiceTestSuite))
}
