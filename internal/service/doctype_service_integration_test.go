package service_test

import (
	"testing"

	"github.com/emunicipality/backend/internal/models"
	"github.com/emunicipality/backend/internal/repository"
	"github.com/emunicipality/backend/internal/service"
	"github.com/emunicipality/backend/internal/testutil"
	"github.com/emunicipality/backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// DocTypeServiceIntegrationTestSuite defines test suite
type DocTypeServiceIntegrationTestSuite struct {
	suite.Suite
	testDB         *testutil.TestDatabase
	docTypeService *service.DocTypeService
}

// SetupSuite runs before all tests
func (s *DocTypeServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	docTypeRepo := repository.NewDocTypeRepository(s.testDB.DB)
	docRepo := repository.NewDocumentRepository(s.testDB.DB)
	s.docTypeService = service.NewDocTypeService(s.testDB.DB, docTypeRepo, docRepo)
}

// TearDownSuite runs after all tests
func (s *DocTypeServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest runs before each test (clean database)
func (s *DocTypeServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *DocTypeServiceIntegrationTestSuite) TestCreateDocTypeSuccess() {
	docType, err := s.docTypeService.CreateDocType("Birth Certificate", "Official copy")
	require.NoError(s.T(), err)

	assert.NotZero(s.T(), docType.ID)
	assert.Equal(s.T(), "Birth Certificate", docType.Name)
	assert.Equal(s.T(), "Official copy", docType.Description)
}

func (s *DocTypeServiceIntegrationTestSuite) TestCreateDocTypeNameRequired() {
	_, err := s.docTypeService.CreateDocType("", "desc")

	var validation *service.ValidationError
	require.ErrorAs(s.T(), err, &validation)
	assert.Equal(s.T(), "name is required", err.Error())
}

func (s *DocTypeServiceIntegrationTestSuite) TestCreateDocTypeDuplicateName() {
	_, err := s.docTypeService.CreateDocType("Birth Certificate", "")
	require.NoError(s.T(), err)

	_, err = s.docTypeService.CreateDocType("Birth Certificate", "another")

	var conflict *service.ConflictError
	require.ErrorAs(s.T(), err, &conflict)
	assert.Equal(s.T(), "Document type with this name already exists", err.Error())
}

func (s *DocTypeServiceIntegrationTestSuite) TestListDocTypesAlphabetical() {
	_, err := s.docTypeService.CreateDocType("Residence Certificate", "")
	require.NoError(s.T(), err)
	_, err = s.docTypeService.CreateDocType("Birth Certificate", "")
	require.NoError(s.T(), err)

	docTypes, err := s.docTypeService.ListDocTypes()
	require.NoError(s.T(), err)
	require.Len(s.T(), docTypes, 2)
	assert.Equal(s.T(), "Birth Certificate", docTypes[0].Name)
	assert.Equal(s.T(), "Residence Certificate", docTypes[1].Name)
}

func (s *DocTypeServiceIntegrationTestSuite) TestUpdateDocTypeMergePatch() {
	docType, err := s.docTypeService.CreateDocType("Birth Certificate", "old description")
	require.NoError(s.T(), err)

	desc := "new description"
	updated, err := s.docTypeService.UpdateDocType(docType.ID, service.UpdateDocTypeInput{Description: &desc})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "Birth Certificate", updated.Name)
	assert.Equal(s.T(), "new description", updated.Description)
}

func (s *DocTypeServiceIntegrationTestSuite) TestUpdateDocTypeNameConflict() {
	_, err := s.docTypeService.CreateDocType("Birth Certificate", "")
	require.NoError(s.T(), err)
	other, err := s.docTypeService.CreateDocType("Building Permit", "")
	require.NoError(s.T(), err)

	name := "Birth Certificate"
	_, err = s.docTypeService.UpdateDocType(other.ID, service.UpdateDocTypeInput{Name: &name})

	var conflict *service.ConflictError
	require.ErrorAs(s.T(), err, &conflict)
	assert.Equal(s.T(), "Document type name already exists", err.Error())
}

func (s *DocTypeServiceIntegrationTestSuite) TestDeleteDocTypeBlockedWhileReferenced() {
	docType, err := s.docTypeService.CreateDocType("Birth Certificate", "")
	require.NoError(s.T(), err)

	user := testutil.CreateTestUser("alice", "alice@example.com", models.RoleCitizen)
	require.NoError(s.T(), s.testDB.DB.Create(user).Error)
	document := testutil.CreateTestDocument(user.ID, docType.ID, models.StatusPending)
	require.NoError(s.T(), s.testDB.DB.Create(document).Error)

	err = s.docTypeService.DeleteDocType(docType.ID)

	var blocked *service.ReferentialBlockError
	require.ErrorAs(s.T(), err, &blocked)

	// Removing the referencing document lifts the block
	require.NoError(s.T(), s.testDB.DB.Delete(&models.Document{}, document.ID).Error)
	require.NoError(s.T(), s.docTypeService.DeleteDocType(docType.ID))
}

func (s *DocTypeServiceIntegrationTestSuite) TestDeleteDocTypeNotFound() {
	err := s.docTypeService.DeleteDocType(9999)

	var notFound *service.NotFoundError
	require.ErrorAs(s.T(), err, &notFound)
	assert.Equal(s.T(), "Document type not found", err.Error())
}

// TestSuite runs all tests in the suite
func TestDocTypeServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DocTypeServiceIntegrationTestSuite))
}
