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

// UserServiceIntegrationTestSuite defines test suite
type UserServiceIntegrationTestSuite struct {
	suite.Suite
	testDB      *testutil.TestDatabase
	userService *service.UserService
}

// SetupSuite runs before all tests
func (s *UserServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	userRepo := repository.NewUserRepository(s.testDB.DB)
	docRepo := repository.NewDocumentRepository(s.testDB.DB)
	s.userService = service.NewUserService(s.testDB.DB, userRepo, docRepo)
}

// TearDownSuite runs after all tests
func (s *UserServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest runs before each test (clean database)
func (s *UserServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *UserServiceIntegrationTestSuite) createAlice() *models.User {
	user, err := s.userService.CreateUser(service.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "opaque-credential",
		Role:     models.RoleCitizen,
	})
	require.NoError(s.T(), err)
	return user
}

func (s *UserServiceIntegrationTestSuite) TestCreateUserSuccess() {
	user := s.createAlice()

	assert.NotZero(s.T(), user.ID)
	assert.Equal(s.T(), "alice", user.Username)
	assert.Equal(s.T(), "alice@example.com", user.Email)
	assert.Equal(s.T(), models.RoleCitizen, user.Role)
	assert.False(s.T(), user.CreatedAt.IsZero())

	// The credential is stored exactly as received
	assert.Equal(s.T(), "opaque-credential", user.PasswordHash)
}

func (s *UserServiceIntegrationTestSuite) TestCreateUserMissingFields() {
	cases := []struct {
		name     string
		input    service.CreateUserInput
		expected string
	}{
		{
			name:     "missing username",
			input:    service.CreateUserInput{Email: "a@example.com", Password: "x", Role: models.RoleCitizen},
			expected: "username is required",
		},
		{
			name:     "missing email",
			input:    service.CreateUserInput{Username: "a", Password: "x", Role: models.RoleCitizen},
			expected: "email is required",
		},
		{
			name:     "missing password",
			input:    service.CreateUserInput{Username: "a", Email: "a@example.com", Role: models.RoleCitizen},
			expected: "password is required",
		},
		{
			name:     "missing role",
			input:    service.CreateUserInput{Username: "a", Email: "a@example.com", Password: "x"},
			expected: "role is required",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.userService.CreateUser(tc.input)

			var validation *service.ValidationError
			require.ErrorAs(s.T(), err, &validation)
			assert.Equal(s.T(), tc.expected, err.Error())
		})
	}
}

func (s *UserServiceIntegrationTestSuite) TestCreateUserInvalidEmail() {
	_, err := s.userService.CreateUser(service.CreateUserInput{
		Username: "alice",
		Email:    "not-an-email",
		Password: "x",
		Role:     models.RoleCitizen,
	})

	var validation *service.ValidationError
	require.ErrorAs(s.T(), err, &validation)
	assert.Equal(s.T(), "Invalid email format", err.Error())
}

func (s *UserServiceIntegrationTestSuite) TestCreateUserInvalidRole() {
	_, err := s.userService.CreateUser(service.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "x",
		Role:     models.Role("mayor"),
	})

	var validation *service.ValidationError
	require.ErrorAs(s.T(), err, &validation)
	assert.Equal(s.T(), "Invalid role. Must be one of: citizen, admin, employee", err.Error())
}

func (s *UserServiceIntegrationTestSuite) TestCreateUserDuplicateEmail() {
	s.createAlice()

	_, err := s.userService.CreateUser(service.CreateUserInput{
		Username: "different",
		Email:    "alice@example.com",
		Password: "x",
		Role:     models.RoleCitizen,
	})

	var conflict *service.ConflictError
	require.ErrorAs(s.T(), err, &conflict)
}

func (s *UserServiceIntegrationTestSuite) TestCreateUserDuplicateUsername() {
	s.createAlice()

	_, err := s.userService.CreateUser(service.CreateUserInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "x",
		Role:     models.RoleCitizen,
	})

	var conflict *service.ConflictError
	require.ErrorAs(s.T(), err, &conflict)
}

func (s *UserServiceIntegrationTestSuite) TestEmailUniquenessIsCaseSensitive() {
	s.createAlice()

	// Exact-match uniqueness: a different casing is a different email
	user, err := s.userService.CreateUser(service.CreateUserInput{
		Username: "alice2",
		Email:    "Alice@example.com",
		Password: "x",
		Role:     models.RoleCitizen,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Alice@example.com", user.Email)
}

func (s *UserServiceIntegrationTestSuite) TestUpdateUserMergePatch() {
	user := s.createAlice()

	role := models.RoleEmployee
	updated, err := s.userService.UpdateUser(user.ID, service.UpdateUserInput{Role: &role})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), models.RoleEmployee, updated.Role)
	assert.Equal(s.T(), "alice", updated.Username)
	assert.Equal(s.T(), "alice@example.com", updated.Email)
}

func (s *UserServiceIntegrationTestSuite) TestUpdateUserKeepsOwnEmail() {
	user := s.createAlice()

	// Re-submitting the user's own email must not conflict with itself
	email := "alice@example.com"
	updated, err := s.userService.UpdateUser(user.ID, service.UpdateUserInput{Email: &email})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), email, updated.Email)
}

func (s *UserServiceIntegrationTestSuite) TestUpdateUserEmailConflict() {
	s.createAlice()
	bob, err := s.userService.CreateUser(service.CreateUserInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "x",
		Role:     models.RoleCitizen,
	})
	require.NoError(s.T(), err)

	email := "alice@example.com"
	_, err = s.userService.UpdateUser(bob.ID, service.UpdateUserInput{Email: &email})

	var conflict *service.ConflictError
	require.ErrorAs(s.T(), err, &conflict)
	assert.Equal(s.T(), "Email already exists", err.Error())
}

func (s *UserServiceIntegrationTestSuite) TestUpdateUserNotFound() {
	_, err := s.userService.UpdateUser(9999, service.UpdateUserInput{})

	var notFound *service.NotFoundError
	require.ErrorAs(s.T(), err, &notFound)
}

func (s *UserServiceIntegrationTestSuite) TestDeleteUserBlockedWhileReferenced() {
	user := s.createAlice()

	docType := testutil.CreateTestDocType("Birth Certificate", "")
	require.NoError(s.T(), s.testDB.DB.Create(docType).Error)
	document := testutil.CreateTestDocument(user.ID, docType.ID, models.StatusPending)
	require.NoError(s.T(), s.testDB.DB.Create(document).Error)

	err := s.userService.DeleteUser(user.ID)

	var blocked *service.ReferentialBlockError
	require.ErrorAs(s.T(), err, &blocked)

	// Removing the referencing document lifts the block
	require.NoError(s.T(), s.testDB.DB.Delete(&models.Document{}, document.ID).Error)
	require.NoError(s.T(), s.userService.DeleteUser(user.ID))

	_, err = s.userService.GetUser(user.ID)
	var notFound *service.NotFoundError
	require.ErrorAs(s.T(), err, &notFound)
}

func (s *UserServiceIntegrationTestSuite) TestDeleteUserNotFound() {
	err := s.userService.DeleteUser(9999)

	var notFound *service.NotFoundError
	require.ErrorAs(s.T(), err, &notFound)
}

func (s *UserServiceIntegrationTestSuite) TestListUsersNewestFirst() {
	s.createAlice()
	_, err := s.userService.CreateUser(service.CreateUserInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "x",
		Role:     models.RoleEmployee,
	})
	require.NoError(s.T(), err)

	users, err := s.userService.ListUsers()
	require.NoError(s.T(), err)
	assert.Len(s.T(), users, 2)
}

// TestSuite runs all tests in the suite
func TestUserServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceIntegrationTestSuite))
}
