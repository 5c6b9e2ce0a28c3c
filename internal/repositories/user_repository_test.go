package repositories

import (
	"testing"

	"finboard/internal/database"
	"finboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestCreate() {
	user := &models.User{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Name:         "Test User",
	}

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
}

func (s *UserRepositorySuite) TestCreate_DuplicateEmail() {
	user := &models.User{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Name:         "Test User",
	}
	s.NoError(s.repo.Create(user))

	duplicate := &models.User{
		Email:        "test@example.com",
		PasswordHash: "other_password",
		Name:         "Other User",
	}
	err := s.repo.Create(duplicate)
	s.Error(err)
}

func (s *UserRepositorySuite) TestGetByEmail() {
	user := &models.User{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Name:         "Test User",
	}
	s.NoError(s.repo.Create(user))

	found, err := s.repo.GetByEmail("test@example.com")
	s.NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal(user.Email, found.Email)

	_, err = s.repo.GetByEmail("nonexistent@example.com")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestGetByID() {
	user := database.CreateTestUser(s.T(), s.db, "test@example.com")

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(user.Email, found.Email)

	_, err = s.repo.GetByID(uuid.New())
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUpdate() {
	user := database.CreateTestUser(s.T(), s.db, "test@example.com")

	user.Name = "Updated Name"
	err := s.repo.Update(user)
	s.NoError(err)

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("Updated Name", found.Name)
}
