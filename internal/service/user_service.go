package service

import (
	"regexp"

	"github.com/emunicipality/backend/internal/models"
	"github.com/emunicipality/backend/internal/repository"
	"github.com/emunicipality/backend/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type UserService struct {
	db       *gorm.DB
	userRepo *repository.UserRepository
	docRepo  *repository.DocumentRepository
}

func NewUserService(db *gorm.DB, userRepo *repository.UserRepository, docRepo *repository.DocumentRepository) *UserService {
	return &UserService{
		db:       db,
		userRepo: userRepo,
		docRepo:  docRepo,
	}
}

// CreateUserInput carries the fields accepted by CreateUser. Password arrives
// already hashed by the caller and is stored as an opaque string.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     models.Role
}

// UpdateUserInput carries optional fields for merge-patch updates;
// nil fields keep their stored values
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *models.Role
}

func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		logger.Log.Error("Failed to fetch users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch user", zap.Uint("user_id", id), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "User"}
	}
	return user, nil
}

func (s *UserService) CreateUser(in CreateUserInput) (*models.User, error) {
	if err := validateCreateUser(in); err != nil {
		logger.Log.Warn("User creation validation failed",
			zap.String("username", in.Username),
			zap.Error(err),
		)
		return nil, err
	}

	var user *models.User

	// Uniqueness check and insert share one transaction so a concurrent
	// create cannot slip between them
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		emailTaken, err := users.EmailExists(in.Email, 0)
		if err != nil {
			return err
		}
		usernameTaken, err := users.UsernameExists(in.Username, 0)
		if err != nil {
			return err
		}
		if emailTaken || usernameTaken {
			return &ConflictError{Message: "User with this email or username already exists"}
		}

		user = &models.User{
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: in.Password,
			Role:         in.Role,
		}
		return users.CreateUser(user)
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("User created",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

func (s *UserService) UpdateUser(id uint, in UpdateUserInput) (*models.User, error) {
	if in.Role != nil && !models.ValidRole(*in.Role) {
		return nil, &ValidationError{Message: "Invalid role. Must be one of: citizen, admin, employee"}
	}
	if in.Email != nil && !emailRegex.MatchString(*in.Email) {
		return nil, &ValidationError{Message: "Invalid email format"}
	}

	var user *models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		var err error
		user, err = users.GetUserByID(id)
		if err != nil {
			return err
		}
		if user == nil {
			return &NotFoundError{Resource: "User"}
		}

		if in.Email != nil && *in.Email != user.Email {
			taken, err := users.EmailExists(*in.Email, id)
			if err != nil {
				return err
			}
			if taken {
				return &ConflictError{Message: "Email already exists"}
			}
			user.Email = *in.Email
		}

		if in.Username != nil && *in.Username != user.Username {
			taken, err := users.UsernameExists(*in.Username, id)
			if err != nil {
				return err
			}
			if taken {
				return &ConflictError{Message: "Username already exists"}
			}
			user.Username = *in.Username
		}

		if in.Password != nil {
			user.PasswordHash = *in.Password
		}
		if in.Role != nil {
			user.Role = *in.Role
		}

		return users.UpdateUser(user)
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("User updated", zap.Uint("user_id", user.ID))

	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		documents := repository.NewDocumentRepository(tx)

		user, err := users.GetUserByID(id)
		if err != nil {
			return err
		}
		if user == nil {
			return &NotFoundError{Resource: "User"}
		}

		referencing, err := documents.CountByUserID(id)
		if err != nil {
			return err
		}
		if referencing > 0 {
			return &ReferentialBlockError{
				Message: "Cannot delete user with existing documents. Please delete documents first.",
			}
		}

		return users.DeleteUser(id)
	})
	if err != nil {
		return err
	}

	logger.Log.Info("User deleted", zap.Uint("user_id", id))

	return nil
}

func validateCreateUser(in CreateUserInput) error {
	if in.Username == "" {
		return &ValidationError{Message: "username is required"}
	}
	if in.Email == "" {
		return &ValidationError{Message: "email is required"}
	}
	if in.Password == "" {
		return &ValidationError{Message: "password is required"}
	}
	if in.Role == "" {
		return &ValidationError{Message: "role is required"}
	}
	if !emailRegex.MatchString(in.Email) {
		return &ValidationError{Message: "Invalid email format"}
	}
	if !models.ValidRole(in.Role) {
		return &ValidationError{Message: "Invalid role. Must be one of: citizen, admin, employee"}
	}
	return nil
}
