package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// GetOrCreateUser returns the user with the given username, creating it if
// absent. The second return value reports whether a new user was created.
func (s *userService) GetOrCreateUser(username string) (*models.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required")
	}

	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	user = models.User{Username: username}
	if err := s.db.Create(&user).Error; err != nil {
		// A concurrent sign-in may have won the unique-index race; re-read.
		var existing models.User
		if readErr := s.db.Where("username = ?", username).First(&existing).Error; readErr == nil {
			return &existing, false, nil
		}
		return nil, false, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return &user, true, nil
}

// GetUserByUsername retrieves a user by username.
func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &user, nil
}
