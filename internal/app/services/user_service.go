package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/pkg/auth"
)

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// CreateUser stores the user and returns the whole user collection
	CreateUser(ctx context.Context, user *models.User) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userServiceImpl struct {
	userRepo Store[models.User]
	opts     Options
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo Store[models.User], opts Options, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		opts:     opts,
		logger:   logger,
	}
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	return listOrNotFound(users, err, s.opts, "Users not found")
}

func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}

// hashPassword replaces the plaintext password on user with its bcrypt hash
func (s *userServiceImpl) hashPassword(user *models.User) error {
	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed
	return nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, user *models.User) ([]*models.User, error) {
	if err := s.hashPassword(user); err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("userID", created.ID).Str("username", created.Username).Msg("User created")

	return s.userRepo.List(ctx)
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, user *models.User) (*models.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := requireExisting(ctx, s.userRepo, id, "User not found"); err != nil {
		return nil, err
	}
	if err := s.hashPassword(user); err != nil {
		return nil, err
	}

	user.ID = id
	return s.userRepo.Update(ctx, user)
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}
