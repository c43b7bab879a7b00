package services

import (
	"MoviesUsersAPI/internal/models"
	"context"
	"log/slog"
)

type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (int, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id int) error
}

type UserService struct {
	UserRepo UserRepository
	logger   *slog.Logger
}

func NewUserService(repo UserRepository, logger *slog.Logger) *UserService {
	return &UserService{UserRepo: repo, logger: logger}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.UserRepo.GetAllUsers(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return user, translate(err)
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	user := payload.User(0)
	id, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create user", "email", payload.Email, "error", err)
		return user, err
	}
	user.ID = id

	s.logger.Info("User created", "user_id", id)
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, payload models.UserPayload) error {
	if err := s.UserRepo.UpdateUser(ctx, payload.User(id)); err != nil {
		return translate(err)
	}

	s.logger.Info("User updated", "user_id", id)
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	if err := s.UserRepo.DeleteUser(ctx, id); err != nil {
		return translate(err)
	}

	s.logger.Info("User deleted", "user_id", id)
	return nil
}
