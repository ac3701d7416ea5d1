package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"herzlink/internal/model"
	"herzlink/internal/repository"
)

// UserService exposes the debug/diagnostic user listing and the backend
// connectivity probe.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Ping(ctx context.Context) error
}

type userService struct {
	repo repository.UserRepository
	db   *gorm.DB
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, db *gorm.DB) UserService {
	return &userService{
		repo: repo,
		db:   db,
	}
}

// List returns all users, newest first. Passwords are never serialized.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Ping checks database connectivity.
func (s *userService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
