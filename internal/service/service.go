package service

import (
	"context"
	"time"

	"todolist/internal/models"
	"todolist/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, email, password string) (int, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// TaskManager exposes per-user task operations: list, create, delete.
type TaskManager interface {
	List(ctx context.Context, ownerID int) ([]models.Task, int, error)
	Create(ctx context.Context, ownerID int, title, description string) (int, error)
	Delete(ctx context.Context, taskID int) error
}

// SessionConfig carries the signing key and lifetime for session tokens.
// Passed in explicitly so nothing auth-related lives in package globals.
type SessionConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type Service struct {
	Authorization
	TaskManager
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg SessionConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg),
		TaskManager:   NewTaskService(repos.Tasks),
	}
}
