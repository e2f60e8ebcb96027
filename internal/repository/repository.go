package repository

import (
	"context"
	"database/sql"

	"todolist/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
}

type Tasks interface {
	Create(ctx context.Context, t models.Task) (int, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type Repository struct {
	Users Users
	Tasks Tasks
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Tasks: NewTaskRepository(db),
	}
}
