package service

import (
	"context"
	"errors"
	"strings"

	"todolist/internal/models"
	"todolist/internal/repository"
)

// Domain errors for task flows.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyDesc    = errors.New("description is required")
)

type TaskService struct {
	tasks repository.Tasks
}

func NewTaskService(tasks repository.Tasks) *TaskService {
	return &TaskService{tasks: tasks}
}

var _ TaskManager = (*TaskService)(nil)

// List returns all tasks owned by ownerID in id order, plus the count.
func (s *TaskService) List(ctx context.Context, ownerID int) ([]models.Task, int, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	return tasks, len(tasks), nil
}

// Create inserts a new task owned by ownerID. Title and description must be
// present; no further validation is applied.
func (s *TaskService) Create(ctx context.Context, ownerID int, title, description string) (int, error) {
	if strings.TrimSpace(title) == "" {
		return 0, ErrEmptyTitle
	}
	if strings.TrimSpace(description) == "" {
		return 0, ErrEmptyDesc
	}
	return s.tasks.Create(ctx, models.Task{
		Title:       title,
		Description: description,
		UserID:      ownerID,
	})
}

// Delete removes the task with the given id, failing with ErrTaskNotFound if
// it does not exist. Ownership is NOT verified: any authenticated user can
// delete any task by id. This mirrors the upstream behavior; see DESIGN.md.
func (s *TaskService) Delete(ctx context.Context, taskID int) error {
	affected, err := s.tasks.Delete(ctx, taskID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
