package repository

import (
	"context"
	"database/sql"
	"fmt"

	"todolist/internal/models"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

var _ Tasks = (*TaskRepository)(nil)

const (
	insertTaskSQL         = `INSERT INTO tasks (title, description, user_id) VALUES (?, ?, ?)`
	selectTasksByOwnerSQL = `SELECT id, title, description, user_id FROM tasks WHERE user_id = ? ORDER BY id ASC`
	deleteTaskSQL         = `DELETE FROM tasks WHERE id = ?`
)

// Create inserts a new task and returns its ID.
func (r *TaskRepository) Create(ctx context.Context, t models.Task) (int, error) {
	res, err := r.db.ExecContext(ctx, insertTaskSQL, t.Title, t.Description, t.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert task %q: %w", t.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for task %q: %w", t.Title, err)
	}
	return int(lastID), nil
}

// ListByOwner returns all tasks owned by ownerID, ordered by id ASC.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select tasks for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Task, 0, 16)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return out, nil
}

// Delete removes the task with the given id and reports rows affected.
func (r *TaskRepository) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteTaskSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete task %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for task %d: %w", id, err)
	}
	return affected, nil
}
