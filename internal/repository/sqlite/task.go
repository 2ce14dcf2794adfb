package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dtroode/tasklist-server/internal/model"
	"github.com/dtroode/tasklist-server/internal/repository/querybuilder"
)

var _ model.TaskStore = (*TaskRepository)(nil)

const taskColumns = `id, owner_id, title, completed, priority, status, due_date, created_at`

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (model.Task, error) {
	var (
		task     model.Task
		priority string
		status   string
		dueDate  sql.NullString
	)
	if err := row.Scan(
		&task.ID, &task.OwnerID, &task.Title, &task.Completed,
		&priority, &status, &dueDate, timestamp{&task.CreatedAt},
	); err != nil {
		return model.Task{}, err
	}
	task.Priority = model.Priority(priority)
	task.Status = model.Status(status)
	if dueDate.Valid {
		task.DueDate = &dueDate.String
	}
	return task, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64, sort model.TaskSort) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ? ORDER BY ` + querybuilder.OrderBy(sort)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (owner_id, title, completed, priority, status, due_date)
			  VALUES (?, ?, ?, ?, ?, ?)
			  RETURNING ` + taskColumns

	var dueDate sql.NullString
	if task.DueDate != nil {
		dueDate = sql.NullString{String: *task.DueDate, Valid: true}
	}

	saved, err := scanTask(r.db.QueryRowContext(ctx, query,
		task.OwnerID, task.Title, task.Completed,
		string(task.Priority), string(task.Status), dueDate,
	))
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return saved, nil
}

func (r *TaskRepository) Update(ctx context.Context, ownerID, id int64, patch model.TaskPatch) error {
	set, args := querybuilder.UpdateSet(patch, querybuilder.Question)
	if set == "" {
		return fmt.Errorf("empty task update")
	}

	query := `UPDATE tasks SET ` + set + ` WHERE id = ? AND owner_id = ?`
	args = append(args, id, ownerID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return checkAffected(res)
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, id int64) error {
	query := `DELETE FROM tasks WHERE id = ? AND owner_id = ?`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
