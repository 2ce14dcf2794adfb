package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

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

func dollar(n int) string {
	return "$" + strconv.Itoa(n)
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		task     model.Task
		priority string
		status   string
	)
	err := row.Scan(
		&task.ID, &task.OwnerID, &task.Title, &task.Completed,
		&priority, &status, &task.DueDate, &task.CreatedAt,
	)
	task.Priority = model.Priority(priority)
	task.Status = model.Status(status)
	return task, err
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64, sort model.TaskSort) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1 ORDER BY ` + querybuilder.OrderBy(sort)

	rows, err := r.db.Query(ctx, query, ownerID)
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
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + taskColumns

	saved, err := scanTask(r.db.QueryRow(ctx, query,
		task.OwnerID, task.Title, task.Completed,
		string(task.Priority), string(task.Status), task.DueDate,
	))
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return saved, nil
}

func (r *TaskRepository) Update(ctx context.Context, ownerID, id int64, patch model.TaskPatch) error {
	set, args := querybuilder.UpdateSet(patch, dollar)
	if set == "" {
		return fmt.Errorf("empty task update")
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = %s AND owner_id = %s`,
		set, dollar(len(args)-1), dollar(len(args)))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
