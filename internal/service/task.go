package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dtroode/tasklist-server/internal/logger"
	"github.com/dtroode/tasklist-server/internal/model"
)

const minTitleLength = 2

type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
}

func NewTask(taskStore model.TaskStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
	}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < minTitleLength {
		return "", model.NewValidationError("title",
			fmt.Sprintf("Title must be at least %d characters", minTitleLength))
	}
	return title, nil
}

func validatePriority(p model.Priority) error {
	if !p.Valid() {
		return model.NewValidationError("priority", "Priority must be one of high, medium, low")
	}
	return nil
}

func validateStatus(s model.Status) error {
	if !s.Valid() {
		return model.NewValidationError("status", "Status must be one of todo, in_progress, done")
	}
	return nil
}

func validateDueDate(d string) error {
	if _, err := time.Parse(model.DueDateLayout, d); err != nil {
		return model.NewValidationError("dueDate", "Due date must be formatted as YYYY-MM-DD")
	}
	return nil
}

// List returns the caller's tasks in the requested order.
func (s *Task) List(ctx context.Context, userID int64, sort model.TaskSort) ([]model.Task, error) {
	switch sort {
	case model.SortNewest, model.SortPriority, model.SortDueDate:
	default:
		return nil, model.NewValidationError("sortBy", "sortBy must be priority or dueDate")
	}

	tasks, err := s.taskStore.ListByOwner(ctx, userID, sort)
	if err != nil {
		s.logger.Error("Task service: failed to list tasks",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Create validates and stores a new task owned by userID.
func (s *Task) Create(ctx context.Context, userID int64, params model.NewTask) (model.Task, error) {
	title, err := validateTitle(params.Title)
	if err != nil {
		return model.Task{}, err
	}

	task := model.Task{
		OwnerID:   userID,
		Title:     title,
		Completed: false,
		Priority:  model.PriorityMedium,
		Status:    model.StatusTodo,
	}

	if params.Priority != nil {
		if err := validatePriority(*params.Priority); err != nil {
			return model.Task{}, err
		}
		task.Priority = *params.Priority
	}
	if params.Status != nil {
		if err := validateStatus(*params.Status); err != nil {
			return model.Task{}, err
		}
		task.Status = *params.Status
	}
	if params.DueDate != nil && *params.DueDate != "" {
		if err := validateDueDate(*params.DueDate); err != nil {
			return model.Task{}, err
		}
		task.DueDate = params.DueDate
	}

	saved, err := s.taskStore.Create(ctx, task)
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"user_id", userID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: task created",
		"user_id", userID,
		"task_id", saved.ID)

	return saved, nil
}

// Update applies patch to the caller's task. Every field is validated before the single write.
func (s *Task) Update(ctx context.Context, userID, taskID int64, patch model.TaskPatch) error {
	if patch.Empty() {
		return model.NewValidationError("body", "No fields to update")
	}

	if patch.Title != nil {
		title, err := validateTitle(*patch.Title)
		if err != nil {
			return err
		}
		patch.Title = &title
	}
	if patch.Priority != nil {
		if err := validatePriority(*patch.Priority); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return err
		}
	}
	if patch.DueDate != nil && *patch.DueDate != "" {
		if err := validateDueDate(*patch.DueDate); err != nil {
			return err
		}
	}

	err := s.taskStore.Update(ctx, userID, taskID, patch)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		s.logger.Error("Task service: failed to update task",
			"user_id", userID,
			"task_id", taskID,
			"error", err.Error())
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// Delete removes the caller's task.
func (s *Task) Delete(ctx context.Context, userID, taskID int64) error {
	err := s.taskStore.Delete(ctx, userID, taskID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		s.logger.Error("Task service: failed to delete task",
			"user_id", userID,
			"task_id", taskID,
			"error", err.Error())
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task service: task deleted",
		"user_id", userID,
		"task_id", taskID)

	return nil
}
