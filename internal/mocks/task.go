package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/tasklist-server/internal/model"
)

// TaskService is a mock of the REST task handler dependency.
type TaskService struct {
	mock.Mock
}

func NewTaskService(t TestingT) *TaskService {
	m := &TaskService{}
	register(&m.Mock, t)
	return m
}

func (m *TaskService) List(ctx context.Context, userID int64, sort model.TaskSort) ([]model.Task, error) {
	ret := m.Called(ctx, userID, sort)
	tasks, _ := ret.Get(0).([]model.Task)
	return tasks, ret.Error(1)
}

func (m *TaskService) Create(ctx context.Context, userID int64, params model.NewTask) (model.Task, error) {
	ret := m.Called(ctx, userID, params)
	task, _ := ret.Get(0).(model.Task)
	return task, ret.Error(1)
}

func (m *TaskService) Update(ctx context.Context, userID, taskID int64, patch model.TaskPatch) error {
	return m.Called(ctx, userID, taskID, patch).Error(0)
}

func (m *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	return m.Called(ctx, userID, taskID).Error(0)
}
