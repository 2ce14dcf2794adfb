package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/tasklist-server/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func NewUserStore(t TestingT) *UserStore {
	m := &UserStore{}
	register(&m.Mock, t)
	return m
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ret := m.Called(ctx, email)
	user, _ := ret.Get(0).(model.User)
	return user, ret.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := m.Called(ctx, user)
	saved, _ := ret.Get(0).(model.User)
	return saved, ret.Error(1)
}

// TaskStore is a mock of model.TaskStore.
type TaskStore struct {
	mock.Mock
}

func NewTaskStore(t TestingT) *TaskStore {
	m := &TaskStore{}
	register(&m.Mock, t)
	return m
}

func (m *TaskStore) ListByOwner(ctx context.Context, ownerID int64, sort model.TaskSort) ([]model.Task, error) {
	ret := m.Called(ctx, ownerID, sort)
	tasks, _ := ret.Get(0).([]model.Task)
	return tasks, ret.Error(1)
}

func (m *TaskStore) Create(ctx context.Context, task model.Task) (model.Task, error) {
	ret := m.Called(ctx, task)
	saved, _ := ret.Get(0).(model.Task)
	return saved, ret.Error(1)
}

func (m *TaskStore) Update(ctx context.Context, ownerID, id int64, patch model.TaskPatch) error {
	return m.Called(ctx, ownerID, id, patch).Error(0)
}

func (m *TaskStore) Delete(ctx context.Context, ownerID, id int64) error {
	return m.Called(ctx, ownerID, id).Error(0)
}
