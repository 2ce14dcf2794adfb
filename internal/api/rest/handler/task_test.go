package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	restctx "github.com/dtroode/tasklist-server/internal/api/rest/context"
	"github.com/dtroode/tasklist-server/internal/mocks"
	"github.com/dtroode/tasklist-server/internal/model"
	"github.com/dtroode/tasklist-server/internal/testutil"
)

const userID int64 = 11

func ptr[T any](v T) *T { return &v }

func newTaskHandler(t *testing.T) (*Task, *mocks.TaskService) {
	svc := mocks.NewTaskService(t)
	return NewTask(svc, restctx.NewManager(), testutil.MakeNoopLogger()), svc
}

func authedRequest(method, target, body, id string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	ctx := restctx.NewManager().SetIdentityToContext(r.Context(), model.Identity{UserID: userID, Email: "a@b.c"})
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestTask_List(t *testing.T) {
	h, svc := newTaskHandler(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.On("List", mock.Anything, userID, model.SortDueDate).Return([]model.Task{
		{ID: 1, OwnerID: userID, Title: "Buy milk", Priority: model.PriorityMedium, Status: model.StatusTodo, DueDate: ptr("2025-01-01"), CreatedAt: created},
	}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/api/tasks?sortBy=dueDate", "", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"title":"Buy milk","completed":false,"priority":"medium","status":"todo","dueDate":"2025-01-01","createdAt":"2024-01-02T03:04:05Z"}]`, rec.Body.String())
}

func TestTask_List_EmptyIsArray(t *testing.T) {
	h, svc := newTaskHandler(t)
	svc.On("List", mock.Anything, userID, model.SortNewest).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/api/tasks", "", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTask_List_WithoutIdentity(t *testing.T) {
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTask_Create(t *testing.T) {
	h, svc := newTaskHandler(t)
	svc.On("Create", mock.Anything, userID, model.NewTask{Title: "ok", Priority: ptr(model.PriorityHigh)}).
		Return(model.Task{ID: 4, OwnerID: userID, Title: "ok", Priority: model.PriorityHigh, Status: model.StatusTodo}, nil)

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(http.MethodPost, "/api/tasks", `{"title":"ok","priority":"high","ownerId":999}`, ""))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":4`)
	assert.Contains(t, rec.Body.String(), `"dueDate":null`)
}

func TestTask_Create_Validation(t *testing.T) {
	h, svc := newTaskHandler(t)
	svc.On("Create", mock.Anything, userID, model.NewTask{Title: "a"}).
		Return(model.Task{}, model.NewValidationError("title", "Title must be at least 2 characters"))

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(http.MethodPost, "/api/tasks", `{"title":"a"}`, ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Title must be at least 2 characters"}`, rec.Body.String())
}

func TestTask_Update(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		setup      func(s *mocks.TaskService)
		wantStatus int
	}{
		{
			name: "completed",
			id:   "7",
			body: `{"completed":true}`,
			setup: func(s *mocks.TaskService) {
				s.On("Update", mock.Anything, userID, int64(7), model.TaskPatch{Completed: ptr(true)}).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "null due date clears it",
			id:   "7",
			body: `{"dueDate":null}`,
			setup: func(s *mocks.TaskService) {
				s.On("Update", mock.Anything, userID, int64(7), model.TaskPatch{DueDate: ptr("")}).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not owned",
			id:   "8",
			body: `{"title":"hello"}`,
			setup: func(s *mocks.TaskService) {
				s.On("Update", mock.Anything, userID, int64(8), model.TaskPatch{Title: ptr("hello")}).Return(model.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non numeric id",
			id:         "abc",
			body:       `{"completed":true}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrong type",
			id:         "7",
			body:       `{"completed":"yes"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTaskHandler(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := httptest.NewRecorder()
			h.Update(rec, authedRequest(http.MethodPut, "/api/tasks/"+tt.id, tt.body, tt.id))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"success":true}`, rec.Body.String())
			}
		})
	}
}

func TestTask_Delete(t *testing.T) {
	h, svc := newTaskHandler(t)
	svc.On("Delete", mock.Anything, userID, int64(3)).Return(nil)
	svc.On("Delete", mock.Anything, userID, int64(4)).Return(model.ErrNotFound)

	rec := httptest.NewRecorder()
	h.Delete(rec, authedRequest(http.MethodDelete, "/api/tasks/3", "", "3"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Delete(rec, authedRequest(http.MethodDelete, "/api/tasks/4", "", "4"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, rec.Body.String())
}
