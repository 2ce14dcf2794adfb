package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/tasklist-server/internal/api/rest/response"
	"github.com/dtroode/tasklist-server/internal/logger"
	"github.com/dtroode/tasklist-server/internal/model"
)

// TaskService defines operations over the caller's tasks.
type TaskService interface {
	List(ctx context.Context, userID int64, sort model.TaskSort) ([]model.Task, error)
	Create(ctx context.Context, userID int64, params model.NewTask) (model.Task, error)
	Update(ctx context.Context, userID, taskID int64, patch model.TaskPatch) error
	Delete(ctx context.Context, userID, taskID int64) error
}

// Task handles REST endpoints for tasks. The owner always comes from the request context.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type taskResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	DueDate   *string   `json:"dueDate"`
	CreatedAt time.Time `json:"createdAt"`
}

func newTaskResponse(t model.Task) taskResponse {
	return taskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		Priority:  string(t.Priority),
		Status:    string(t.Status),
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
	}
}

type createTaskRequest struct {
	Title    string          `json:"title"`
	Priority *model.Priority `json:"priority"`
	Status   *model.Status   `json:"status"`
	DueDate  *string         `json:"dueDate"`
}

type updateTaskRequest struct {
	Title     *string         `json:"title"`
	Completed *bool           `json:"completed"`
	Priority  *model.Priority `json:"priority"`
	Status    *model.Status   `json:"status"`
	DueDate   optionalDate    `json:"dueDate"`
}

// optionalDate tells an absent field apart from an explicit null, which clears the date.
type optionalDate struct {
	set   bool
	value string
}

func (d *optionalDate) UnmarshalJSON(b []byte) error {
	d.set = true
	if string(b) == "null" {
		d.value = ""
		return nil
	}
	return json.Unmarshal(b, &d.value)
}

func (req updateTaskRequest) patch() model.TaskPatch {
	p := model.TaskPatch{
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  req.Priority,
		Status:    req.Status,
	}
	if req.DueDate.set {
		v := req.DueDate.value
		p.DueDate = &v
	}
	return p
}

func (h *Task) identity(w http.ResponseWriter, r *http.Request) (model.Identity, bool) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		h.logger.Error("Task handler: identity missing from authenticated request")
		response.Error(w, http.StatusUnauthorized, msgInvalidToken)
		return model.Identity{}, false
	}
	return identity, true
}

// taskID parses the {id} path segment. Anything but a positive integer is reported as not found.
func (h *Task) taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusNotFound, msgTaskNotFound)
		return 0, false
	}
	return id, true
}

// List responds with the caller's tasks, optionally sorted by ?sortBy=priority|dueDate.
func (h *Task) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	sort := model.TaskSort(r.URL.Query().Get("sortBy"))
	tasks, err := h.taskService.List(r.Context(), identity.UserID, sort)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, newTaskResponse(t))
	}

	response.JSON(w, http.StatusOK, resp)
}

// Create stores a new task and responds with it.
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleDecodeError(w, err)
		return
	}

	task, err := h.taskService.Create(r.Context(), identity.UserID, model.NewTask{
		Title:    req.Title,
		Priority: req.Priority,
		Status:   req.Status,
		DueDate:  req.DueDate,
	})
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	response.JSON(w, http.StatusCreated, newTaskResponse(task))
}

// Update applies the provided fields to one of the caller's tasks.
func (h *Task) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleDecodeError(w, err)
		return
	}

	if err := h.taskService.Update(r.Context(), identity.UserID, id, req.patch()); err != nil {
		handleError(w, err, h.logger)
		return
	}

	response.Success(w)
}

// Delete removes one of the caller's tasks.
func (h *Task) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), identity.UserID, id); err != nil {
		handleError(w, err, h.logger)
		return
	}

	response.Success(w)
}
