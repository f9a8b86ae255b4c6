package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/delivery/http/response"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

type deleteTaskResponse struct {
	ID string `json:"id"`
}

// List returns the caller's tasks, optionally filtered by the status and
// search query parameters.
func (h *TaskHandler) List(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("no verified identity on request")
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), user.ID, &usecase.ListTasksInput{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewTaskListResponse(tasks))
}

// Create creates a task owned by the caller.
func (h *TaskHandler) Create(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("no verified identity on request")
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind create task request")
	}

	task, err := h.uc.CreateTask(c.Request().Context(), user.ID, &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewTaskResponse(task))
}

// Update applies a partial update to the caller's task.
func (h *TaskHandler) Update(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("no verified identity on request")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind update task request")
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), user.ID, taskID, &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewTaskResponse(task))
}

// Delete removes the caller's task and echoes the deleted id.
func (h *TaskHandler) Delete(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("no verified identity on request")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTask(c.Request().Context(), user.ID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, deleteTaskResponse{ID: taskID.String()})
}

// parseTaskID reads the :id path parameter. An unparseable id behaves like a
// missing task rather than a malformed request, matching lookups by random id.
func parseTaskID(c echo.Context) (uuid.UUID, error) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrTaskNotFound.WrapMessage("task id is not a valid UUID")
	}

	return taskID, nil
}
