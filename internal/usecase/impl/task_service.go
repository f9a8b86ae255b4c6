package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo  repository.TaskRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo  repository.TaskRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo:  params.TaskRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTasks returns the user's tasks matching the input, newest first.
func (srv *taskService) ListTasks(ctx context.Context, userID uuid.UUID, input *usecase.ListTasksInput) ([]*entity.Task, error) {
	filter := repository.TaskFilter{}
	if input != nil {
		filter.Status = input.Status
		filter.Search = input.Search
	}

	if filter.Status != "" && filter.Status != entity.TaskStatusFilterAll && !entity.TaskStatus(filter.Status).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status filter")
	}

	tasks, err := srv.taskRepo.ListByOwner(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// CreateTask creates a task owned by the user. Status defaults to "To Do" and
// priority to "medium" when omitted.
func (srv *taskService) CreateTask(ctx context.Context, userID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrTitleRequired.WrapMessage("task title missing")
	}

	status, priority, err := resolveStatusAndPriority(input.Status, input.Priority)
	if err != nil {
		return nil, err
	}

	task := &entity.Task{
		OwnerID:     userID,
		Title:       title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Any("taskID", task.ID), slog.Any("userID", userID))
	srv.publishEvent(ctx, service.TaskEventCreated, task)

	return task, nil
}

// UpdateTask applies a partial update to the user's task. Nil input fields
// leave the current value untouched.
func (srv *taskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	task, err := srv.loadOwnedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerrors.ErrTitleRequired.WrapMessage("task title missing")
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		status := entity.TaskStatus(*input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown task status")
		}
		task.Status = status
	}
	if input.Priority != nil {
		priority := entity.TaskPriority(*input.Priority)
		if !priority.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown task priority")
		}
		task.Priority = priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to update task")
	}

	srv.log(ctx).Debug("Task updated", slog.Any("taskID", task.ID), slog.Any("userID", userID))
	srv.publishEvent(ctx, service.TaskEventUpdated, task)

	return task, nil
}

// DeleteTask removes the user's task.
func (srv *taskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := srv.loadOwnedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := srv.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("task already deleted")
		}

		return errors.Wrap(err, "failed to delete task")
	}

	srv.log(ctx).Debug("Task deleted", slog.Any("taskID", taskID), slog.Any("userID", userID))
	srv.publishEvent(ctx, service.TaskEventDeleted, task)

	return nil
}

// loadOwnedTask fetches the task and enforces ownership. A missing task maps
// to not-found; a task owned by someone else maps to forbidden.
func (srv *taskService) loadOwnedTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	if task.OwnerID != userID {
		srv.log(ctx).Warn("Task access denied",
			slog.Any("taskID", taskID),
			slog.Any("ownerID", task.OwnerID),
			slog.Any("userID", userID),
		)

		return nil, domainerrors.ErrNotTaskOwner.WrapMessage("task belongs to another user")
	}

	return task, nil
}

// publishEvent emits a task event without affecting the outcome of the
// mutation that triggered it.
func (srv *taskService) publishEvent(ctx context.Context, action string, task *entity.Task) {
	event := &service.TaskEvent{
		Action:     action,
		TaskID:     task.ID.String(),
		OwnerID:    task.OwnerID.String(),
		Title:      task.Title,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishTaskEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish task event",
			slog.String("action", action),
			slog.String("taskID", event.TaskID),
			slog.Any("error", err),
		)
	}
}

// resolveStatusAndPriority validates the enum fields, applying defaults for
// empty values.
func resolveStatusAndPriority(statusIn, priorityIn string) (entity.TaskStatus, entity.TaskPriority, error) {
	status := entity.TaskStatusToDo
	if statusIn != "" {
		status = entity.TaskStatus(statusIn)
		if !status.IsValid() {
			return "", "", domainerrors.ErrValidationFailed.WrapMessage("unknown task status")
		}
	}

	priority := entity.TaskPriorityMedium
	if priorityIn != "" {
		priority = entity.TaskPriority(priorityIn)
		if !priority.IsValid() {
			return "", "", domainerrors.ErrValidationFailed.WrapMessage("unknown task priority")
		}
	}

	return status, priority, nil
}
