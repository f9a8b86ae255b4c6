package usecase

import (
	"context"
	"time"

	"taskboard/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListTasksInput narrows the task listing. Zero values mean "everything".
type ListTasksInput struct {
	// Status keeps only tasks with this status. Empty and "All" disable the filter.
	Status string

	// Search keeps only tasks whose title or description contains this
	// substring, case-insensitively.
	Search string
}

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
}

// UpdateTaskInput defines a partial update. Nil fields keep their current
// value; set fields replace it after validation.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

// TaskUsecase defines the interface for task business operations. Every
// operation is scoped to the requesting user: tasks belonging to other users
// are invisible to reads and untouchable by writes.
type TaskUsecase interface {
	// ListTasks returns the user's tasks matching the input, newest first.
	ListTasks(ctx context.Context, userID uuid.UUID, input *ListTasksInput) ([]*entity.Task, error)

	// CreateTask creates a task owned by the user.
	CreateTask(ctx context.Context, userID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)

	// UpdateTask replaces the mutable fields of the user's task.
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)

	// DeleteTask removes the user's task.
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}
