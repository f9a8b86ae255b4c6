package repository

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskFilter narrows a task listing. Zero values mean "no filtering".
type TaskFilter struct {
	// Status keeps only tasks with this exact status. Empty string and the
	// "All" sentinel disable the filter.
	Status string

	// Search keeps only tasks whose title or description contains this
	// substring, case-insensitively.
	Search string
}

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// FindByID retrieves a single task by its unique ID regardless of owner.
	// Ownership checks are the caller's responsibility.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// ListByOwner retrieves the tasks owned by the given user that match the
	// filter, ordered by creation time, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]*entity.Task, error)

	// ListDueBetween retrieves tasks of all users whose due date falls inside
	// the half-open interval [from, until) and that are not done yet.
	ListDueBetween(ctx context.Context, from, until time.Time) ([]*entity.Task, error)

	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// Update modifies an existing task entity in the storage.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task with the given ID from the storage.
	Delete(ctx context.Context, id uuid.UUID) error
}
