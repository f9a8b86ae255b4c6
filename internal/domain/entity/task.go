// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single to-do item on a user's private list.
type Task struct {
	ID          uuid.UUID    `json:"id"`                // The Global Unique Identifier (GUID) for the task.
	OwnerID     uuid.UUID    `json:"ownerId"`           // The user this task belongs to. Set at creation, never changed.
	Title       string       `json:"title"`             // Required, non-empty.
	Description string       `json:"description"`       // Optional free text.
	Status      TaskStatus   `json:"status"`            // Workflow state of the task.
	Priority    TaskPriority `json:"priority"`          // Relative importance of the task.
	DueDate     *time.Time   `json:"dueDate,omitempty"` // Optional deadline.
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
