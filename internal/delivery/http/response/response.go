// Package response defines the JSON shapes shared by the HTTP handlers.
package response

import (
	"time"

	"taskboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body for plain confirmations and every error.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public projection of an account. The password hash
// never leaves the server.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TaskResponse is the public projection of a task.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewUserResponse maps a user entity to its public shape.
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}

// NewTaskResponse maps a task entity to its public shape.
func NewTaskResponse(task *entity.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status.String(),
		Priority:    task.Priority.String(),
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// NewTaskListResponse maps task entities, returning an empty slice rather
// than null for an empty list.
func NewTaskListResponse(tasks []*entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, NewTaskResponse(task))
	}

	return out
}

// Message writes a {message} body with the given status code.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}
