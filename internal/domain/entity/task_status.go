// Package entity contains the core business objects of the project.
package entity

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	// TaskStatusToDo indicates a task that has not been started yet.
	TaskStatusToDo TaskStatus = "To Do"
	// TaskStatusInProgress indicates a task that is being worked on.
	TaskStatusInProgress TaskStatus = "In Progress"
	// TaskStatusDone indicates a completed task.
	TaskStatusDone TaskStatus = "Done"

	// TaskStatusFilterAll is a sentinel accepted by list filters meaning "no status filter".
	// It is never stored on a task.
	TaskStatusFilterAll = "All"
)

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the TaskStatus is a valid stored value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}
