// Package entity contains the core business objects of the project.
package entity

// TaskPriority represents the relative importance of a task.
type TaskPriority string

const (
	// TaskPriorityLow indicates a low-priority task.
	TaskPriorityLow TaskPriority = "low"
	// TaskPriorityMedium indicates a medium-priority task. This is the default.
	TaskPriorityMedium TaskPriority = "medium"
	// TaskPriorityHigh indicates a high-priority task.
	TaskPriorityHigh TaskPriority = "high"
)

// String returns the string representation of the TaskPriority.
func (p TaskPriority) String() string {
	return string(p)
}

// IsValid checks if the TaskPriority is a valid value.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}
