package service

import (
	"context"
	"time"
)

// Task event actions published by the task use case and the reminder job.
const (
	TaskEventCreated = "task.created"
	TaskEventUpdated = "task.updated"
	TaskEventDeleted = "task.deleted"
	TaskEventDue     = "task.due"
)

// TaskEvent describes a change to a task, for downstream consumers.
type TaskEvent struct {
	Action     string    `json:"action"`
	TaskID     string    `json:"task_id"`
	OwnerID    string    `json:"owner_id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing task events to a
// message queue. Publishing is best-effort; task mutations never fail because
// the publisher does.
type EventPublisher interface {
	// PublishTaskEvent publishes a task event for async processing.
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
