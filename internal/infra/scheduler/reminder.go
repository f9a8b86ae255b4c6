// Package scheduler runs the cron-based due-task reminder job.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"taskboard/config"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	defaultScanInterval = 5 * time.Minute
	defaultLookahead    = time.Hour
)

// Reminder periodically scans for tasks due soon and publishes a
// task.due event for each, so downstream consumers can notify owners.
type Reminder struct {
	cron      *cron.Cron
	taskRepo  repository.TaskRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	lookahead time.Duration
}

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	TaskRepo  repository.TaskRepository
	Publisher service.EventPublisher
}

// New creates the reminder job and wires it into the application lifecycle.
// It returns nil without error when the job is disabled.
func New(params Params) (*Reminder, error) {
	cfg := params.Config.Reminder
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Due-task reminder disabled")

		return nil, nil
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultScanInterval
	}
	lookahead := cfg.Lookahead
	if lookahead <= 0 {
		lookahead = defaultLookahead
	}

	reminder := &Reminder{
		cron:      cron.New(),
		taskRepo:  params.TaskRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		lookahead: lookahead,
	}

	spec := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	if _, err := reminder.cron.AddFunc(spec, reminder.scan); err != nil {
		return nil, errors.Wrap(err, "failed to schedule reminder job")
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			params.Logger.Info("Starting due-task reminder",
				slog.Duration("interval", interval),
				slog.Duration("lookahead", lookahead),
			)
			reminder.cron.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := reminder.cron.Stop()
			select {
			case <-stopped.Done():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return reminder, nil
}

// scan publishes a task.due event for every unfinished task whose due date
// falls within the lookahead window.
func (r *Reminder) scan() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now().UTC()
	tasks, err := r.taskRepo.ListDueBetween(ctx, now, now.Add(r.lookahead))
	if err != nil {
		r.logger.Error("Reminder scan failed", slog.String("error", err.Error()))

		return
	}

	for _, task := range tasks {
		event := &service.TaskEvent{
			Action:     service.TaskEventDue,
			TaskID:     task.ID.String(),
			OwnerID:    task.OwnerID.String(),
			Title:      task.Title,
			OccurredAt: now,
		}
		if err := r.publisher.PublishTaskEvent(ctx, event); err != nil {
			r.logger.Error("Failed to publish due event",
				slog.String("task_id", event.TaskID),
				slog.String("error", err.Error()),
			)
		}
	}

	if len(tasks) > 0 {
		r.logger.Info("Reminder scan completed", slog.Int("due_tasks", len(tasks)))
	}
}
