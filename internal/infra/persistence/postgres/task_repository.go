package postgres

import (
	"context"
	"strings"
	"time"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindByID retrieves a single task by its unique ID.
func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).First(&taskM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// ListByOwner retrieves the owner's tasks matching the filter, newest first.
// The search term matches title or description case-insensitively; ILIKE
// special characters in the term are escaped so they match literally.
func (repo *taskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.TaskFilter) ([]*entity.Task, error) {
	query := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC")

	if filter.Status != "" && filter.Status != entity.TaskStatusFilterAll {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.Search != "" {
		pattern := "%" + escapeLikePattern(filter.Search) + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var taskMs []model.TaskModel
	if err := query.Find(&taskMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for i := range taskMs {
		tasks = append(tasks, toTaskDomain(&taskMs[i]))
	}

	return tasks, nil
}

// ListDueBetween retrieves not-yet-done tasks of all users due in [from, until).
func (repo *taskRepository) ListDueBetween(ctx context.Context, from, until time.Time) ([]*entity.Task, error) {
	var taskMs []model.TaskModel
	err := repo.db.WithContext(ctx).
		Where("due_date >= ? AND due_date < ?", from, until).
		Where("status <> ?", entity.TaskStatusDone.String()).
		Order("due_date ASC").
		Find(&taskMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list due tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for i := range taskMs {
		tasks = append(tasks, toTaskDomain(&taskMs[i]))
	}

	return tasks, nil
}

// Create persists a new task entity to the database.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err)
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update saves the full task row. Concurrent updates resolve last-write-wins;
// there is no optimistic concurrency token.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)
	taskM.CreatedAt = task.CreatedAt

	if err := repo.db.WithContext(ctx).Save(taskM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err)
	}

	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Delete removes the task with the given ID.
func (repo *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// likeEscaper escapes LIKE/ILIKE metacharacters so user-provided search terms
// match as literal substrings.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Status:      entity.TaskStatus(data.Status),
		Priority:    entity.TaskPriority(data.Priority),
		DueDate:     data.DueDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Status:      data.Status.String(),
		Priority:    data.Priority.String(),
		DueDate:     data.DueDate,
	}
}
