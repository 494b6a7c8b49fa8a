package tasks

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	tasksdomain "kidpoints/internal/domain/tasks"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByAssignedKid(ctx context.Context, kidID string) ([]tasksdomain.Task, error) {
	var tasks []tasksdomain.Task
	err := r.db.WithContext(ctx).
		Where("assigned_kid_id = ?", kidID).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *PostgresRepository) ListByCreator(ctx context.Context, parentID string) ([]tasksdomain.Task, error) {
	var tasks []tasksdomain.Task
	err := r.db.WithContext(ctx).
		Where("created_by_parent_id = ?", parentID).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *PostgresRepository) GetAssigned(ctx context.Context, taskID int64, kidID string) (*tasksdomain.Task, error) {
	var task tasksdomain.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND assigned_kid_id = ?", taskID, kidID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tasksdomain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *PostgresRepository) Create(ctx context.Context, task *tasksdomain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *PostgresRepository) MarkComplete(ctx context.Context, taskID int64, completedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&tasksdomain.Task{}).
		Where("id = ? AND NOT is_complete", taskID).
		Updates(map[string]interface{}{
			"is_complete":  true,
			"completed_at": completedAt,
		}).Error
}

func (r *PostgresRepository) DeleteCreated(ctx context.Context, taskID int64, parentID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND created_by_parent_id = ?", taskID, parentID).
		Delete(&tasksdomain.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return tasksdomain.ErrTaskNotFound
	}
	return nil
}

func (r *PostgresRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&tasksdomain.Task{}).Count(&count).Error
	return count, err
}
