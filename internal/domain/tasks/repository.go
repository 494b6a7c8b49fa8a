package tasks

import (
	"context"
	"time"
)

type Repository interface {
	ListByAssignedKid(ctx context.Context, kidID string) ([]Task, error)
	ListByCreator(ctx context.Context, parentID string) ([]Task, error)
	GetAssigned(ctx context.Context, taskID int64, kidID string) (*Task, error)
	Create(ctx context.Context, task *Task) error
	MarkComplete(ctx context.Context, taskID int64, completedAt time.Time) error
	DeleteCreated(ctx context.Context, taskID int64, parentID string) error
	CountAll(ctx context.Context) (int64, error)
}
