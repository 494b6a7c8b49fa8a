package tasks

import (
	"context"
	"strings"
	"time"
)

// KidOwnership answers whether a kid id belongs to a parent. Backed by the
// kids domain.
type KidOwnership interface {
	IsOwnedKid(ctx context.Context, kidID, parentID string) (bool, error)
}

// BalanceInvalidator is notified whenever a completion changes a kid's
// earnable total, so any balance cache can drop its entry.
type BalanceInvalidator interface {
	Invalidate(kidID string)
}

type Service struct {
	repo     Repository
	kids     KidOwnership
	balances BalanceInvalidator
}

func NewService(repo Repository, kids KidOwnership, balances BalanceInvalidator) *Service {
	return &Service{repo: repo, kids: kids, balances: balances}
}

// ListForKid returns the tasks assigned to the acting kid, and nothing else.
func (s *Service) ListForKid(ctx context.Context, kidID string) ([]Task, error) {
	return s.repo.ListByAssignedKid(ctx, kidID)
}

// ListForParent lists by owned kid when kidID is given, otherwise falls back
// to tasks the parent created. An unowned kidID is a validation failure, not
// an empty result.
func (s *Service) ListForParent(ctx context.Context, parentID, kidID string) ([]Task, error) {
	kidID = strings.TrimSpace(kidID)
	if kidID == "" {
		return s.repo.ListByCreator(ctx, parentID)
	}

	owned, err := s.kids.IsOwnedKid(ctx, kidID, parentID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrUnknownKid
	}

	return s.repo.ListByAssignedKid(ctx, kidID)
}

type CreateInput struct {
	Title         string
	Points        int
	AssignedKidID string
}

func (s *Service) Create(ctx context.Context, parentID string, input CreateInput) (*Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if input.Points < 0 {
		return nil, ErrInvalidPoints
	}

	owned, err := s.kids.IsOwnedKid(ctx, input.AssignedKidID, parentID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrUnknownKid
	}

	task := Task{
		Title:             title,
		Points:            input.Points,
		AssignedKidID:     input.AssignedKidID,
		CreatedByParentID: parentID,
	}
	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// Complete marks a task done for the acting kid. Completing an already
// complete task is a no-op returning the unchanged task; the timestamp is set
// exactly once.
func (s *Service) Complete(ctx context.Context, taskID int64, kidID string) (*Task, error) {
	task, err := s.repo.GetAssigned(ctx, taskID, kidID)
	if err != nil {
		return nil, err
	}

	if task.IsComplete {
		return task, nil
	}

	completedAt := time.Now().UTC()
	if err := s.repo.MarkComplete(ctx, task.ID, completedAt); err != nil {
		return nil, err
	}

	task.IsComplete = true
	task.CompletedAt = &completedAt
	s.balances.Invalidate(kidID)

	return task, nil
}

// Delete removes a task, but only for the parent that created it.
func (s *Service) Delete(ctx context.Context, taskID int64, parentID string) error {
	return s.repo.DeleteCreated(ctx, taskID, parentID)
}
