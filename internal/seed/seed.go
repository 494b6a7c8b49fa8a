package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"kidpoints/internal/domain/auth"
	"kidpoints/internal/domain/kids"
	"kidpoints/internal/domain/rewards"
	"kidpoints/internal/domain/tasks"
	"kidpoints/pkg/logger"
)

const (
	defaultParentUsername = "parent1"
	defaultParentPassword = "ChangeMe123!"
)

type Stores struct {
	Users   auth.Repository
	Kids    kids.Repository
	Tasks   tasks.Repository
	Rewards rewards.Repository
}

// Run makes sure a fresh database has something to play with: one parent
// login, two kids, a few rewards and tasks. Every step inserts only when the
// corresponding records are absent, so running it on every startup is safe.
func Run(ctx context.Context, log logger.Logger, stores Stores) error {
	parent, err := stores.Users.GetParentByUsername(ctx, defaultParentUsername)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			return fmt.Errorf("seed: look up parent: %w", err)
		}

		hash, err := auth.HashPassword(defaultParentPassword)
		if err != nil {
			return fmt.Errorf("seed: hash password: %w", err)
		}

		parent = &auth.User{
			ID:           uuid.NewString(),
			Username:     defaultParentUsername,
			PasswordHash: hash,
			Role:         string(auth.RoleParent),
		}
		if err := stores.Users.CreateParent(ctx, parent); err != nil {
			return fmt.Errorf("seed: create parent: %w", err)
		}
		log.Info("seed: created default parent", "username", defaultParentUsername)
	}

	kidCount, err := stores.Kids.CountByParent(ctx, parent.ID)
	if err != nil {
		return fmt.Errorf("seed: count kids: %w", err)
	}
	if kidCount == 0 {
		defaults := []kids.Kid{
			{ID: "kid-1", ParentID: parent.ID, DisplayName: "Kid 1"},
			{ID: "kid-2", ParentID: parent.ID, DisplayName: "Kid 2"},
		}
		for i := range defaults {
			if err := stores.Kids.Create(ctx, &defaults[i]); err != nil {
				return fmt.Errorf("seed: create kid %s: %w", defaults[i].ID, err)
			}
		}
		log.Info("seed: created default kids", "count", len(defaults))
	}

	rewardCount, err := stores.Rewards.CountRewards(ctx)
	if err != nil {
		return fmt.Errorf("seed: count rewards: %w", err)
	}
	if rewardCount == 0 {
		defaults := []rewards.Reward{
			{Name: "Ice Cream", Cost: 100},
			{Name: "Extra Screen Time", Cost: 50},
			{Name: "Movie Night", Cost: 150},
		}
		for i := range defaults {
			if err := stores.Rewards.Create(ctx, &defaults[i]); err != nil {
				return fmt.Errorf("seed: create reward %q: %w", defaults[i].Name, err)
			}
		}
		log.Info("seed: created default rewards", "count", len(defaults))
	}

	taskCount, err := stores.Tasks.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: count tasks: %w", err)
	}
	if taskCount == 0 {
		defaults := []tasks.Task{
			{Title: "Brush Teeth", Points: 50, AssignedKidID: "kid-1", CreatedByParentID: parent.ID},
			{Title: "Go to School", Points: 50, AssignedKidID: "kid-1", CreatedByParentID: parent.ID},
			{Title: "Homework", Points: 50, AssignedKidID: "kid-2", CreatedByParentID: parent.ID},
		}
		for i := range defaults {
			if err := stores.Tasks.Create(ctx, &defaults[i]); err != nil {
				return fmt.Errorf("seed: create task %q: %w", defaults[i].Title, err)
			}
		}
		log.Info("seed: created default tasks", "count", len(defaults))
	}

	return nil
}
