package rewards

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// LockKid serializes redemptions per kid for the rest of the current
	// transaction.
	LockKid(ctx context.Context, kidID string) error
	List(ctx context.Context) ([]Reward, error)
	Get(ctx context.Context, rewardID int64) (*Reward, error)
	Create(ctx context.Context, reward *Reward) error
	CreateRedemption(ctx context.Context, redemption *Redemption) error
	SumCompletedTaskPoints(ctx context.Context, kidID string) (int, error)
	SumRedeemedCosts(ctx context.Context, kidID string) (int, error)
	CountRewards(ctx context.Context) (int64, error)
}
