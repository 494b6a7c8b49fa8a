package points

import "context"

// Repository exposes the two aggregates the balance is derived from. Both
// must coalesce an empty row set to zero.
type Repository interface {
	SumCompletedTaskPoints(ctx context.Context, kidID string) (int, error)
	SumRedeemedCosts(ctx context.Context, kidID string) (int, error)
}
