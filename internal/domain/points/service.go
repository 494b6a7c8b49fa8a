package points

import "context"

// Service derives a kid's spendable balance. The balance is never persisted:
// it is earned points (completed tasks) minus spent points (redeemed reward
// costs), recomputed from source records on every call unless a cache entry
// is present. A negative balance is possible only via rows inserted out of
// band; it is reported as-is, never clamped.
type Service struct {
	repo  Repository
	cache BalanceCache
}

func NewService(repo Repository, cache BalanceCache) *Service {
	if cache == nil {
		cache = NoopCache{}
	}
	return &Service{repo: repo, cache: cache}
}

func (s *Service) Balance(ctx context.Context, kidID string) (int, error) {
	if balance, ok := s.cache.Get(kidID); ok {
		return balance, nil
	}

	earned, err := s.repo.SumCompletedTaskPoints(ctx, kidID)
	if err != nil {
		return 0, err
	}

	spent, err := s.repo.SumRedeemedCosts(ctx, kidID)
	if err != nil {
		return 0, err
	}

	balance := earned - spent
	s.cache.Set(kidID, balance)
	return balance, nil
}

// Invalidate drops any cached balance for the kid. Task completion and
// reward redemption call this after committing.
func (s *Service) Invalidate(kidID string) {
	s.cache.Invalidate(kidID)
}
