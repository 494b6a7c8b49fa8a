package points

import (
	"context"
	"testing"
)

type fakePointsRepo struct {
	earned map[string]int
	spent  map[string]int
	calls  int
}

func newFakePointsRepo() *fakePointsRepo {
	return &fakePointsRepo{earned: make(map[string]int), spent: make(map[string]int)}
}

func (r *fakePointsRepo) SumCompletedTaskPoints(ctx context.Context, kidID string) (int, error) {
	r.calls++
	return r.earned[kidID], nil
}

func (r *fakePointsRepo) SumRedeemedCosts(ctx context.Context, kidID string) (int, error) {
	return r.spent[kidID], nil
}

type mapCache struct {
	entries map[string]int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]int)}
}

func (c *mapCache) Get(kidID string) (int, bool) {
	balance, ok := c.entries[kidID]
	return balance, ok
}

func (c *mapCache) Set(kidID string, balance int) {
	c.entries[kidID] = balance
}

func (c *mapCache) Invalidate(kidID string) {
	delete(c.entries, kidID)
}

func TestBalanceZeroWithNoActivity(t *testing.T) {
	svc := NewService(newFakePointsRepo(), nil)

	balance, err := svc.Balance(context.Background(), "kid-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if balance != 0 {
		t.Fatalf("expected 0 balance, got %d", balance)
	}
}

func TestBalanceIsEarnedMinusSpent(t *testing.T) {
	repo := newFakePointsRepo()
	repo.earned["kid-1"] = 150
	repo.spent["kid-1"] = 100

	svc := NewService(repo, nil)
	balance, err := svc.Balance(context.Background(), "kid-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if balance != 50 {
		t.Fatalf("expected 50, got %d", balance)
	}
}

func TestBalanceNegativeNotClamped(t *testing.T) {
	// Out-of-band redemption rows can push a balance below zero; it is
	// reported as-is.
	repo := newFakePointsRepo()
	repo.earned["kid-1"] = 50
	repo.spent["kid-1"] = 100

	svc := NewService(repo, nil)
	balance, err := svc.Balance(context.Background(), "kid-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if balance != -50 {
		t.Fatalf("expected -50, got %d", balance)
	}
}

func TestBalanceUsesCacheUntilInvalidated(t *testing.T) {
	repo := newFakePointsRepo()
	repo.earned["kid-1"] = 100
	cache := newMapCache()
	svc := NewService(repo, cache)

	if _, err := svc.Balance(context.Background(), "kid-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.Balance(context.Background(), "kid-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected one recompute while cached, got %d", repo.calls)
	}

	repo.earned["kid-1"] = 150
	svc.Invalidate("kid-1")

	balance, err := svc.Balance(context.Background(), "kid-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if balance != 150 {
		t.Fatalf("expected fresh balance 150 after invalidation, got %d", balance)
	}
	if repo.calls != 2 {
		t.Fatalf("expected recompute after invalidation, got %d calls", repo.calls)
	}
}

func TestNoopCacheAlwaysRecomputes(t *testing.T) {
	repo := newFakePointsRepo()
	repo.earned["kid-1"] = 100
	svc := NewService(repo, NoopCache{})

	for i := 0; i < 3; i++ {
		if _, err := svc.Balance(context.Background(), "kid-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if repo.calls != 3 {
		t.Fatalf("expected 3 recomputes, got %d", repo.calls)
	}
}
