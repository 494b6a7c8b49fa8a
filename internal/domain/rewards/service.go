package rewards

import (
	"context"
	"strings"
	"time"
)

// BalanceInvalidator drops a kid's cached balance after a redemption commits.
type BalanceInvalidator interface {
	Invalidate(kidID string)
}

type Service struct {
	repo     Repository
	balances BalanceInvalidator
}

func NewService(repo Repository, balances BalanceInvalidator) *Service {
	return &Service{repo: repo, balances: balances}
}

func (s *Service) List(ctx context.Context) ([]Reward, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, name string, cost int) (*Reward, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if cost < 0 {
		return nil, ErrInvalidCost
	}

	reward := Reward{Name: name, Cost: cost}
	if err := s.repo.Create(ctx, &reward); err != nil {
		return nil, err
	}

	return &reward, nil
}

// Redeem spends a kid's points on a reward. Eligibility (balance >= cost) is
// checked against a balance recomputed inside the same transaction that
// inserts the redemption row, with redemptions serialized per kid, so two
// concurrent redemptions cannot both spend the same points. A cost-0 reward is
// always redeemable.
func (s *Service) Redeem(ctx context.Context, kidID string, rewardID int64) (*RedemptionResult, error) {
	var result RedemptionResult
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.LockKid(ctx, kidID); err != nil {
			return err
		}

		reward, err := tx.Get(ctx, rewardID)
		if err != nil {
			return err
		}

		earned, err := tx.SumCompletedTaskPoints(ctx, kidID)
		if err != nil {
			return err
		}
		spent, err := tx.SumRedeemedCosts(ctx, kidID)
		if err != nil {
			return err
		}

		balance := earned - spent
		if balance < reward.Cost {
			return ErrNotEnoughPoints
		}

		redemption := Redemption{
			KidID:      kidID,
			RewardID:   reward.ID,
			RedeemedAt: time.Now().UTC(),
		}
		if err := tx.CreateRedemption(ctx, &redemption); err != nil {
			return err
		}

		result = RedemptionResult{
			KidID:      kidID,
			NewPoints:  balance - reward.Cost,
			Redemption: redemption,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.balances.Invalidate(kidID)
	return &result, nil
}
