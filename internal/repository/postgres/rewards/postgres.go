package rewards

import (
	"context"
	"errors"

	"gorm.io/gorm"

	rewardsdomain "kidpoints/internal/domain/rewards"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(rewardsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

// LockKid takes a transaction-scoped advisory lock keyed on the kid id, so
// only one redemption per kid can be in flight at a time.
func (r *PostgresRepository) LockKid(ctx context.Context, kidID string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", kidID).
		Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]rewardsdomain.Reward, error) {
	var rewards []rewardsdomain.Reward
	err := r.db.WithContext(ctx).Order("id").Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *PostgresRepository) Get(ctx context.Context, rewardID int64) (*rewardsdomain.Reward, error) {
	var reward rewardsdomain.Reward
	err := r.db.WithContext(ctx).
		Where("id = ?", rewardID).
		First(&reward).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rewardsdomain.ErrRewardNotFound
		}
		return nil, err
	}
	return &reward, nil
}

func (r *PostgresRepository) Create(ctx context.Context, reward *rewardsdomain.Reward) error {
	return r.db.WithContext(ctx).Create(reward).Error
}

func (r *PostgresRepository) CreateRedemption(ctx context.Context, redemption *rewardsdomain.Redemption) error {
	return r.db.WithContext(ctx).Create(redemption).Error
}

func (r *PostgresRepository) SumCompletedTaskPoints(ctx context.Context, kidID string) (int, error) {
	var earned int
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(points), 0) FROM tasks WHERE assigned_kid_id = ? AND is_complete", kidID).
		Scan(&earned).Error
	return earned, err
}

func (r *PostgresRepository) SumRedeemedCosts(ctx context.Context, kidID string) (int, error) {
	var spent int
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(rw.cost), 0)
			FROM redemptions rd
			JOIN rewards rw ON rw.id = rd.reward_id
			WHERE rd.kid_id = ?`, kidID).
		Scan(&spent).Error
	return spent, err
}

func (r *PostgresRepository) CountRewards(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&rewardsdomain.Reward{}).Count(&count).Error
	return count, err
}
