package points

import (
	"context"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
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
