package kids

import (
	"context"
	"errors"

	"gorm.io/gorm"

	kidsdomain "kidpoints/internal/domain/kids"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByParent(ctx context.Context, parentID string) ([]kidsdomain.Kid, error) {
	var kids []kidsdomain.Kid
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at, id").
		Find(&kids).Error
	if err != nil {
		return nil, err
	}
	return kids, nil
}

func (r *PostgresRepository) GetOwnedKid(ctx context.Context, kidID, parentID string) (*kidsdomain.Kid, error) {
	var kid kidsdomain.Kid
	err := r.db.WithContext(ctx).
		Where("id = ? AND parent_id = ?", kidID, parentID).
		First(&kid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kidsdomain.ErrKidNotFound
		}
		return nil, err
	}
	return &kid, nil
}

func (r *PostgresRepository) IsOwnedKid(ctx context.Context, kidID, parentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&kidsdomain.Kid{}).
		Where("id = ? AND parent_id = ?", kidID, parentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, kid *kidsdomain.Kid) error {
	return r.db.WithContext(ctx).Create(kid).Error
}

func (r *PostgresRepository) UpdateDisplayName(ctx context.Context, kidID, displayName string) error {
	result := r.db.WithContext(ctx).
		Model(&kidsdomain.Kid{}).
		Where("id = ?", kidID).
		Update("display_name", displayName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return kidsdomain.ErrKidNotFound
	}
	return nil
}

func (r *PostgresRepository) CountByParent(ctx context.Context, parentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&kidsdomain.Kid{}).
		Where("parent_id = ?", parentID).
		Count(&count).Error
	return count, err
}
