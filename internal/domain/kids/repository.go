package kids

import "context"

type Repository interface {
	ListByParent(ctx context.Context, parentID string) ([]Kid, error)
	GetOwnedKid(ctx context.Context, kidID, parentID string) (*Kid, error)
	IsOwnedKid(ctx context.Context, kidID, parentID string) (bool, error)
	Create(ctx context.Context, kid *Kid) error
	UpdateDisplayName(ctx context.Context, kidID, displayName string) error
	CountByParent(ctx context.Context, parentID string) (int64, error)
}
