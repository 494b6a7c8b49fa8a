package auth

import "context"

type Repository interface {
	GetParentByUsername(ctx context.Context, username string) (*User, error)
	CreateParent(ctx context.Context, user *User) error
}
