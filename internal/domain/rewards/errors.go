package rewards

import "errors"

var (
	ErrRewardNotFound  = errors.New("reward not found")
	ErrNotEnoughPoints = errors.New("not enough points")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidCost     = errors.New("cost must be non-negative")
)
