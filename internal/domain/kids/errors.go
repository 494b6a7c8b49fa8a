package kids

import "errors"

var (
	ErrKidNotFound         = errors.New("kid not found")
	ErrDisplayNameRequired = errors.New("display name is required")
)
