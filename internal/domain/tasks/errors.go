package tasks

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrUnknownKid    = errors.New("unknown kid id for this parent")
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidPoints = errors.New("points must be non-negative")
)
