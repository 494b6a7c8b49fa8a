package kids

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the kids owned by one parent; a parent can never see another
// parent's kids.
func (s *Service) List(ctx context.Context, parentID string) ([]Kid, error) {
	return s.repo.ListByParent(ctx, parentID)
}

// GetOwnedKid resolves a kid only when it belongs to the given parent.
func (s *Service) GetOwnedKid(ctx context.Context, kidID, parentID string) (*Kid, error) {
	return s.repo.GetOwnedKid(ctx, kidID, parentID)
}

// IsOwnedKid reports whether the kid exists and belongs to the given parent.
func (s *Service) IsOwnedKid(ctx context.Context, kidID, parentID string) (bool, error) {
	return s.repo.IsOwnedKid(ctx, kidID, parentID)
}

func (s *Service) Create(ctx context.Context, parentID, displayName string) (*Kid, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrDisplayNameRequired
	}

	kid := Kid{
		ID:          uuid.NewString(),
		ParentID:    parentID,
		DisplayName: displayName,
	}
	if err := s.repo.Create(ctx, &kid); err != nil {
		return nil, err
	}

	return &kid, nil
}

func (s *Service) Rename(ctx context.Context, kidID, parentID, displayName string) (*Kid, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrDisplayNameRequired
	}

	kid, err := s.repo.GetOwnedKid(ctx, kidID, parentID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDisplayName(ctx, kid.ID, displayName); err != nil {
		return nil, err
	}

	kid.DisplayName = displayName
	return kid, nil
}
