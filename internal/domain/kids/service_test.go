package kids

import (
	"context"
	"errors"
	"testing"
)

type fakeKidRepo struct {
	kids map[string]*Kid
}

func newFakeKidRepo() *fakeKidRepo {
	return &fakeKidRepo{kids: make(map[string]*Kid)}
}

func (r *fakeKidRepo) ListByParent(ctx context.Context, parentID string) ([]Kid, error) {
	result := make([]Kid, 0)
	for _, kid := range r.kids {
		if kid.ParentID == parentID {
			result = append(result, *kid)
		}
	}
	return result, nil
}

func (r *fakeKidRepo) GetOwnedKid(ctx context.Context, kidID, parentID string) (*Kid, error) {
	kid, ok := r.kids[kidID]
	if !ok || kid.ParentID != parentID {
		return nil, ErrKidNotFound
	}
	return kid, nil
}

func (r *fakeKidRepo) IsOwnedKid(ctx context.Context, kidID, parentID string) (bool, error) {
	kid, ok := r.kids[kidID]
	return ok && kid.ParentID == parentID, nil
}

func (r *fakeKidRepo) Create(ctx context.Context, kid *Kid) error {
	r.kids[kid.ID] = kid
	return nil
}

func (r *fakeKidRepo) UpdateDisplayName(ctx context.Context, kidID, displayName string) error {
	kid, ok := r.kids[kidID]
	if !ok {
		return ErrKidNotFound
	}
	kid.DisplayName = displayName
	return nil
}

func (r *fakeKidRepo) CountByParent(ctx context.Context, parentID string) (int64, error) {
	var count int64
	for _, kid := range r.kids {
		if kid.ParentID == parentID {
			count++
		}
	}
	return count, nil
}

func TestCreateKidTrimsName(t *testing.T) {
	repo := newFakeKidRepo()
	svc := NewService(repo)

	kid, err := svc.Create(context.Background(), "parent-1", "  Sam  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if kid.DisplayName != "Sam" {
		t.Fatalf("expected trimmed name, got %q", kid.DisplayName)
	}
	if kid.ParentID != "parent-1" {
		t.Fatalf("expected parent-1 owner, got %q", kid.ParentID)
	}
	if kid.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestCreateKidBlankName(t *testing.T) {
	svc := NewService(newFakeKidRepo())

	_, err := svc.Create(context.Background(), "parent-1", "   ")
	if !errors.Is(err, ErrDisplayNameRequired) {
		t.Fatalf("expected ErrDisplayNameRequired, got %v", err)
	}
}

func TestListScopedToParent(t *testing.T) {
	repo := newFakeKidRepo()
	repo.kids["kid-1"] = &Kid{ID: "kid-1", ParentID: "parent-1", DisplayName: "Kid 1"}
	repo.kids["kid-2"] = &Kid{ID: "kid-2", ParentID: "parent-2", DisplayName: "Kid 2"}

	svc := NewService(repo)
	kids, err := svc.List(context.Background(), "parent-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(kids) != 1 || kids[0].ID != "kid-1" {
		t.Fatalf("expected only kid-1, got %+v", kids)
	}
}

func TestRenameKid(t *testing.T) {
	repo := newFakeKidRepo()
	repo.kids["kid-1"] = &Kid{ID: "kid-1", ParentID: "parent-1", DisplayName: "Kid 1"}

	svc := NewService(repo)
	kid, err := svc.Rename(context.Background(), "kid-1", "parent-1", " New Name ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if kid.DisplayName != "New Name" {
		t.Fatalf("expected renamed kid, got %q", kid.DisplayName)
	}
}

func TestRenameKidNotOwned(t *testing.T) {
	repo := newFakeKidRepo()
	repo.kids["kid-1"] = &Kid{ID: "kid-1", ParentID: "parent-2", DisplayName: "Kid 1"}

	svc := NewService(repo)
	_, err := svc.Rename(context.Background(), "kid-1", "parent-1", "New Name")
	if !errors.Is(err, ErrKidNotFound) {
		t.Fatalf("expected ErrKidNotFound, got %v", err)
	}
	if repo.kids["kid-1"].DisplayName != "Kid 1" {
		t.Fatalf("expected name unchanged, got %q", repo.kids["kid-1"].DisplayName)
	}
}
