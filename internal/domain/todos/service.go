package todos

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Todo, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, title string) (*Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	todo := Todo{Title: title}
	if err := s.repo.Create(ctx, &todo); err != nil {
		return nil, err
	}

	return &todo, nil
}

func (s *Service) Update(ctx context.Context, id int64, title string, isDone bool) (*Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	todo.Title = title
	todo.IsDone = isDone
	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
