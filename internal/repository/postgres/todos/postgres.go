package todos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	todosdomain "kidpoints/internal/domain/todos"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]todosdomain.Todo, error) {
	var todos []todosdomain.Todo
	err := r.db.WithContext(ctx).Order("id").Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*todosdomain.Todo, error) {
	var todo todosdomain.Todo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, todosdomain.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (r *PostgresRepository) Create(ctx context.Context, todo *todosdomain.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *PostgresRepository) Update(ctx context.Context, todo *todosdomain.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&todosdomain.Todo{}).Error
}
