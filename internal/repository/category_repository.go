package repository

import (
	"blog-web-server/config"
	"blog-web-server/internal/model"
	"context"
)

type CategoryRepository struct {
	*config.Database
}

func NewCategoryRepository(database *config.Database) *CategoryRepository {
	return &CategoryRepository{database}
}

// Create : сохраняет новую категорию, имя уникально и хранится в нижнем регистре
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	query := `INSERT INTO categories (uuid, name) VALUES ($1, $2) RETURNING uuid, name`

	created := &model.Category{}
	err := r.DB.QueryRowxContext(ctx, query, category.UUID, category.Name).StructScan(created)
	if err != nil {
		return nil, translateError("[CategoryRepo] ошибка вставки данных в БД", err)
	}
	return created, nil
}

// FindByName : ищет категорию по имени
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	if err := r.DB.GetContext(ctx, &category, `SELECT uuid, name FROM categories WHERE name = $1`, name); err != nil {
		return nil, translateError("[CategoryRepo] не удалось найти категорию", err)
	}
	return &category, nil
}
