package repository

import (
	"context"
	"fmt"

	"retail-backend/internal/data/entity"
	"retail-backend/pkg/database"

	"go.uber.org/zap"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]entity.Category, error)
	Upsert(ctx context.Context, category *entity.Category) error
	LinkShop(ctx context.Context, shopID, categoryID int64) error
}

type categoryRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewCategoryRepository(db database.DBTX, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query categories", zap.Error(err))
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]entity.Category, 0)
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			r.log.Error("Failed to scan category", zap.Error(err))
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

// Upsert keys categories by the id carried in price lists.
func (r *categoryRepository) Upsert(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
	`

	if _, err := r.db.Exec(ctx, query, category.ID, category.Name); err != nil {
		r.log.Error("Failed to upsert category",
			zap.Error(err),
			zap.Int64("category_id", category.ID),
		)
		return fmt.Errorf("upsert category %d: %w", category.ID, err)
	}

	return nil
}

func (r *categoryRepository) LinkShop(ctx context.Context, shopID, categoryID int64) error {
	query := `
		INSERT INTO shop_categories (shop_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, shopID, categoryID); err != nil {
		r.log.Error("Failed to link category to shop",
			zap.Error(err),
			zap.Int64("shop_id", shopID),
			zap.Int64("category_id", categoryID),
		)
		return fmt.Errorf("link category %d to shop %d: %w", categoryID, shopID, err)
	}

	return nil
}
