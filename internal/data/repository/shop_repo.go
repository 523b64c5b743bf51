package repository

import (
	"context"
	"errors"
	"fmt"

	"retail-backend/internal/data/entity"
	"retail-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShopRepository interface {
	Upsert(ctx context.Context, shop *entity.Shop) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error)
	FindActive(ctx context.Context) ([]entity.Shop, error)
	UpdateState(ctx context.Context, userID uuid.UUID, state bool) (*entity.Shop, error)
}

type shopRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewShopRepository(db database.DBTX, log *zap.Logger) ShopRepository {
	return &shopRepository{
		db:  db,
		log: log.With(zap.String("repository", "shop")),
	}
}

// Upsert creates the user's shop or renames it, filling ID and State.
func (r *shopRepository) Upsert(ctx context.Context, shop *entity.Shop) error {
	query := `
		INSERT INTO shops (name, url, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name, url = EXCLUDED.url
		RETURNING id, state
	`

	err := r.db.QueryRow(ctx, query, shop.Name, shop.URL, shop.UserID).Scan(&shop.ID, &shop.State)
	if err != nil {
		r.log.Error("Failed to upsert shop",
			zap.Error(err),
			zap.String("user_id", shop.UserID.String()),
		)
		return fmt.Errorf("upsert shop %s: %w", shop.Name, err)
	}

	return nil
}

func (r *shopRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Shop, error) {
	query := `
		SELECT id, name, url, user_id, state
		FROM shops
		WHERE user_id = $1
	`

	var shop entity.Shop
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&shop.ID,
		&shop.Name,
		&shop.URL,
		&shop.UserID,
		&shop.State,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find shop by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find shop of %s: %w", userID.String(), err)
	}

	return &shop, nil
}

func (r *shopRepository) FindActive(ctx context.Context) ([]entity.Shop, error) {
	query := `
		SELECT id, name, url, user_id, state
		FROM shops
		WHERE state = TRUE
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query active shops", zap.Error(err))
		return nil, fmt.Errorf("query active shops: %w", err)
	}
	defer rows.Close()

	shops := make([]entity.Shop, 0)
	for rows.Next() {
		var shop entity.Shop
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.URL, &shop.UserID, &shop.State); err != nil {
			r.log.Error("Failed to scan shop", zap.Error(err))
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shops: %w", err)
	}

	return shops, nil
}

// UpdateState returns nil when the user has no shop yet.
func (r *shopRepository) UpdateState(ctx context.Context, userID uuid.UUID, state bool) (*entity.Shop, error) {
	query := `
		UPDATE shops
		SET state = $2
		WHERE user_id = $1
		RETURNING id, name, url, user_id, state
	`

	var shop entity.Shop
	err := r.db.QueryRow(ctx, query, userID, state).Scan(
		&shop.ID,
		&shop.Name,
		&shop.URL,
		&shop.UserID,
		&shop.State,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update shop state",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("update shop state of %s: %w", userID.String(), err)
	}

	return &shop, nil
}
