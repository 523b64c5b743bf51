package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"retail-backend/internal/data/entity"
	"retail-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProductFilter narrows catalog listings; nil fields are ignored.
type ProductFilter struct {
	ShopID     *int64
	CategoryID *int64
}

// ParameterValue binds a parameter id to the value an offer carries.
type ParameterValue struct {
	ParameterID int64
	Value       string
}

type ProductRepository interface {
	// Price-list import
	UpsertProduct(ctx context.Context, product *entity.Product) error
	UpsertInfo(ctx context.Context, info *entity.ProductInfo) error
	DeleteStaleInfos(ctx context.Context, shopID int64, keepExternalIDs []int64) (int64, error)
	UpsertParameter(ctx context.Context, name string) (int64, error)
	ReplaceParameters(ctx context.Context, productInfoID int64, values []ParameterValue) error

	// Catalog
	FindInfos(ctx context.Context, filter ProductFilter, offset, limit int) ([]entity.ProductInfoView, error)
	FindInfosByIDs(ctx context.Context, ids []int64) ([]entity.ProductInfoView, error)
	FindInfoByID(ctx context.Context, id int64) (*entity.ProductInfo, error)
}

type productRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewProductRepository(db database.DBTX, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) UpsertProduct(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, category_id)
		VALUES ($1, $2)
		ON CONFLICT (name, category_id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, product.Name, product.CategoryID).Scan(&product.ID)
	if err != nil {
		r.log.Error("Failed to upsert product",
			zap.Error(err),
			zap.String("name", product.Name),
			zap.Int64("category_id", product.CategoryID),
		)
		return fmt.Errorf("upsert product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) UpsertInfo(ctx context.Context, info *entity.ProductInfo) error {
	query := `
		INSERT INTO product_infos (product_id, shop_id, external_id, model,
		                           quantity, price, price_rrc)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (shop_id, external_id) DO UPDATE
		SET product_id = EXCLUDED.product_id, model = EXCLUDED.model,
		    quantity = EXCLUDED.quantity, price = EXCLUDED.price,
		    price_rrc = EXCLUDED.price_rrc
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		info.ProductID,
		info.ShopID,
		info.ExternalID,
		info.Model,
		info.Quantity,
		info.Price,
		info.PriceRRC,
	).Scan(&info.ID)
	if err != nil {
		r.log.Error("Failed to upsert product info",
			zap.Error(err),
			zap.Int64("shop_id", info.ShopID),
			zap.Int64("external_id", info.ExternalID),
		)
		return fmt.Errorf("upsert product info %d of shop %d: %w", info.ExternalID, info.ShopID, err)
	}

	return nil
}

// DeleteStaleInfos removes the shop's offers whose external id is not kept.
func (r *productRepository) DeleteStaleInfos(ctx context.Context, shopID int64, keepExternalIDs []int64) (int64, error) {
	query := `
		DELETE FROM product_infos
		WHERE shop_id = $1 AND NOT (external_id = ANY($2))
	`

	if keepExternalIDs == nil {
		keepExternalIDs = []int64{}
	}

	result, err := r.db.Exec(ctx, query, shopID, keepExternalIDs)
	if err != nil {
		r.log.Error("Failed to delete stale product infos",
			zap.Error(err),
			zap.Int64("shop_id", shopID),
		)
		return 0, fmt.Errorf("delete stale infos of shop %d: %w", shopID, err)
	}

	return result.RowsAffected(), nil
}

func (r *productRepository) UpsertParameter(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO parameters (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, name).Scan(&id); err != nil {
		r.log.Error("Failed to upsert parameter",
			zap.Error(err),
			zap.String("name", name),
		)
		return 0, fmt.Errorf("upsert parameter %s: %w", name, err)
	}

	return id, nil
}

func (r *productRepository) ReplaceParameters(ctx context.Context, productInfoID int64, values []ParameterValue) error {
	deleteQuery := `DELETE FROM product_parameters WHERE product_info_id = $1`
	if _, err := r.db.Exec(ctx, deleteQuery, productInfoID); err != nil {
		r.log.Error("Failed to clear product parameters",
			zap.Error(err),
			zap.Int64("product_info_id", productInfoID),
		)
		return fmt.Errorf("clear parameters of info %d: %w", productInfoID, err)
	}

	insertQuery := `
		INSERT INTO product_parameters (product_info_id, parameter_id, value)
		VALUES ($1, $2, $3)
	`
	for _, v := range values {
		if _, err := r.db.Exec(ctx, insertQuery, productInfoID, v.ParameterID, v.Value); err != nil {
			r.log.Error("Failed to insert product parameter",
				zap.Error(err),
				zap.Int64("product_info_id", productInfoID),
				zap.Int64("parameter_id", v.ParameterID),
			)
			return fmt.Errorf("insert parameter %d of info %d: %w", v.ParameterID, productInfoID, err)
		}
	}

	return nil
}

const productInfoViewQuery = `
		SELECT pi.id, pi.product_id, pi.shop_id, pi.external_id, pi.model,
		       pi.quantity, pi.price, pi.price_rrc,
		       p.name, c.name, s.name
		FROM product_infos pi
		JOIN products p ON p.id = pi.product_id
		JOIN categories c ON c.id = p.category_id
		JOIN shops s ON s.id = pi.shop_id
`

// FindInfos lists offers of active shops. A non-positive limit means no limit.
func (r *productRepository) FindInfos(ctx context.Context, filter ProductFilter, offset, limit int) ([]entity.ProductInfoView, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(productInfoViewQuery)
	queryBuilder.WriteString(" WHERE s.state = TRUE")

	args := []any{}
	argCount := 1

	if filter.ShopID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND pi.shop_id = $%d", argCount))
		args = append(args, *filter.ShopID)
		argCount++
	}
	if filter.CategoryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.category_id = $%d", argCount))
		args = append(args, *filter.CategoryID)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY pi.id")
	if limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
		args = append(args, limit, offset)
	}

	infos, err := r.queryInfoViews(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find product infos",
			zap.Error(err),
			zap.Int64p("shop_id", filter.ShopID),
			zap.Int64p("category_id", filter.CategoryID),
		)
		return nil, fmt.Errorf("find product infos: %w", err)
	}

	return infos, nil
}

// FindInfosByIDs loads offers regardless of shop state, for baskets and orders.
func (r *productRepository) FindInfosByIDs(ctx context.Context, ids []int64) ([]entity.ProductInfoView, error) {
	if len(ids) == 0 {
		return []entity.ProductInfoView{}, nil
	}

	query := productInfoViewQuery + " WHERE pi.id = ANY($1) ORDER BY pi.id"

	infos, err := r.queryInfoViews(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find product infos by IDs", zap.Error(err))
		return nil, fmt.Errorf("find product infos by ids: %w", err)
	}

	return infos, nil
}

func (r *productRepository) FindInfoByID(ctx context.Context, id int64) (*entity.ProductInfo, error) {
	query := `
		SELECT id, product_id, shop_id, external_id, model, quantity, price, price_rrc
		FROM product_infos
		WHERE id = $1
	`

	var info entity.ProductInfo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&info.ID,
		&info.ProductID,
		&info.ShopID,
		&info.ExternalID,
		&info.Model,
		&info.Quantity,
		&info.Price,
		&info.PriceRRC,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product info",
			zap.Error(err),
			zap.Int64("product_info_id", id),
		)
		return nil, fmt.Errorf("find product info %d: %w", id, err)
	}

	return &info, nil
}

func (r *productRepository) queryInfoViews(ctx context.Context, query string, args ...any) ([]entity.ProductInfoView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := make([]entity.ProductInfoView, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var v entity.ProductInfoView
		err := rows.Scan(
			&v.ID,
			&v.ProductID,
			&v.ShopID,
			&v.ExternalID,
			&v.Model,
			&v.Quantity,
			&v.Price,
			&v.PriceRRC,
			&v.ProductName,
			&v.CategoryName,
			&v.ShopName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product info: %w", err)
		}
		v.Parameters = []entity.ProductParameter{}
		infos = append(infos, v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product infos: %w", err)
	}

	if len(ids) == 0 {
		return infos, nil
	}

	params, err := r.findParameters(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range infos {
		if p, ok := params[infos[i].ID]; ok {
			infos[i].Parameters = p
		}
	}

	return infos, nil
}

func (r *productRepository) findParameters(ctx context.Context, infoIDs []int64) (map[int64][]entity.ProductParameter, error) {
	query := `
		SELECT pp.product_info_id, pa.name, pp.value
		FROM product_parameters pp
		JOIN parameters pa ON pa.id = pp.parameter_id
		WHERE pp.product_info_id = ANY($1)
		ORDER BY pp.product_info_id, pa.name
	`

	rows, err := r.db.Query(ctx, query, infoIDs)
	if err != nil {
		return nil, fmt.Errorf("query product parameters: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]entity.ProductParameter)
	for rows.Next() {
		var p entity.ProductParameter
		if err := rows.Scan(&p.ProductInfoID, &p.Parameter, &p.Value); err != nil {
			return nil, fmt.Errorf("scan product parameter: %w", err)
		}
		result[p.ProductInfoID] = append(result[p.ProductInfoID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product parameters: %w", err)
	}

	return result, nil
}
