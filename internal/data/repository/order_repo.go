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

type OrderRepository interface {
	// Basket
	FindBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
	GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
	UpsertItem(ctx context.Context, orderID, productInfoID int64, quantity int) error
	UpdateItemQuantity(ctx context.Context, orderID, itemID int64, quantity int) (int64, error)
	DeleteItems(ctx context.Context, orderID int64, itemIDs []int64) (int64, error)
	CountItems(ctx context.Context, orderID int64) (int, error)

	// Orders
	FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Order, error)
	UpdateStateAndContact(ctx context.Context, id int64, state entity.OrderState, contactID int64) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)
	FindByShop(ctx context.Context, shopID int64) ([]entity.Order, error)
	FindItems(ctx context.Context, orderIDs []int64, shopID *int64) ([]entity.OrderItem, error)
}

type orderRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewOrderRepository(db database.DBTX, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, user_id, state, contact_id, created_at`

func scanOrder(row scanner) (*entity.Order, error) {
	var o entity.Order
	if err := row.Scan(&o.ID, &o.UserID, &o.State, &o.ContactID, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) FindBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 AND state = 'basket'
	`

	order, err := scanOrder(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find basket",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find basket of %s: %w", userID.String(), err)
	}

	return order, nil
}

// GetOrCreateBasket relies on the one-basket-per-user partial index.
func (r *orderRepository) GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	query := `
		INSERT INTO orders (user_id, state)
		VALUES ($1, 'basket')
		ON CONFLICT (user_id) WHERE state = 'basket'
		DO UPDATE SET state = orders.state
		RETURNING ` + orderColumns

	order, err := scanOrder(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		r.log.Error("Failed to get or create basket",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("get or create basket of %s: %w", userID.String(), err)
	}

	return order, nil
}

// UpsertItem adds an offer to the order or overwrites its quantity.
func (r *orderRepository) UpsertItem(ctx context.Context, orderID, productInfoID int64, quantity int) error {
	query := `
		INSERT INTO order_items (order_id, product_info_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id, product_info_id) DO UPDATE SET quantity = EXCLUDED.quantity
	`

	if _, err := r.db.Exec(ctx, query, orderID, productInfoID, quantity); err != nil {
		r.log.Error("Failed to upsert order item",
			zap.Error(err),
			zap.Int64("order_id", orderID),
			zap.Int64("product_info_id", productInfoID),
		)
		return fmt.Errorf("upsert item %d in order %d: %w", productInfoID, orderID, err)
	}

	return nil
}

func (r *orderRepository) UpdateItemQuantity(ctx context.Context, orderID, itemID int64, quantity int) (int64, error) {
	query := `
		UPDATE order_items
		SET quantity = $3
		WHERE order_id = $1 AND id = $2
	`

	result, err := r.db.Exec(ctx, query, orderID, itemID, quantity)
	if err != nil {
		r.log.Error("Failed to update order item",
			zap.Error(err),
			zap.Int64("order_id", orderID),
			zap.Int64("item_id", itemID),
		)
		return 0, fmt.Errorf("update item %d in order %d: %w", itemID, orderID, err)
	}

	return result.RowsAffected(), nil
}

func (r *orderRepository) DeleteItems(ctx context.Context, orderID int64, itemIDs []int64) (int64, error) {
	query := `DELETE FROM order_items WHERE order_id = $1 AND id = ANY($2)`

	result, err := r.db.Exec(ctx, query, orderID, itemIDs)
	if err != nil {
		r.log.Error("Failed to delete order items",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return 0, fmt.Errorf("delete items of order %d: %w", orderID, err)
	}

	return result.RowsAffected(), nil
}

func (r *orderRepository) CountItems(ctx context.Context, orderID int64) (int, error) {
	query := `SELECT COUNT(*) FROM order_items WHERE order_id = $1`

	var total int
	if err := r.db.QueryRow(ctx, query, orderID).Scan(&total); err != nil {
		r.log.Error("Failed to count order items",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return 0, fmt.Errorf("count items of order %d: %w", orderID, err)
	}

	return total, nil
}

func (r *orderRepository) FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1 AND user_id = $2
	`

	order, err := scanOrder(r.db.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("find order %d: %w", id, err)
	}

	return order, nil
}

func (r *orderRepository) UpdateStateAndContact(ctx context.Context, id int64, state entity.OrderState, contactID int64) error {
	query := `
		UPDATE orders
		SET state = $2, contact_id = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, state, contactID)
	if err != nil {
		r.log.Error("Failed to update order state",
			zap.Error(err),
			zap.Int64("order_id", id),
			zap.String("state", string(state)),
		)
		return fmt.Errorf("update order %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 AND state <> 'basket'
		ORDER BY created_at DESC, id DESC
	`

	orders, err := r.queryOrders(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find user orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders of %s: %w", userID.String(), err)
	}

	return orders, nil
}

// FindByShop lists placed orders containing at least one offer of the shop.
func (r *orderRepository) FindByShop(ctx context.Context, shopID int64) ([]entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.state <> 'basket'
		  AND EXISTS (
		      SELECT 1 FROM order_items oi
		      JOIN product_infos pi ON pi.id = oi.product_info_id
		      WHERE oi.order_id = o.id AND pi.shop_id = $1
		  )
		ORDER BY o.created_at DESC, o.id DESC
	`

	orders, err := r.queryOrders(ctx, query, shopID)
	if err != nil {
		r.log.Error("Failed to find shop orders",
			zap.Error(err),
			zap.Int64("shop_id", shopID),
		)
		return nil, fmt.Errorf("find orders of shop %d: %w", shopID, err)
	}

	return orders, nil
}

// FindItems returns the items of the given orders, limited to one shop when shopID is set.
func (r *orderRepository) FindItems(ctx context.Context, orderIDs []int64, shopID *int64) ([]entity.OrderItem, error) {
	if len(orderIDs) == 0 {
		return []entity.OrderItem{}, nil
	}

	query := `
		SELECT oi.id, oi.order_id, oi.product_info_id, oi.quantity
		FROM order_items oi
		JOIN product_infos pi ON pi.id = oi.product_info_id
		WHERE oi.order_id = ANY($1)
		  AND ($2::BIGINT IS NULL OR pi.shop_id = $2)
		ORDER BY oi.order_id, oi.id
	`

	rows, err := r.db.Query(ctx, query, orderIDs, shopID)
	if err != nil {
		r.log.Error("Failed to query order items", zap.Error(err))
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	items := make([]entity.OrderItem, 0)
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductInfoID, &item.Quantity); err != nil {
			r.log.Error("Failed to scan order item", zap.Error(err))
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}
