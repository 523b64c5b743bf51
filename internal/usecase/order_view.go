package usecase

import (
	"context"
	"fmt"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/data/repository"
)

// buildOrderViews attaches items and offers to orders and sums price*quantity.
// When shopID is set only that shop's items are included.
func buildOrderViews(ctx context.Context, repo *repository.Repository, orders []entity.Order, shopID *int64) ([]entity.OrderView, error) {
	views := make([]entity.OrderView, 0, len(orders))
	if len(orders) == 0 {
		return views, nil
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	items, err := repo.Order.FindItems(ctx, orderIDs, shopID)
	if err != nil {
		return nil, fmt.Errorf("find order items: %w", err)
	}

	infoIDs := make([]int64, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductInfoID]; ok {
			continue
		}
		seen[item.ProductInfoID] = struct{}{}
		infoIDs = append(infoIDs, item.ProductInfoID)
	}

	infos, err := repo.Product.FindInfosByIDs(ctx, infoIDs)
	if err != nil {
		return nil, fmt.Errorf("find offers: %w", err)
	}
	offers := make(map[int64]entity.ProductInfoView, len(infos))
	for _, info := range infos {
		offers[info.ID] = info
	}

	byOrder := make(map[int64][]entity.OrderItemView, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], entity.OrderItemView{
			OrderItem: item,
			Offer:     offers[item.ProductInfoID],
		})
	}

	for _, o := range orders {
		view := entity.OrderView{Order: o, Items: byOrder[o.ID]}
		if view.Items == nil {
			view.Items = []entity.OrderItemView{}
		}
		for _, item := range view.Items {
			view.TotalSum += item.Offer.Price * int64(item.Quantity)
		}
		views = append(views, view)
	}

	return views, nil
}
