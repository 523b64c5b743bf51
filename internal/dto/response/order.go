package response

import (
	"time"

	"retail-backend/internal/data/entity"
)

type OrderItemResponse struct {
	ID          int64               `json:"id"`
	ProductInfo ProductInfoResponse `json:"product_info"`
	Quantity    int                 `json:"quantity"`
}

type OrderResponse struct {
	ID           int64               `json:"id"`
	State        string              `json:"state"`
	Contact      *int64              `json:"contact"`
	CreatedAt    time.Time           `json:"dt"`
	OrderedItems []OrderItemResponse `json:"ordered_items"`
	TotalSum     int64               `json:"total_sum"`
}

// Helper converters
func OrderToResponse(order *entity.OrderView) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductInfo: ProductInfoToResponse(&item.Offer),
			Quantity:    item.Quantity,
		})
	}

	return OrderResponse{
		ID:           order.ID,
		State:        string(order.State),
		Contact:      order.ContactID,
		CreatedAt:    order.CreatedAt,
		OrderedItems: items,
		TotalSum:     order.TotalSum,
	}
}

func OrdersToResponse(orders []entity.OrderView) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, OrderToResponse(&orders[i]))
	}
	return result
}
