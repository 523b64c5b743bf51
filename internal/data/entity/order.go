package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderState string

const (
	OrderStateBasket    OrderState = "basket"
	OrderStateNew       OrderState = "new"
	OrderStateConfirmed OrderState = "confirmed"
	OrderStateAssembled OrderState = "assembled"
	OrderStateSent      OrderState = "sent"
	OrderStateDelivered OrderState = "delivered"
	OrderStateCanceled  OrderState = "canceled"
)

type Order struct {
	ID        int64      `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	State     OrderState `db:"state"`
	ContactID *int64     `db:"contact_id"`
	CreatedAt time.Time  `db:"created_at"`
}

type OrderItem struct {
	ID            int64 `db:"id"`
	OrderID       int64 `db:"order_id"`
	ProductInfoID int64 `db:"product_info_id"`
	Quantity      int   `db:"quantity"`
}

// OrderItemView is an order item with the offer it refers to.
type OrderItemView struct {
	OrderItem
	Offer ProductInfoView
}

// OrderView is an order with its items and the sum of price*quantity.
type OrderView struct {
	Order
	Items    []OrderItemView
	TotalSum int64
}
