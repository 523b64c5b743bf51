package request

type PlaceOrderRequest struct {
	ID      int64 `json:"id" validate:"required,min=1"`
	Contact int64 `json:"contact" validate:"required,min=1"`
}
