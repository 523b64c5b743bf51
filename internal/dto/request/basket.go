package request

type BasketAddItem struct {
	ProductInfo int64 `json:"product_info" validate:"required,min=1"`
	Quantity    int   `json:"quantity" validate:"required,min=1"`
}

type BasketAddRequest struct {
	Items []BasketAddItem `json:"items" validate:"required,min=1,dive"`
}

type BasketUpdateItem struct {
	ID       int64 `json:"id" validate:"required,min=1"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
}

type BasketUpdateRequest struct {
	Items []BasketUpdateItem `json:"items" validate:"required,min=1,dive"`
}
