package request

type ProductQuery struct {
	ShopID     *int64
	CategoryID *int64
	PaginatedRequest
}
