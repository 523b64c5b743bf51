package entity

type Product struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	CategoryID int64  `db:"category_id"`
}

// ProductInfo is a shop's offer of a product.
type ProductInfo struct {
	ID         int64  `db:"id"`
	ProductID  int64  `db:"product_id"`
	ShopID     int64  `db:"shop_id"`
	ExternalID int64  `db:"external_id"`
	Model      string `db:"model"`
	Quantity   int    `db:"quantity"`
	Price      int64  `db:"price"`
	PriceRRC   int64  `db:"price_rrc"`
}

type ProductParameter struct {
	ProductInfoID int64  `db:"product_info_id"`
	Parameter     string `db:"name"`
	Value         string `db:"value"`
}

// ProductInfoView is a ProductInfo joined with its product, category and shop.
type ProductInfoView struct {
	ProductInfo
	ProductName  string
	CategoryName string
	ShopName     string
	Parameters   []ProductParameter
}
