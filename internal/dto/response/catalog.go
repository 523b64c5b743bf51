package response

import (
	"retail-backend/internal/data/entity"
)

type ShopResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	State bool   `json:"state"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type ProductParameterResponse struct {
	Parameter string `json:"parameter"`
	Value     string `json:"value"`
}

type ProductInfoResponse struct {
	ID                int64                      `json:"id"`
	Model             string                     `json:"model"`
	ExternalID        int64                      `json:"external_id"`
	Product           ProductResponse            `json:"product"`
	Shop              int64                      `json:"shop"`
	ShopName          string                     `json:"shop_name"`
	Quantity          int                        `json:"quantity"`
	Price             int64                      `json:"price"`
	PriceRRC          int64                      `json:"price_rrc"`
	ProductParameters []ProductParameterResponse `json:"product_parameters"`
}

// Helper converters
func ShopToResponse(shop *entity.Shop) ShopResponse {
	return ShopResponse{
		ID:    shop.ID,
		Name:  shop.Name,
		State: shop.State,
	}
}

func ShopsToResponse(shops []entity.Shop) []ShopResponse {
	result := make([]ShopResponse, 0, len(shops))
	for i := range shops {
		result = append(result, ShopToResponse(&shops[i]))
	}
	return result
}

func CategoriesToResponse(categories []entity.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return result
}

func ProductInfoToResponse(info *entity.ProductInfoView) ProductInfoResponse {
	params := make([]ProductParameterResponse, 0, len(info.Parameters))
	for _, p := range info.Parameters {
		params = append(params, ProductParameterResponse{Parameter: p.Parameter, Value: p.Value})
	}

	return ProductInfoResponse{
		ID:         info.ID,
		Model:      info.Model,
		ExternalID: info.ExternalID,
		Product: ProductResponse{
			Name:     info.ProductName,
			Category: info.CategoryName,
		},
		Shop:              info.ShopID,
		ShopName:          info.ShopName,
		Quantity:          info.Quantity,
		Price:             info.Price,
		PriceRRC:          info.PriceRRC,
		ProductParameters: params,
	}
}

func ProductInfosToResponse(infos []entity.ProductInfoView) []ProductInfoResponse {
	result := make([]ProductInfoResponse, 0, len(infos))
	for i := range infos {
		result = append(result, ProductInfoToResponse(&infos[i]))
	}
	return result
}
