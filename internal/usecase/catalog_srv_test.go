package usecase

import (
	"context"
	"errors"
	"testing"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/data/repository"
	"retail-backend/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()
	shopID := int64(1)

	t.Run("FiltersAndPaging", func(t *testing.T) {
		m, repo, _ := newMockRepos()
		svc := NewCatalogService(repo, zap.NewNop())

		infos := []entity.ProductInfoView{{
			ProductInfo:  entity.ProductInfo{ID: 5, ShopID: shopID, Price: 110000},
			ProductName:  "iPhone",
			CategoryName: "Smartphones",
			Parameters:   []entity.ProductParameter{{Parameter: "Color", Value: "gold"}},
		}}
		m.Product.On("FindInfos", ctx, repository.ProductFilter{ShopID: &shopID}, 100, 100).Return(infos, nil)

		resp, err := svc.ListProducts(ctx, &request.ProductQuery{
			ShopID:           &shopID,
			PaginatedRequest: request.PaginatedRequest{Page: 2, PerPage: 500},
		})
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "iPhone", resp[0].Product.Name)
		assert.Equal(t, "Smartphones", resp[0].Product.Category)
		assert.Equal(t, "gold", resp[0].ProductParameters[0].Value)
	})

	t.Run("Error", func(t *testing.T) {
		m, repo, _ := newMockRepos()
		svc := NewCatalogService(repo, zap.NewNop())

		m.Product.On("FindInfos", ctx, repository.ProductFilter{}, 0, 0).Return(nil, errors.New("db error"))

		_, err := svc.ListProducts(ctx, &request.ProductQuery{})
		assert.Error(t, err)
	})
}

func TestCatalogService_ListShopsAndCategories(t *testing.T) {
	ctx := context.Background()
	m, repo, _ := newMockRepos()
	svc := NewCatalogService(repo, zap.NewNop())

	m.Shop.On("FindActive", ctx).Return([]entity.Shop{{ID: 1, Name: "Svyaznoy", State: true}}, nil)
	m.Category.On("FindAll", ctx).Return([]entity.Category{{ID: 224, Name: "Smartphones"}}, nil)

	shops, err := svc.ListShops(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), shops[0].ID)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Smartphones", categories[0].Name)
}
