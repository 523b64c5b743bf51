package usecase

import (
	"context"
	"fmt"

	"retail-backend/internal/data/repository"
	"retail-backend/internal/dto/request"
	"retail-backend/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListShops(ctx context.Context) ([]response.ShopResponse, error)
	ListCategories(ctx context.Context) ([]response.CategoryResponse, error)
	ListProducts(ctx context.Context, query *request.ProductQuery) ([]response.ProductInfoResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListShops(ctx context.Context) ([]response.ShopResponse, error) {
	shops, err := s.repo.Shop.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	return response.ShopsToResponse(shops), nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return response.CategoriesToResponse(categories), nil
}

func (s *catalogService) ListProducts(ctx context.Context, query *request.ProductQuery) ([]response.ProductInfoResponse, error) {
	filter := repository.ProductFilter{
		ShopID:     query.ShopID,
		CategoryID: query.CategoryID,
	}

	infos, err := s.repo.Product.FindInfos(ctx, filter, query.Offset(), query.Limit())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	s.log.Debug("Products listed", zap.Int("count", len(infos)))
	return response.ProductInfosToResponse(infos), nil
}
