package usecase

import (
	"context"
	"fmt"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/data/repository"
	"retail-backend/internal/dto/request"
	"retail-backend/internal/dto/response"
	"retail-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BasketService interface {
	Get(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)
	AddItems(ctx context.Context, userID uuid.UUID, req *request.BasketAddRequest) (int, error)
	UpdateItems(ctx context.Context, userID uuid.UUID, req *request.BasketUpdateRequest) (int64, error)
	DeleteItems(ctx context.Context, userID uuid.UUID, items string) (int64, error)
}

type basketService struct {
	repo *repository.Repository
	tx   repository.Transactor
	log  *zap.Logger
}

func NewBasketService(repo *repository.Repository, tx repository.Transactor, log *zap.Logger) BasketService {
	return &basketService{
		repo: repo,
		tx:   tx,
		log:  log.With(zap.String("service", "basket")),
	}
}

// Get returns the caller's basket as a list holding zero or one entries.
func (s *basketService) Get(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	basket, err := s.repo.Order.FindBasket(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find basket: %w", err)
	}
	if basket == nil {
		return []response.OrderResponse{}, nil
	}

	views, err := buildOrderViews(ctx, s.repo, []entity.Order{*basket}, nil)
	if err != nil {
		return nil, err
	}

	return response.OrdersToResponse(views), nil
}

// AddItems creates the basket on first use. Items already in the basket get
// their quantity overwritten. The count covers created and updated items.
func (s *basketService) AddItems(ctx context.Context, userID uuid.UUID, req *request.BasketAddRequest) (int, error) {
	var count int
	err := s.tx.WithinTx(ctx, func(repos *repository.Repository) error {
		basket, err := repos.Order.GetOrCreateBasket(ctx, userID)
		if err != nil {
			return err
		}

		for _, item := range req.Items {
			info, err := repos.Product.FindInfoByID(ctx, item.ProductInfo)
			if err != nil {
				return err
			}
			if info == nil {
				return fmt.Errorf("%w: %d", ErrProductInfoNotFound, item.ProductInfo)
			}

			if err := repos.Order.UpsertItem(ctx, basket.ID, info.ID, item.Quantity); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("add basket items: %w", err)
	}

	s.log.Debug("Basket items added",
		zap.String("user_id", userID.String()),
		zap.Int("count", count))

	return count, nil
}

func (s *basketService) UpdateItems(ctx context.Context, userID uuid.UUID, req *request.BasketUpdateRequest) (int64, error) {
	var updated int64
	err := s.tx.WithinTx(ctx, func(repos *repository.Repository) error {
		basket, err := repos.Order.FindBasket(ctx, userID)
		if err != nil {
			return err
		}
		if basket == nil {
			return ErrBasketNotFound
		}

		for _, item := range req.Items {
			n, err := repos.Order.UpdateItemQuantity(ctx, basket.ID, item.ID, item.Quantity)
			if err != nil {
				return err
			}
			updated += n
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("update basket items: %w", err)
	}

	return updated, nil
}

func (s *basketService) DeleteItems(ctx context.Context, userID uuid.UUID, items string) (int64, error) {
	ids, ok := utils.ParseIDList(items)
	if !ok {
		return 0, ErrInvalidIDs
	}

	basket, err := s.repo.Order.FindBasket(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("find basket: %w", err)
	}
	if basket == nil {
		return 0, ErrBasketNotFound
	}

	deleted, err := s.repo.Order.DeleteItems(ctx, basket.ID, ids)
	if err != nil {
		return 0, fmt.Errorf("delete basket items: %w", err)
	}

	return deleted, nil
}
