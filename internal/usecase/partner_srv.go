package usecase

import (
	"context"
	"fmt"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/data/repository"
	"retail-backend/internal/dto/response"
	"retail-backend/internal/pricelist"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PartnerService interface {
	ImportPriceList(ctx context.Context, userID uuid.UUID, url string) error
	GetState(ctx context.Context, userID uuid.UUID) (*response.ShopResponse, error)
	SetState(ctx context.Context, userID uuid.UUID, enabled bool) (*response.ShopResponse, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)
}

type partnerService struct {
	repo   *repository.Repository
	tx     repository.Transactor
	source pricelist.Source
	log    *zap.Logger
}

func NewPartnerService(
	repo *repository.Repository,
	tx repository.Transactor,
	source pricelist.Source,
	log *zap.Logger,
) PartnerService {
	return &partnerService{
		repo:   repo,
		tx:     tx,
		source: source,
		log:    log.With(zap.String("service", "partner")),
	}
}

// ImportPriceList replaces the caller's catalog with the document at url.
func (s *partnerService) ImportPriceList(ctx context.Context, userID uuid.UUID, url string) error {
	// 1. Download
	data, err := s.source.Fetch(ctx, url)
	if err != nil {
		s.log.Warn("Price list fetch failed", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPriceList, err)
	}

	// 2. Parse and validate before touching the database
	doc, err := pricelist.Parse(data)
	if err != nil {
		s.log.Warn("Price list parse failed", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPriceList, err)
	}

	// 3. Import in a single transaction
	var shopID int64
	err = s.tx.WithinTx(ctx, func(repos *repository.Repository) error {
		id, err := importDocument(ctx, repos, userID, url, doc)
		shopID = id
		return err
	})
	if err != nil {
		return fmt.Errorf("import price list: %w", err)
	}

	s.log.Info("Price list imported",
		zap.String("user_id", userID.String()),
		zap.Int64("shop_id", shopID),
		zap.Int("categories", len(doc.Categories)),
		zap.Int("goods", len(doc.Goods)),
	)
	return nil
}

func importDocument(ctx context.Context, repos *repository.Repository, userID uuid.UUID, url string, doc *pricelist.Document) (int64, error) {
	shop := &entity.Shop{Name: doc.Shop, URL: url, UserID: userID}
	if err := repos.Shop.Upsert(ctx, shop); err != nil {
		return 0, err
	}

	for _, c := range doc.Categories {
		if err := repos.Category.Upsert(ctx, &entity.Category{ID: c.ID, Name: c.Name}); err != nil {
			return 0, err
		}
		if err := repos.Category.LinkShop(ctx, shop.ID, c.ID); err != nil {
			return 0, err
		}
	}

	parameterIDs := make(map[string]int64)
	for _, g := range doc.Goods {
		product := &entity.Product{Name: g.Name, CategoryID: g.Category}
		if err := repos.Product.UpsertProduct(ctx, product); err != nil {
			return 0, err
		}

		info := &entity.ProductInfo{
			ProductID:  product.ID,
			ShopID:     shop.ID,
			ExternalID: g.ID,
			Model:      g.Model,
			Quantity:   g.Quantity,
			Price:      g.Price,
			PriceRRC:   g.PriceRRC,
		}
		if err := repos.Product.UpsertInfo(ctx, info); err != nil {
			return 0, err
		}

		values := make([]repository.ParameterValue, 0, len(g.Parameters))
		for _, p := range g.Parameters {
			id, ok := parameterIDs[p.Name]
			if !ok {
				var err error
				id, err = repos.Product.UpsertParameter(ctx, p.Name)
				if err != nil {
					return 0, err
				}
				parameterIDs[p.Name] = id
			}
			values = append(values, repository.ParameterValue{ParameterID: id, Value: p.Value})
		}
		if err := repos.Product.ReplaceParameters(ctx, info.ID, values); err != nil {
			return 0, err
		}
	}

	if _, err := repos.Product.DeleteStaleInfos(ctx, shop.ID, doc.ExternalIDs()); err != nil {
		return 0, err
	}

	return shop.ID, nil
}

func (s *partnerService) GetState(ctx context.Context, userID uuid.UUID) (*response.ShopResponse, error) {
	shop, err := s.repo.Shop.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find shop: %w", err)
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *partnerService) SetState(ctx context.Context, userID uuid.UUID, enabled bool) (*response.ShopResponse, error) {
	shop, err := s.repo.Shop.UpdateState(ctx, userID, enabled)
	if err != nil {
		return nil, fmt.Errorf("update shop state: %w", err)
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	s.log.Info("Shop state changed",
		zap.Int64("shop_id", shop.ID),
		zap.Bool("state", shop.State))

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *partnerService) ListOrders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	shop, err := s.repo.Shop.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find shop: %w", err)
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	orders, err := s.repo.Order.FindByShop(ctx, shop.ID)
	if err != nil {
		return nil, fmt.Errorf("find shop orders: %w", err)
	}

	views, err := buildOrderViews(ctx, s.repo, orders, &shop.ID)
	if err != nil {
		return nil, err
	}

	return response.OrdersToResponse(views), nil
}
