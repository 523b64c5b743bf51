package usecase

import (
	"retail-backend/internal/data/repository"
	"retail-backend/internal/pricelist"
	"retail-backend/pkg/mailer"
	"retail-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Catalog CatalogService
	Partner PartnerService
	Basket  BasketService
	Order   OrderService
}

func NewService(
	repo *repository.Repository,
	tokens *utils.TokenManager,
	mail mailer.Mailer,
	source pricelist.Source,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, repo, tokens, mail, log),
		User:    NewUserService(repo, repo, log),
		Catalog: NewCatalogService(repo, log),
		Partner: NewPartnerService(repo, repo, source, log),
		Basket:  NewBasketService(repo, repo, log),
		Order:   NewOrderService(repo, repo, mail, log),
	}
}
