package adaptor

import (
	"retail-backend/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Catalog *CatalogHandler
	Partner *PartnerHandler
	Basket  *BasketHandler
	Order   *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Partner: NewPartnerHandler(service.Partner, log),
		Basket:  NewBasketHandler(service.Basket, log),
		Order:   NewOrderHandler(service.Order, log),
	}
}
