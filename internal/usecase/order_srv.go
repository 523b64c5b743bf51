package usecase

import (
	"context"
	"fmt"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/data/repository"
	"retail-backend/internal/dto/request"
	"retail-backend/internal/dto/response"
	"retail-backend/pkg/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	Place(ctx context.Context, userID uuid.UUID, req *request.PlaceOrderRequest) error
	List(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	tx   repository.Transactor
	mail mailer.Mailer
	log  *zap.Logger
}

func NewOrderService(
	repo *repository.Repository,
	tx repository.Transactor,
	mail mailer.Mailer,
	log *zap.Logger,
) OrderService {
	return &orderService{
		repo: repo,
		tx:   tx,
		mail: mail,
		log:  log.With(zap.String("service", "order")),
	}
}

// Place turns the caller's non-empty basket into a new order shipped to contact.
func (s *orderService) Place(ctx context.Context, userID uuid.UUID, req *request.PlaceOrderRequest) error {
	err := s.tx.WithinTx(ctx, func(repos *repository.Repository) error {
		// 1. The order must be the caller's basket
		order, err := repos.Order.FindByIDForUser(ctx, req.ID, userID)
		if err != nil {
			return err
		}
		if order == nil || order.State != entity.OrderStateBasket {
			return ErrBasketNotFound
		}

		// 2. with at least one item
		count, err := repos.Order.CountItems(ctx, order.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrEmptyBasket
		}

		// 3. shipped to one of the caller's contacts
		contact, err := repos.Contact.FindByIDForUser(ctx, req.Contact, userID)
		if err != nil {
			return err
		}
		if contact == nil {
			return ErrContactNotFound
		}

		return repos.Order.UpdateStateAndContact(ctx, order.ID, entity.OrderStateNew, contact.ID)
	})
	if err != nil {
		return fmt.Errorf("place order %d: %w", req.ID, err)
	}

	s.log.Info("Order placed",
		zap.String("user_id", userID.String()),
		zap.Int64("order_id", req.ID))

	s.notify(ctx, userID, req.ID)
	return nil
}

func (s *orderService) notify(ctx context.Context, userID uuid.UUID, orderID int64) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		s.log.Warn("Order notification skipped", zap.Int64("order_id", orderID), zap.Error(err))
		return
	}

	body := fmt.Sprintf("Your order #%d has been placed and is waiting for confirmation.", orderID)
	if err := s.mail.Send(ctx, user.Email, "Order received", body); err != nil {
		s.log.Error("Failed to send order notification",
			zap.Error(err),
			zap.Int64("order_id", orderID))
	}
}

// List returns the caller's placed orders, newest first.
func (s *orderService) List(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	views, err := buildOrderViews(ctx, s.repo, orders, nil)
	if err != nil {
		return nil, err
	}

	return response.OrdersToResponse(views), nil
}
