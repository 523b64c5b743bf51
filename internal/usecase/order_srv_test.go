package usecase

import (
	"context"
	"testing"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderService_Place(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	req := &request.PlaceOrderRequest{ID: 11, Contact: 3}

	t.Run("Success", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		mail := new(MockMailer)
		svc := NewOrderService(repo, tx, mail, zap.NewNop())

		m.Order.On("FindByIDForUser", ctx, int64(11), userID).
			Return(&entity.Order{ID: 11, UserID: userID, State: entity.OrderStateBasket}, nil)
		m.Order.On("CountItems", ctx, int64(11)).Return(2, nil)
		m.Contact.On("FindByIDForUser", ctx, int64(3), userID).Return(&entity.Contact{ID: 3, UserID: userID}, nil)
		m.Order.On("UpdateStateAndContact", ctx, int64(11), entity.OrderStateNew, int64(3)).Return(nil)
		m.User.On("FindByID", ctx, userID).Return(&entity.User{Email: "test@gmail.com"}, nil)
		mail.On("Send", ctx, "test@gmail.com", "Order received", mock.AnythingOfType("string")).Return(nil)

		require.NoError(t, svc.Place(ctx, userID, req))
		m.Order.AssertExpectations(t)
		mail.AssertExpectations(t)
	})

	t.Run("EmptyBasket", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewOrderService(repo, tx, new(MockMailer), zap.NewNop())

		m.Order.On("FindByIDForUser", ctx, int64(11), userID).
			Return(&entity.Order{ID: 11, State: entity.OrderStateBasket}, nil)
		m.Order.On("CountItems", ctx, int64(11)).Return(0, nil)

		assert.ErrorIs(t, svc.Place(ctx, userID, req), ErrEmptyBasket)
	})

	t.Run("AlreadyPlaced", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewOrderService(repo, tx, new(MockMailer), zap.NewNop())

		m.Order.On("FindByIDForUser", ctx, int64(11), userID).
			Return(&entity.Order{ID: 11, State: entity.OrderStateNew}, nil)

		assert.ErrorIs(t, svc.Place(ctx, userID, req), ErrBasketNotFound)
	})

	t.Run("ForeignContact", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewOrderService(repo, tx, new(MockMailer), zap.NewNop())

		m.Order.On("FindByIDForUser", ctx, int64(11), userID).
			Return(&entity.Order{ID: 11, State: entity.OrderStateBasket}, nil)
		m.Order.On("CountItems", ctx, int64(11)).Return(1, nil)
		m.Contact.On("FindByIDForUser", ctx, int64(3), userID).Return(nil, nil)

		assert.ErrorIs(t, svc.Place(ctx, userID, req), ErrContactNotFound)
		m.Order.AssertNotCalled(t, "UpdateStateAndContact", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	m, repo, tx := newMockRepos()
	svc := NewOrderService(repo, tx, new(MockMailer), zap.NewNop())

	m.Order.On("FindByUser", ctx, userID).Return([]entity.Order{}, nil)

	orders, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
	m.Order.AssertNotCalled(t, "FindItems", mock.Anything, mock.Anything, mock.Anything)
}
