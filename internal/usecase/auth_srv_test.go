package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/data/repository"
	"retail-backend/internal/dto/request"
	"retail-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTokens() *utils.TokenManager {
	return utils.NewTokenManager("test-secret", time.Hour, "retail-backend")
}

func registerRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		FirstName: "name",
		LastName:  "last_name",
		Email:     "test@gmail.com",
		Password:  "Password123?",
		Company:   "Company",
		Position:  "Position",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		mail := new(MockMailer)
		svc := NewAuthService(repo, tx, newTestTokens(), mail, zap.NewNop())

		var created *entity.User
		var key string
		m.User.On("FindByEmail", ctx, "test@gmail.com").Return(nil, nil)
		m.User.On("Create", ctx, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*entity.User) }).
			Return(nil)
		m.Token.On("Create", ctx, mock.AnythingOfType("*entity.ConfirmEmailToken")).
			Run(func(args mock.Arguments) { key = args.Get(1).(*entity.ConfirmEmailToken).Key }).
			Return(nil)
		mail.On("Send", ctx, "test@gmail.com", "Confirm your email", mock.AnythingOfType("string")).Return(nil)

		err := svc.Register(ctx, registerRequest())
		require.NoError(t, err)

		require.NotNil(t, created)
		assert.False(t, created.IsActive)
		assert.Equal(t, entity.AccountCustomer, created.Type)
		assert.NotEqual(t, "Password123?", created.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("Password123?", created.PasswordHash))
		assert.Len(t, key, 48)
		assert.Equal(t, 1, tx.calls)
		mail.AssertExpectations(t)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewAuthService(repo, tx, newTestTokens(), new(MockMailer), zap.NewNop())

		m.User.On("FindByEmail", ctx, "test@gmail.com").Return(&entity.User{Email: "test@gmail.com"}, nil)

		err := svc.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, ErrEmailTaken)
		m.User.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ConcurrentDuplicate", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewAuthService(repo, tx, newTestTokens(), new(MockMailer), zap.NewNop())

		m.User.On("FindByEmail", ctx, "test@gmail.com").Return(nil, nil)
		m.User.On("Create", ctx, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		err := svc.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("MailFailureIsNotFatal", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		mail := new(MockMailer)
		svc := NewAuthService(repo, tx, newTestTokens(), mail, zap.NewNop())

		m.User.On("FindByEmail", ctx, "test@gmail.com").Return(nil, nil)
		m.User.On("Create", ctx, mock.Anything).Return(nil)
		m.Token.On("Create", ctx, mock.Anything).Return(nil)
		mail.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		assert.NoError(t, svc.Register(ctx, registerRequest()))
	})
}

func TestAuthService_ConfirmEmail(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	token := &entity.ConfirmEmailToken{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		UserID:     userID,
		Key:        "right-key",
	}

	t.Run("WrongKey", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewAuthService(repo, tx, newTestTokens(), new(MockMailer), zap.NewNop())

		m.Token.On("FindByEmailAndKey", ctx, "test@gmail.com", "wrong_key").Return(nil, nil)

		err := svc.ConfirmEmail(ctx, &request.ConfirmEmailRequest{Email: "test@gmail.com", Token: "wrong_key"})
		assert.ErrorIs(t, err, ErrInvalidConfirmToken)
		m.User.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.Token.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewAuthService(repo, tx, newTestTokens(), new(MockMailer), zap.NewNop())

		user := &entity.User{Base: entity.Base{ID: userID}, Email: "test@gmail.com"}
		m.Token.On("FindByEmailAndKey", ctx, "test@gmail.com", "right-key").Return(token, nil)
		m.User.On("FindByID", ctx, userID).Return(user, nil)
		m.User.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool { return u.IsActive })).Return(nil)
		m.Token.On("Delete", ctx, token.ID).Return(nil)

		err := svc.ConfirmEmail(ctx, &request.ConfirmEmailRequest{Email: "test@gmail.com", Token: "right-key"})
		require.NoError(t, err)
		m.User.AssertExpectations(t)
		m.Token.AssertExpectations(t)
	})

	t.Run("TokenConsumedConcurrently", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewAuthService(repo, tx, newTestTokens(), new(MockMailer), zap.NewNop())

		user := &entity.User{Base: entity.Base{ID: userID}, Email: "test@gmail.com"}
		m.Token.On("FindByEmailAndKey", ctx, "test@gmail.com", "right-key").Return(token, nil)
		m.User.On("FindByID", ctx, userID).Return(user, nil)
		m.User.On("Update", ctx, mock.Anything).Return(nil)
		m.Token.On("Delete", ctx, token.ID).Return(fmt.Errorf("confirm token: %w", repository.ErrNotFound))

		err := svc.ConfirmEmail(ctx, &request.ConfirmEmailRequest{Email: "test@gmail.com", Token: "right-key"})
		assert.ErrorIs(t, err, ErrInvalidConfirmToken)
	})

	t.Run("StorageError", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewAuthService(repo, tx, newTestTokens(), new(MockMailer), zap.NewNop())

		m.Token.On("FindByEmailAndKey", ctx, "test@gmail.com", "k").Return(nil, errors.New("db error"))

		err := svc.ConfirmEmail(ctx, &request.ConfirmEmailRequest{Email: "test@gmail.com", Token: "k"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidConfirmToken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("Password123?")
	require.NoError(t, err)

	activeUser := func() *entity.User {
		return &entity.User{
			Base:         entity.Base{ID: uuid.New()},
			Email:        "test@gmail.com",
			PasswordHash: hash,
			IsActive:     true,
		}
	}

	t.Run("Success", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		tokens := newTestTokens()
		svc := NewAuthService(repo, tx, tokens, new(MockMailer), zap.NewNop())

		user := activeUser()
		var session *entity.Session
		m.User.On("FindByEmail", ctx, "test@gmail.com").Return(user, nil)
		m.Session.On("Create", ctx, mock.AnythingOfType("*entity.Session")).
			Run(func(args mock.Arguments) { session = args.Get(1).(*entity.Session) }).
			Return(nil)

		signed, err := svc.Login(ctx, &request.LoginRequest{Email: "test@gmail.com", Password: "Password123?"},
			ClientMeta{UserAgent: "pytest", IPAddress: "127.0.0.1"})
		require.NoError(t, err)

		gotUser, gotSession, err := tokens.Parse(signed)
		require.NoError(t, err)
		assert.Equal(t, user.ID, gotUser)
		require.NotNil(t, session)
		assert.Equal(t, session.Token, gotSession)
		assert.Equal(t, "pytest", *session.UserAgent)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewAuthService(repo, tx, newTestTokens(), new(MockMailer), zap.NewNop())

		m.User.On("FindByEmail", ctx, "test@gmail.com").Return(activeUser(), nil)

		_, err := svc.Login(ctx, &request.LoginRequest{Email: "test@gmail.com", Password: "nope12345"}, ClientMeta{})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.Session.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewAuthService(repo, tx, newTestTokens(), new(MockMailer), zap.NewNop())

		m.User.On("FindByEmail", ctx, "ghost@gmail.com").Return(nil, nil)

		_, err := svc.Login(ctx, &request.LoginRequest{Email: "ghost@gmail.com", Password: "Password123?"}, ClientMeta{})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Inactive", func(t *testing.T) {
		m, repo, tx := newMockRepos()
		svc := NewAuthService(repo, tx, newTestTokens(), new(MockMailer), zap.NewNop())

		user := activeUser()
		user.IsActive = false
		m.User.On("FindByEmail", ctx, "test@gmail.com").Return(user, nil)

		_, err := svc.Login(ctx, &request.LoginRequest{Email: "test@gmail.com", Password: "Password123?"}, ClientMeta{})
		assert.ErrorIs(t, err, ErrInactiveAccount)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	token := uuid.New()

	m, repo, tx := newMockRepos()
	svc := NewAuthService(repo, tx, newTestTokens(), new(MockMailer), zap.NewNop())

	m.Session.On("Revoke", ctx, token).Return(repository.ErrNotFound).Once()
	assert.NoError(t, svc.Logout(ctx, token))

	m.Session.On("Revoke", ctx, token).Return(errors.New("db error")).Once()
	assert.Error(t, svc.Logout(ctx, token))
}
