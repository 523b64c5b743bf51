package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/data/repository"
	"retail-backend/internal/dto/request"
	"retail-backend/pkg/mailer"
	"retail-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientMeta describes where a login came from.
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	ConfirmEmail(ctx context.Context, req *request.ConfirmEmailRequest) error
	Login(ctx context.Context, req *request.LoginRequest, meta ClientMeta) (string, error)
	Logout(ctx context.Context, sessionToken uuid.UUID) error
}

type authService struct {
	repo   *repository.Repository
	tx     repository.Transactor
	tokens *utils.TokenManager
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tx repository.Transactor,
	tokens *utils.TokenManager,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tx:     tx,
		tokens: tokens,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates an inactive account and mails its confirmation key.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	// 1. Email must be free
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	// 2. Hash password and draw the confirmation key
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	key, err := utils.GenerateConfirmKey()
	if err != nil {
		return fmt.Errorf("generate confirm key: %w", err)
	}

	// 3. Build the inactive user and its token
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashedPassword,
		Type:         entity.AccountCustomer,
		Company:      req.Company,
		Position:     req.Position,
		IsActive:     false,
	}
	token := &entity.ConfirmEmailToken{
		BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: now},
		UserID:     user.ID,
		Key:        key,
	}

	// 4. Persist both or neither
	err = s.tx.WithinTx(ctx, func(repos *repository.Repository) error {
		if err := repos.User.Create(ctx, user); err != nil {
			return err
		}
		return repos.Token.Create(ctx, token)
	})
	if repository.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	// 5. Mail the key; a delivery failure does not undo the account
	body := fmt.Sprintf("Your confirmation key: %s", key)
	if err := s.mail.Send(ctx, user.Email, "Confirm your email", body); err != nil {
		s.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

// ConfirmEmail activates the account owning key and consumes the key.
func (s *authService) ConfirmEmail(ctx context.Context, req *request.ConfirmEmailRequest) error {
	err := s.tx.WithinTx(ctx, func(repos *repository.Repository) error {
		token, err := repos.Token.FindByEmailAndKey(ctx, req.Email, req.Token)
		if err != nil {
			return err
		}
		if token == nil {
			return ErrInvalidConfirmToken
		}

		user, err := repos.User.FindByID(ctx, token.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrInvalidConfirmToken
		}

		user.IsActive = true
		user.UpdatedAt = time.Now()
		if err := repos.User.Update(ctx, user); err != nil {
			return err
		}

		// A concurrent confirmation already consumed the token.
		err = repos.Token.Delete(ctx, token.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidConfirmToken
		}
		return err
	})
	if errors.Is(err, ErrInvalidConfirmToken) {
		s.log.Warn("Confirmation with wrong key", zap.String("email", req.Email))
		return err
	}
	if err != nil {
		return fmt.Errorf("confirm email: %w", err)
	}

	s.log.Info("Email confirmed", zap.String("email", req.Email))
	return nil
}

// Login opens a session and returns a signed token bound to it.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta ClientMeta) (string, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return "", ErrInvalidCredentials
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return "", ErrInactiveAccount
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: now},
		UserID:     user.ID,
		Token:      utils.GenerateSessionToken(),
		ExpiresAt:  now.Add(s.tokens.TTL()),
	}
	if meta.UserAgent != "" {
		session.UserAgent = &meta.UserAgent
	}
	if meta.IPAddress != "" {
		session.IPAddress = &meta.IPAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	signed, err := s.tokens.Issue(user.ID, session.Token, session.ExpiresAt)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return signed, nil
}

func (s *authService) Logout(ctx context.Context, sessionToken uuid.UUID) error {
	err := s.repo.Session.Revoke(ctx, sessionToken)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}
