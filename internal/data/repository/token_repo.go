package repository

import (
	"context"
	"errors"
	"fmt"

	"retail-backend/internal/data/entity"
	"retail-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TokenRepository interface {
	Create(ctx context.Context, token *entity.ConfirmEmailToken) error
	FindByEmailAndKey(ctx context.Context, email, key string) (*entity.ConfirmEmailToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tokenRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewTokenRepository(db database.DBTX, log *zap.Logger) TokenRepository {
	return &tokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "confirm_token")),
	}
}

func (r *tokenRepository) Create(ctx context.Context, token *entity.ConfirmEmailToken) error {
	query := `
		INSERT INTO confirm_email_tokens (id, user_id, key, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, token.ID, token.UserID, token.Key, token.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create confirm token",
			zap.Error(err),
			zap.String("user_id", token.UserID.String()),
		)
		return fmt.Errorf("create confirm token for %s: %w", token.UserID.String(), err)
	}

	return nil
}

// FindByEmailAndKey returns the token only when key belongs to the user with email.
// The token row stays locked until the surrounding transaction ends.
func (r *tokenRepository) FindByEmailAndKey(ctx context.Context, email, key string) (*entity.ConfirmEmailToken, error) {
	query := `
		SELECT t.id, t.user_id, t.key, t.created_at
		FROM confirm_email_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE LOWER(u.email) = LOWER($1)
		  AND t.key = $2
		  AND u.deleted_at IS NULL
		FOR UPDATE OF t
	`

	var token entity.ConfirmEmailToken
	err := r.db.QueryRow(ctx, query, email, key).Scan(
		&token.ID,
		&token.UserID,
		&token.Key,
		&token.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find confirm token",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find confirm token for %s: %w", email, err)
	}

	return &token, nil
}

func (r *tokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM confirm_email_tokens WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete confirm token",
			zap.Error(err),
			zap.String("token_id", id.String()),
		)
		return fmt.Errorf("delete confirm token %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("confirm token %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
