package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	AccountTypeKey contextKey = "account_type"
	TokenKey       contextKey = "token"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userID, ok := userIDVal.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetAccountTypeFromContext(ctx context.Context) (string, bool) {
	typeVal := ctx.Value(AccountTypeKey)
	if typeVal == nil {
		return "", false
	}

	accountType, ok := typeVal.(string)
	return accountType, ok
}

func SetUserContext(ctx context.Context, userID uuid.UUID, accountType string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, AccountTypeKey, accountType)
	return ctx
}

// GetTokenFromContext returns the session token the request was authenticated with.
func GetTokenFromContext(ctx context.Context) (uuid.UUID, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return uuid.Nil, false
	}

	token, ok := tokenVal.(uuid.UUID)
	return token, ok
}

func SetTokenContext(ctx context.Context, token uuid.UUID) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
