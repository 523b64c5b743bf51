package middleware

import (
	"net/http"
	"strings"

	"retail-backend/internal/data/entity"
	"retail-backend/internal/data/repository"
	"retail-backend/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession accepts "Bearer <jwt>" or "Token <jwt>", checks that the session
// behind the jwt is still live and that its user is active.
func AuthSession(
	tokens *utils.TokenManager,
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := extractToken(r.Header.Get("Authorization"))
			if !ok {
				utils.ResponseForbidden(w, "Log in required")
				return
			}

			userID, sessionToken, err := tokens.Parse(raw)
			if err != nil {
				logger.Warn("Rejected token", zap.Error(err))
				utils.ResponseForbidden(w, "Invalid token")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), sessionToken)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w)
				return
			}
			if session == nil || session.UserID != userID {
				logger.Warn("Invalid or expired session", zap.String("user_id", userID.String()))
				utils.ResponseForbidden(w, "Invalid or expired session")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w)
				return
			}
			if user == nil || !user.IsActive {
				utils.ResponseForbidden(w, "Account is not active")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Type))
			ctx = utils.SetTokenContext(ctx, sessionToken)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", false
	}
	if !strings.EqualFold(scheme, "Bearer") && !strings.EqualFold(scheme, "Token") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// ShopOnly re-reads the user so a type switch takes effect without a new login.
func ShopOnly(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseForbidden(w, "Log in required")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Shop check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w)
				return
			}

			if user == nil || user.Type != entity.AccountShop {
				logger.Warn("Shop check: non-shop access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Only for shops")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
