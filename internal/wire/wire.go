package wire

import (
	"net/http"

	"retail-backend/internal/adaptor"
	"retail-backend/internal/data/repository"
	"retail-backend/internal/pricelist"
	"retail-backend/internal/usecase"
	"retail-backend/pkg/mailer"
	"retail-backend/pkg/middleware"
	"retail-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router and the background pieces the server drives.
type App struct {
	Router  *chi.Mux
	Limiter *middleware.RateLimiter
}

// Deps are the outbound collaborators built by the server command.
type Deps struct {
	Tokens *utils.TokenManager
	Mailer mailer.Mailer
	Source pricelist.Source
}

func Wiring(repo *repository.Repository, deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, deps.Tokens, deps.Mailer, deps.Source, logger)
	handler := adaptor.NewHandler(service, logger)
	limiter := middleware.NewRateLimiter(config.RateLimit, logger)

	router := setupRouter(handler, repo, deps.Tokens, limiter, logger)

	return &App{
		Router:  router,
		Limiter: limiter,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	limiter *middleware.RateLimiter,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	auth := middleware.AuthSession(tokens, repo.Session, repo.User, logger)

	r.Route("/api/v1", func(r chi.Router) {
		wireUser(r, handler.Auth, handler.User, auth, limiter)
		wireCatalog(r, handler.Catalog)
		wirePartner(r, handler.Partner, auth, middleware.ShopOnly(repo.User, logger))
		wireBasket(r, handler.Basket, handler.Order, auth)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, nil)
	})

	return r
}
