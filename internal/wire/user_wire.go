package wire

import (
	"net/http"

	"retail-backend/internal/adaptor"
	"retail-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireUser(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	userHandler *adaptor.UserHandler,
	auth func(http.Handler) http.Handler,
	limiter *middleware.RateLimiter,
) {
	r.Route("/user", func(r chi.Router) {
		// Public, throttled per client IP.
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/register/confirm", authHandler.ConfirmEmail)
			r.Post("/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/logout", authHandler.Logout)

			r.Get("/details", userHandler.GetDetails)
			r.Post("/details", userHandler.UpdateDetails)

			r.Get("/contact", userHandler.ListContacts)
			r.Post("/contact", userHandler.CreateContact)
			r.Put("/contact", userHandler.UpdateContact)
			r.Delete("/contact", userHandler.DeleteContacts)
		})
	})
}
