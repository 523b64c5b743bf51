package wire

import (
	"net/http"

	"retail-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBasket(
	r chi.Router,
	basketHandler *adaptor.BasketHandler,
	orderHandler *adaptor.OrderHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/basket", basketHandler.Get)
		r.Post("/basket", basketHandler.AddItems)
		r.Put("/basket", basketHandler.UpdateItems)
		r.Delete("/basket", basketHandler.DeleteItems)

		r.Get("/order", orderHandler.List)
		r.Post("/order", orderHandler.Place)
	})
}
