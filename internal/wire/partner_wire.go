package wire

import (
	"net/http"

	"retail-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wirePartner mounts the routes reserved for shop accounts.
func wirePartner(
	r chi.Router,
	partnerHandler *adaptor.PartnerHandler,
	auth func(http.Handler) http.Handler,
	shopOnly func(http.Handler) http.Handler,
) {
	r.With(auth, shopOnly).Route("/partner", func(r chi.Router) {
		r.Post("/update", partnerHandler.Update)
		r.Get("/state", partnerHandler.GetState)
		r.Post("/state", partnerHandler.SetState)
		r.Get("/orders", partnerHandler.ListOrders)
	})
}
