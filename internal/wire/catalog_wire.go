package wire

import (
	"retail-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Get("/shops", catalogHandler.ListShops)
	r.Get("/categories", catalogHandler.ListCategories)
	r.Get("/products", catalogHandler.ListProducts)
}
