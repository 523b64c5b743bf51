package adaptor

import (
	"net/http"
	"strconv"

	"retail-backend/internal/dto/request"
	"retail-backend/internal/usecase"
	"retail-backend/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListShops handles GET /api/v1/shops
func (h *CatalogHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.ListShops(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list shops")
		return
	}

	utils.WriteJSON(w, http.StatusOK, shops)
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list categories")
		return
	}

	utils.WriteJSON(w, http.StatusOK, categories)
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	errs := map[string]string{}

	req := &request.ProductQuery{
		ShopID:     parseOptionalID(query.Get("shop_id"), "shop_id", errs),
		CategoryID: parseOptionalID(query.Get("category_id"), "category_id", errs),
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 0),
		},
	}
	if len(errs) > 0 {
		utils.ResponseForbidden(w, errs)
		return
	}

	products, err := h.service.ListProducts(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.WriteJSON(w, http.StatusOK, products)
}

// parseOptionalID returns nil for an empty value and records a message in errs
// when the value is not a positive integer.
func parseOptionalID(value, field string, errs map[string]string) *int64 {
	if value == "" {
		return nil
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		errs[field] = field + " must be a positive integer"
		return nil
	}
	return &id
}
