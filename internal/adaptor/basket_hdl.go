package adaptor

import (
	"net/http"

	"retail-backend/internal/dto/request"
	"retail-backend/internal/usecase"
	"retail-backend/pkg/utils"

	"go.uber.org/zap"
)

type BasketHandler struct {
	service usecase.BasketService
	log     *zap.Logger
}

func NewBasketHandler(service usecase.BasketService, log *zap.Logger) *BasketHandler {
	return &BasketHandler{
		service: service,
		log:     log.With(zap.String("handler", "basket")),
	}
}

// Get handles GET /api/v1/basket
func (h *BasketHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	baskets, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get basket")
		return
	}

	utils.WriteJSON(w, http.StatusOK, baskets)
}

// AddItems handles POST /api/v1/basket
func (h *BasketHandler) AddItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	var req request.BasketAddRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.AddItems(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add basket items")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"Created": created})
}

// UpdateItems handles PUT /api/v1/basket
func (h *BasketHandler) UpdateItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	var req request.BasketUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.service.UpdateItems(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update basket items")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"Updated": updated})
}

// DeleteItems handles DELETE /api/v1/basket
func (h *BasketHandler) DeleteItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	var req request.DeleteItemsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deleted, err := h.service.DeleteItems(r.Context(), userID, req.Items)
	if err != nil {
		handleServiceError(w, h.log, err, "delete basket items")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"Deleted": deleted})
}
