package adaptor

import (
	"net/http"

	"retail-backend/internal/dto/request"
	"retail-backend/internal/usecase"
	"retail-backend/pkg/utils"

	"go.uber.org/zap"
)

// PartnerHandler serves the shop-only routes. ShopOnly runs in front of it.
type PartnerHandler struct {
	service usecase.PartnerService
	log     *zap.Logger
}

func NewPartnerHandler(service usecase.PartnerService, log *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		service: service,
		log:     log.With(zap.String("handler", "partner")),
	}
}

// Update handles POST /api/v1/partner/update
func (h *PartnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	var req request.PartnerUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ImportPriceList(r.Context(), userID, req.URL); err != nil {
		handleServiceError(w, h.log, err, "import price list")
		return
	}

	h.log.Info("Price list imported", zap.String("user_id", userID.String()), zap.String("url", req.URL))
	utils.ResponseSuccess(w, nil)
}

// GetState handles GET /api/v1/partner/state
func (h *PartnerHandler) GetState(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	shop, err := h.service.GetState(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get shop state")
		return
	}

	utils.WriteJSON(w, http.StatusOK, shop)
}

// SetState handles POST /api/v1/partner/state
func (h *PartnerHandler) SetState(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	var req request.PartnerStateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.service.SetState(r.Context(), userID, req.Enabled()); err != nil {
		handleServiceError(w, h.log, err, "set shop state")
		return
	}

	utils.ResponseSuccess(w, nil)
}

// ListOrders handles GET /api/v1/partner/orders
func (h *PartnerHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	orders, err := h.service.ListOrders(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list partner orders")
		return
	}

	utils.WriteJSON(w, http.StatusOK, orders)
}
