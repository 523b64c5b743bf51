package adaptor

import (
	"net/http"

	"retail-backend/internal/dto/request"
	"retail-backend/internal/usecase"
	"retail-backend/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// List handles GET /api/v1/order
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	orders, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list orders")
		return
	}

	utils.WriteJSON(w, http.StatusOK, orders)
}

// Place handles POST /api/v1/order
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	var req request.PlaceOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.Place(r.Context(), userID, &req); err != nil {
		handleServiceError(w, h.log, err, "place order")
		return
	}

	h.log.Info("Order placed", zap.String("user_id", userID.String()), zap.Int64("order_id", req.ID))
	utils.ResponseSuccess(w, nil)
}
