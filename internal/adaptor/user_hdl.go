package adaptor

import (
	"net/http"

	"retail-backend/internal/dto/request"
	"retail-backend/internal/usecase"
	"retail-backend/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetDetails handles GET /api/v1/user/details
func (h *UserHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}

// UpdateDetails handles POST /api/v1/user/details
func (h *UserHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	var req request.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.UpdateProfile(r.Context(), userID, &req); err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, nil)
}

// ListContacts handles GET /api/v1/user/contact
func (h *UserHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	contacts, err := h.service.ListContacts(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list contacts")
		return
	}

	utils.WriteJSON(w, http.StatusOK, contacts)
}

// CreateContact handles POST /api/v1/user/contact
func (h *UserHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	var req request.CreateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contact, err := h.service.CreateContact(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create contact")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"Contact": contact})
}

// UpdateContact handles PUT /api/v1/user/contact
func (h *UserHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	var req request.UpdateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.UpdateContact(r.Context(), userID, &req); err != nil {
		handleServiceError(w, h.log, err, "update contact")
		return
	}

	utils.ResponseSuccess(w, nil)
}

// DeleteContacts handles DELETE /api/v1/user/contact
func (h *UserHandler) DeleteContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	var req request.DeleteItemsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deleted, err := h.service.DeleteContacts(r.Context(), userID, req.Items)
	if err != nil {
		handleServiceError(w, h.log, err, "delete contacts")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"Deleted": deleted})
}
