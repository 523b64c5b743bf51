package adaptor

import (
	"net"
	"net/http"

	"retail-backend/internal/dto/request"
	"retail-backend/internal/usecase"
	"retail-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/v1/user/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, nil)
}

// ConfirmEmail handles POST /api/v1/user/register/confirm
func (h *AuthHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ConfirmEmail(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "confirm email")
		return
	}

	utils.ResponseSuccess(w, nil)
}

// Login handles POST /api/v1/user/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	meta := usecase.ClientMeta{UserAgent: r.UserAgent(), IPAddress: remoteIP(r)}
	token, err := h.service.Login(r.Context(), &req, meta)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"Token": token})
}

// Logout handles POST /api/v1/user/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Log in required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, nil)
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
