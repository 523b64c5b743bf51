package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"retail-backend/internal/usecase"
	"retail-backend/pkg/utils"

	"go.uber.org/zap"
)

// decodeAndValidate answers 400 for malformed JSON and 403 for invalid fields.
// It reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseForbidden(w, validationErrors)
		return false
	}

	return true
}

func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrInvalidConfirmToken),
		errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInactiveAccount),
		errors.Is(err, usecase.ErrProductInfoNotFound),
		errors.Is(err, usecase.ErrBasketNotFound),
		errors.Is(err, usecase.ErrEmptyBasket),
		errors.Is(err, usecase.ErrContactNotFound),
		errors.Is(err, usecase.ErrShopNotFound),
		errors.Is(err, usecase.ErrPriceList):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseFailure(w, err.Error())

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrInvalidIDs):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w)
	}
}
