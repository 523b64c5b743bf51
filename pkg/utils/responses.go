package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v as the JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// ResponseJSON writes a status envelope: {"Status": status, "Errors": errors, ...extra}.
func ResponseJSON(w http.ResponseWriter, code int, status bool, errors any, extra map[string]any) {
	body := make(map[string]any, len(extra)+2)
	for k, v := range extra {
		body[k] = v
	}
	body["Status"] = status
	if errors != nil {
		body["Errors"] = errors
	}

	WriteJSON(w, code, body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, extra map[string]any) {
	ResponseJSON(w, http.StatusOK, true, nil, extra)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, extra map[string]any) {
	ResponseJSON(w, http.StatusCreated, true, nil, extra)
}

// ------------- Error responses -------------

// returns 200 OK with Status false, used for business rule failures
func ResponseFailure(w http.ResponseWriter, errors any) {
	ResponseJSON(w, http.StatusOK, false, errors, nil)
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, errors any) {
	ResponseJSON(w, http.StatusBadRequest, false, errors, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, errors any) {
	ResponseJSON(w, http.StatusForbidden, false, errors, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusInternalServerError, false, "Internal server error", nil)
}
