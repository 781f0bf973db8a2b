package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"chaibisket/internal/service"
	"chaibisket/models"
	"chaibisket/pkg/logger"
)

// writeJSONResponse writes a JSON response with the given status code.
func writeJSONResponse(w http.ResponseWriter, log *logger.Logger, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// writeErrorResponse writes an error response with the given status code.
func writeErrorResponse(w http.ResponseWriter, log *logger.Logger, statusCode int, message string) {
	writeJSONResponse(w, log, statusCode, map[string]string{"error": message})
}

// parseRequestBody parses a JSON request body into the target struct,
// rejecting unknown fields.
func parseRequestBody(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

// writeServiceError maps domain errors onto HTTP responses. Checkout
// guard errors carry the redirect the storefront should follow.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		fields := map[string]string{}
		for _, f := range verr.Fields {
			fields[f.Field] = f.Message
		}
		writeJSONResponse(w, log, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": fields,
		})
		return
	}

	switch {
	case errors.Is(err, models.ErrLoginRequired):
		writeJSONResponse(w, log, http.StatusUnauthorized, map[string]string{
			"error":    err.Error(),
			"redirect": "/login?returnUrl=/checkout",
		})
	case errors.Is(err, models.ErrEmptyCart):
		writeJSONResponse(w, log, http.StatusConflict, map[string]string{
			"error":    err.Error(),
			"redirect": "/cart",
		})
	case errors.Is(err, models.ErrNoSession):
		writeErrorResponse(w, log, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		writeErrorResponse(w, log, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrDuplicateAccount):
		writeJSONResponse(w, log, http.StatusConflict, map[string]interface{}{
			"error":  err.Error(),
			"fields": map[string]string{"email": err.Error()},
		})
	case errors.Is(err, models.ErrItemNotFound):
		writeErrorResponse(w, log, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrCheckoutNotStarted):
		writeErrorResponse(w, log, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrCheckoutPlaced):
		writeErrorResponse(w, log, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrMissingContactFields):
		writeErrorResponse(w, log, http.StatusBadRequest, err.Error())
	default:
		writeErrorResponse(w, log, http.StatusInternalServerError, err.Error())
	}
}
