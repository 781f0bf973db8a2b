package handler

import (
	"net/http"

	"chaibisket/internal/service"
	"chaibisket/models"
	"chaibisket/pkg/logger"
)

// ContactHandler relays contact form submissions.
type ContactHandler struct {
	contactService service.ContactServiceInterface
	logger         *logger.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactServiceInterface, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         log.WithComponent("contact_handler"),
	}
}

// Submit handles POST /api/v1/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for contact submission", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.contactService.Send(r.Context(), req); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, models.ContactResponse{OK: true})
}
