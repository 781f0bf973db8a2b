package handler

import (
	"net/http"

	"chaibisket/internal/service"
	"chaibisket/pkg/logger"
)

// AccountHandler covers signup, login, logout and profile maintenance.
type AccountHandler struct {
	accountService service.AccountServiceInterface
	orderService   service.OrderServiceInterface
	logger         *logger.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService service.AccountServiceInterface, orderService service.OrderServiceInterface, log *logger.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		orderService:   orderService,
		logger:         log.WithComponent("account_handler"),
	}
}

// Signup handles POST /api/v1/auth/signup.
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for signup", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.accountService.Signup(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Account created", "email", session.Email)
	writeJSONResponse(w, h.logger, http.StatusCreated, session)
}

// Login handles POST /api/v1/auth/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for login", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.accountService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, session)
}

// Logout handles POST /api/v1/auth/logout.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accountService.Logout(r.Context()); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Profile handles GET /api/v1/profile.
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	session, err := h.accountService.CurrentSession(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, session)
}

// UpdateProfile handles PUT /api/v1/profile.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateProfileRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for profile update", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.accountService.UpdateProfile(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, session)
}

// ChangePassword handles PUT /api/v1/profile/password.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req service.ChangePasswordRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for password change", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.accountService.ChangePassword(r.Context(), req); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]string{"message": "Password updated"})
}

// Summary handles GET /api/v1/profile/summary.
func (h *AccountHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.orderService.Summary(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, summary)
}
