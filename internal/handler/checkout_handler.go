package handler

import (
	"net/http"

	"chaibisket/internal/service"
	"chaibisket/models"
	"chaibisket/pkg/logger"
)

// CheckoutHandler drives the four-step checkout flow.
type CheckoutHandler struct {
	checkoutService service.CheckoutServiceInterface
	logger          *logger.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService service.CheckoutServiceInterface, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          log.WithComponent("checkout_handler"),
	}
}

// Start handles POST /api/v1/checkout. Requires a logged-in session and
// a non-empty cart.
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	checkout, err := h.checkoutService.Start(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusCreated, checkoutResponse(checkout))
}

// Get handles GET /api/v1/checkout.
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	checkout, err := h.checkoutService.Get(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, checkoutResponse(checkout))
}

// SetDeliveryInfo handles PUT /api/v1/checkout/delivery.
func (h *CheckoutHandler) SetDeliveryInfo(w http.ResponseWriter, r *http.Request) {
	var info models.DeliveryInfo
	if err := parseRequestBody(r, &info); err != nil {
		h.logger.Warn("Invalid request body for delivery info", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	checkout, err := h.checkoutService.SetDeliveryInfo(r.Context(), info)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, checkoutResponse(checkout))
}

// Advance handles POST /api/v1/checkout/advance.
func (h *CheckoutHandler) Advance(w http.ResponseWriter, r *http.Request) {
	checkout, err := h.checkoutService.Advance(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, checkoutResponse(checkout))
}

// Back handles POST /api/v1/checkout/back.
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	checkout, err := h.checkoutService.Back(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, checkoutResponse(checkout))
}

// PlaceOrder handles POST /api/v1/checkout/place.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkoutService.PlaceOrder(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Order placed", "order_id", order.OrderID)
	writeJSONResponse(w, h.logger, http.StatusCreated, order)
}

func checkoutResponse(checkout *models.Checkout) map[string]interface{} {
	return map[string]interface{}{
		"step":           checkout.Step,
		"step_name":      checkout.Step.String(),
		"delivery_info":  checkout.DeliveryInfo,
		"payment_method": checkout.PaymentMethod,
	}
}
