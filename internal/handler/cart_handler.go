package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chaibisket/internal/service"
	"chaibisket/pkg/logger"
)

// CartHandler exposes the cart mutations and totals.
type CartHandler struct {
	cartService service.CartServiceInterface
	logger      *logger.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService service.CartServiceInterface, log *logger.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      log.WithComponent("cart_handler"),
	}
}

type addItemRequest struct {
	ProductID int `json:"product_id"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /api/v1/cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cartService.GetCart(r.Context())

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]interface{}{
		"lines":      cart.Lines,
		"item_count": cart.ItemCount(),
	})
}

// AddItem handles POST /api/v1/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for add item", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.cartService.AddItem(r.Context(), req.ProductID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusCreated, map[string]interface{}{
		"lines":      cart.Lines,
		"item_count": cart.ItemCount(),
	})
}

// SetQuantity handles PUT /api/v1/cart/items/{id}.
// A quantity below 1 removes the line.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, err := h.itemID(r)
	if err != nil {
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req setQuantityRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for set quantity", "error", err)
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.cartService.SetQuantity(r.Context(), itemID, req.Quantity)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]interface{}{
		"lines":      cart.Lines,
		"item_count": cart.ItemCount(),
	})
}

// RemoveItem handles DELETE /api/v1/cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := h.itemID(r)
	if err != nil {
		writeErrorResponse(w, h.logger, http.StatusBadRequest, "Invalid item ID")
		return
	}

	cart, err := h.cartService.RemoveItem(r.Context(), itemID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]interface{}{
		"lines":      cart.Lines,
		"item_count": cart.ItemCount(),
	})
}

// Clear handles DELETE /api/v1/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.Clear(r.Context()); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

// Totals handles GET /api/v1/cart/total.
func (h *CartHandler) Totals(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, h.logger, http.StatusOK, h.cartService.Totals(r.Context()))
}

func (h *CartHandler) itemID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
