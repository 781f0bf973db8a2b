package handler

import (
	"net/http"

	"chaibisket/internal/service"
	"chaibisket/pkg/logger"
)

// OrderHandler serves the order history of the current session.
type OrderHandler struct {
	orderService service.OrderServiceInterface
	logger       *logger.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderServiceInterface, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       log.WithComponent("order_handler"),
	}
}

// History handles GET /api/v1/orders.
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.History(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}
