package handler

import (
	"net/http"
	"time"

	"chaibisket/internal/service"
	"chaibisket/models"
	"chaibisket/pkg/logger"
)

// MenuHandler serves the time-aware catalog.
type MenuHandler struct {
	menuService service.MenuServiceInterface
	logger      *logger.Logger
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menuService service.MenuServiceInterface, log *logger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      log.WithComponent("menu_handler"),
	}
}

// ListItems handles GET /api/v1/menu.
// Query parameters: window (defaults to the active window), category
// (defaults to All) and all=true to ignore the window entirely.
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	showAll := query.Get("all") == "true"
	category := query.Get("category")
	if category == "" {
		category = service.CategoryAll
	}

	var window models.Window
	if value := query.Get("window"); value != "" {
		parsed, err := h.menuService.ParseWindow(value)
		if err != nil {
			h.logger.Warn("Invalid menu window requested", "window", value)
			writeErrorResponse(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		window = parsed
	} else {
		// On-demand re-evaluation keeps the menu honest between ticks.
		window = h.menuService.Refresh(time.Now())
	}

	items := h.menuService.ListItems(window, category, showAll)

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]interface{}{
		"window":   window,
		"category": category,
		"show_all": showAll,
		"items":    items,
	})
}

// Windows handles GET /api/v1/menu/windows.
func (h *MenuHandler) Windows(w http.ResponseWriter, r *http.Request) {
	active := h.menuService.Refresh(time.Now())

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]interface{}{
		"active":  active,
		"windows": h.menuService.Windows(),
	})
}

// Categories handles GET /api/v1/menu/categories.
// The category list is derived from the items available in the window,
// so it changes as the window changes.
func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	var window models.Window
	if value := r.URL.Query().Get("window"); value != "" {
		parsed, err := h.menuService.ParseWindow(value)
		if err != nil {
			writeErrorResponse(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		window = parsed
	} else {
		window = h.menuService.Refresh(time.Now())
	}

	writeJSONResponse(w, h.logger, http.StatusOK, map[string]interface{}{
		"window":     window,
		"categories": h.menuService.Categories(window),
	})
}
