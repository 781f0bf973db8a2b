package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"chaibisket/internal/repositories"
	"chaibisket/models"
	"chaibisket/pkg/logger"
)

// WindowRefreshInterval is how often the active window is re-evaluated
// against the wall clock, in addition to on-demand evaluation.
const WindowRefreshInterval = 60 * time.Second

// CategoryAll is the wildcard category filter.
const CategoryAll = "All"

// MenuServiceInterface resolves the active menu window and filters the
// catalog against it.
type MenuServiceInterface interface {
	ActiveWindow() models.Window
	Refresh(now time.Time) models.Window
	ListItems(window models.Window, category string, showAll bool) []models.MenuItem
	Categories(window models.Window) []string
	Windows() []models.WindowInfo
	ParseWindow(value string) (models.Window, error)
}

// MenuService owns the window-resolution state. The windows overlap;
// resolution is first-match in the fixed breakfast, lunch, snacks, dinner
// order, and a time outside every window retains the previous window.
type MenuService struct {
	menuRepo repositories.MenuRepositoryInterface
	logger   *logger.Logger

	mutex  sync.RWMutex
	active models.Window
}

// NewMenuService creates a menu service. The active window starts at
// breakfast until the first evaluation, mirroring the storefront default.
func NewMenuService(menuRepo repositories.MenuRepositoryInterface, log *logger.Logger) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		logger:   log.WithComponent("menu_service"),
		active:   models.WindowBreakfast,
	}
}

// ActiveWindow returns the currently active menu window.
func (s *MenuService) ActiveWindow() models.Window {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.active
}

// Refresh re-evaluates the active window against the given time and
// returns the result. No matching window (midnight to 8 AM) leaves the
// previous window active.
func (s *MenuService) Refresh(now time.Time) models.Window {
	minuteOfDay := now.Hour()*60 + now.Minute()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, window := range s.menuRepo.Windows() {
		if window.Contains(minuteOfDay) {
			if s.active != window.ID {
				s.logger.Info("Active menu window changed",
					"previous", s.active,
					"active", window.ID,
					"minute_of_day", minuteOfDay)
			}
			s.active = window.ID
			return s.active
		}
	}

	s.logger.Debug("No menu window matches, retaining previous",
		"active", s.active,
		"minute_of_day", minuteOfDay)
	return s.active
}

// StartClock re-evaluates the active window on a fixed interval until the
// context is cancelled.
func (s *MenuService) StartClock(ctx context.Context) {
	ticker := time.NewTicker(WindowRefreshInterval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Debug("Menu clock stopped")
				return
			case now := <-ticker.C:
				s.Refresh(now)
			}
		}
	}()
}

// ListItems filters the catalog. With showAll the window is ignored and
// only the category applies; otherwise an item must be available in the
// window and match the category (or category All).
func (s *MenuService) ListItems(window models.Window, category string, showAll bool) []models.MenuItem {
	items := []models.MenuItem{}

	for _, item := range s.menuRepo.GetAll() {
		if !showAll && !item.AvailableIn(window) {
			continue
		}
		if category != CategoryAll && category != "" && item.Category != category {
			continue
		}
		items = append(items, item)
	}

	return items
}

// Categories returns All plus the distinct categories present among the
// items available in the given window, in catalog order. The list changes
// as the window changes.
func (s *MenuService) Categories(window models.Window) []string {
	categories := []string{CategoryAll}
	seen := map[string]bool{}

	for _, item := range s.menuRepo.GetAll() {
		if !item.AvailableIn(window) {
			continue
		}
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}

	return categories
}

// Windows returns the window metadata in resolution order.
func (s *MenuService) Windows() []models.WindowInfo {
	return s.menuRepo.Windows()
}

// ParseWindow validates a window identifier from a request.
func (s *MenuService) ParseWindow(value string) (models.Window, error) {
	for _, window := range s.menuRepo.Windows() {
		if string(window.ID) == value {
			return window.ID, nil
		}
	}
	return "", fmt.Errorf("unknown menu window %q", value)
}
