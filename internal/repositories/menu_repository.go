package repositories

import (
	"fmt"

	"github.com/shopspring/decimal"

	"chaibisket/models"
	"chaibisket/pkg/logger"
)

// MenuRepositoryInterface serves the static catalog and window metadata.
type MenuRepositoryInterface interface {
	GetAll() []models.MenuItem
	GetByID(id int) (*models.MenuItem, error)
	Windows() []models.WindowInfo
}

// MenuRepository holds the build-time catalog. Items are never mutated,
// so reads need no locking.
type MenuRepository struct {
	items   []models.MenuItem
	windows []models.WindowInfo
	logger  *logger.Logger
}

// NewMenuRepository creates the catalog repository with the fixed menu.
func NewMenuRepository(log *logger.Logger) *MenuRepository {
	return &MenuRepository{
		items:   catalog(),
		windows: menuWindows(),
		logger:  log.WithComponent("menu_repository"),
	}
}

// GetAll returns every catalog entry in menu order.
func (r *MenuRepository) GetAll() []models.MenuItem {
	items := make([]models.MenuItem, len(r.items))
	copy(items, r.items)
	return items
}

// GetByID looks up a single catalog entry.
func (r *MenuRepository) GetByID(id int) (*models.MenuItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}

	r.logger.Debug("Menu item lookup missed", "item_id", id)
	return nil, fmt.Errorf("menu item %d: %w", id, models.ErrItemNotFound)
}

// Windows returns the window metadata in resolution order. The order
// matters: overlapping windows resolve to the first match.
func (r *MenuRepository) Windows() []models.WindowInfo {
	windows := make([]models.WindowInfo, len(r.windows))
	copy(windows, r.windows)
	return windows
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// catalog is the full Chai Bisket menu, defined once at load.
func catalog() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:            1,
			Name:          "Masala Chai",
			Price:         price("3.49"),
			Description:   "Slow-brewed, aromatic, soul-warming.",
			Image:         "/images/iran chaai.png",
			Category:      "Beverages",
			AvailableTime: []models.Window{models.WindowBreakfast, models.WindowLunch, models.WindowDinner},
		},
		{
			ID:            2,
			Name:          "Osmania Biscuits",
			Price:         price("4.99"),
			Description:   "Crisp, buttery, perfect with chai.",
			Image:         "/images/osimania biskets.png",
			Category:      "Snacks",
			AvailableTime: []models.Window{models.WindowBreakfast, models.WindowSnacks},
		},
		{
			ID:            3,
			Name:          "Hyderabadi Biryani",
			Price:         price("14.99"),
			Description:   "Long-grain basmati, rich masala, royal aroma.",
			Image:         "/images/Hyderabadi Biryani.jpg",
			Category:      "Main Course",
			AvailableTime: []models.Window{models.WindowLunch, models.WindowDinner},
		},
		{
			ID:            4,
			Name:          "Bun Maska",
			Price:         price("5.99"),
			Description:   "Pillow-soft bun, lashings of butter.",
			Image:         "/images/Bun Maska.jpg",
			Category:      "Snacks",
			AvailableTime: []models.Window{models.WindowBreakfast, models.WindowSnacks},
		},
		{
			ID:            5,
			Name:          "Vada Pav",
			Price:         price("6.99"),
			Description:   "Mumbai's favorite - fiery & fun.",
			Image:         "/images/Vada Pav.jpg",
			Category:      "Street Food",
			AvailableTime: []models.Window{models.WindowLunch, models.WindowDinner},
		},
		{
			ID:            6,
			Name:          "Chicken 65",
			Price:         price("12.99"),
			Description:   "Crispy, tangy, dangerously addictive.",
			Image:         "/images/Chicken 65.jpg",
			Category:      "Appetizers",
			AvailableTime: []models.Window{models.WindowLunch, models.WindowDinner},
		},
	}
}

// menuWindows defines the four service windows as half-open minute-of-day
// intervals. Lunch overlaps breakfast (660-690) and snacks (900-960);
// resolution is first-match in this order.
func menuWindows() []models.WindowInfo {
	return []models.WindowInfo{
		{ID: models.WindowBreakfast, Name: "BREAKFAST MENU", TimeRange: "8:00 AM - 11:30 AM", Start: 480, End: 690},
		{ID: models.WindowLunch, Name: "LUNCH MENU", TimeRange: "11:00 AM - 4:00 PM", Start: 660, End: 960},
		{ID: models.WindowSnacks, Name: "SNACKS", TimeRange: "3:00 PM - 6:30 PM", Start: 900, End: 1110},
		{ID: models.WindowDinner, Name: "DINNER MENU", TimeRange: "6:30 PM - 10:30 PM", Start: 1110, End: 1350},
	}
}
