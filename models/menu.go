package models

import "github.com/shopspring/decimal"

// Window identifies a named time-of-day menu period.
type Window string

const (
	WindowBreakfast Window = "breakfast"
	WindowLunch     Window = "lunch"
	WindowSnacks    Window = "snacks"
	WindowDinner    Window = "dinner"
)

// MenuItem is an immutable catalog entry defined at build time.
type MenuItem struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description"`
	Image         string          `json:"image"`
	Category      string          `json:"category"`
	AvailableTime []Window        `json:"available_time"`
}

// AvailableIn reports whether the item is offered during the given window.
func (m MenuItem) AvailableIn(window Window) bool {
	for _, w := range m.AvailableTime {
		if w == window {
			return true
		}
	}
	return false
}

// WindowInfo describes a menu window, including the display strings the
// storefront shows next to the window selector.
type WindowInfo struct {
	ID        Window `json:"id"`
	Name      string `json:"name"`
	TimeRange string `json:"time_range"`

	// Minutes since midnight, half-open interval [Start, End).
	Start int `json:"-"`
	End   int `json:"-"`
}

// Contains reports whether the given minute of the day falls inside the window.
func (w WindowInfo) Contains(minuteOfDay int) bool {
	return minuteOfDay >= w.Start && minuteOfDay < w.End
}
