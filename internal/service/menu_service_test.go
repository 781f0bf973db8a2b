package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chaibisket/models"
)

func clock(hour, minute int) time.Time {
	return time.Date(2025, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func newMenuService() *MenuService {
	env := newTestEnv()
	return NewMenuService(env.menuRepo, testLogger())
}

func TestRefreshResolvesWindows(t *testing.T) {
	svc := newMenuService()

	cases := []struct {
		hour, minute int
		want         models.Window
	}{
		{8, 0, models.WindowBreakfast},
		{10, 59, models.WindowBreakfast},
		// Breakfast and lunch overlap from 11:00; first match wins.
		{11, 0, models.WindowBreakfast},
		{11, 30, models.WindowLunch},
		{14, 59, models.WindowLunch},
		// Lunch and snacks overlap from 15:00.
		{15, 0, models.WindowLunch},
		{16, 0, models.WindowSnacks},
		// Snacks and dinner overlap at 18:30; dinner starts where snacks end.
		{18, 29, models.WindowSnacks},
		{18, 30, models.WindowDinner},
		{22, 29, models.WindowDinner},
	}

	for _, tc := range cases {
		got := svc.Refresh(clock(tc.hour, tc.minute))
		require.Equal(t, tc.want, got, "at %02d:%02d", tc.hour, tc.minute)
	}
}

func TestRefreshRetainsPreviousWindowOutsideHours(t *testing.T) {
	svc := newMenuService()

	require.Equal(t, models.WindowDinner, svc.Refresh(clock(20, 0)))

	// 22:30 onward matches nothing; dinner stays active through the night.
	require.Equal(t, models.WindowDinner, svc.Refresh(clock(23, 45)))
	require.Equal(t, models.WindowDinner, svc.Refresh(clock(3, 0)))
	require.Equal(t, models.WindowDinner, svc.ActiveWindow())

	require.Equal(t, models.WindowBreakfast, svc.Refresh(clock(8, 0)))
}

func TestRefreshDefaultsToBreakfastBeforeFirstMatch(t *testing.T) {
	svc := newMenuService()

	// Nothing has matched yet, so the initial breakfast default holds.
	require.Equal(t, models.WindowBreakfast, svc.Refresh(clock(5, 0)))
}

func TestListItemsFiltersByWindow(t *testing.T) {
	svc := newMenuService()

	items := svc.ListItems(models.WindowBreakfast, CategoryAll, false)
	names := itemNames(items)
	require.Equal(t, []string{"Masala Chai", "Osmania Biscuits", "Bun Maska"}, names)

	items = svc.ListItems(models.WindowDinner, CategoryAll, false)
	names = itemNames(items)
	require.Equal(t, []string{"Masala Chai", "Hyderabadi Biryani", "Vada Pav", "Chicken 65"}, names)
}

func TestListItemsFiltersByCategory(t *testing.T) {
	svc := newMenuService()

	items := svc.ListItems(models.WindowDinner, "Main Course", false)
	require.Len(t, items, 1)
	require.Equal(t, "Hyderabadi Biryani", items[0].Name)

	// An unknown category yields an empty, non-nil slice.
	items = svc.ListItems(models.WindowDinner, "Desserts", false)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestListItemsShowAllIgnoresWindow(t *testing.T) {
	svc := newMenuService()

	items := svc.ListItems(models.WindowBreakfast, CategoryAll, true)
	require.Len(t, items, 6)
}

func TestCategoriesStartWithAll(t *testing.T) {
	svc := newMenuService()

	categories := svc.Categories(models.WindowBreakfast)
	require.Equal(t, []string{"All", "Beverages", "Snacks"}, categories)

	categories = svc.Categories(models.WindowDinner)
	require.Equal(t, []string{"All", "Beverages", "Main Course", "Street Food", "Appetizers"}, categories)
}

func TestParseWindow(t *testing.T) {
	svc := newMenuService()

	window, err := svc.ParseWindow("lunch")
	require.NoError(t, err)
	require.Equal(t, models.WindowLunch, window)

	_, err = svc.ParseWindow("brunch")
	require.Error(t, err)
}

func itemNames(items []models.MenuItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}
