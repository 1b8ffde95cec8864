package services

import (
	"testing"
	"time"

	"canteen/pkg/apperr"
	"canteen/repository"
)

func newMenuService(t *testing.T) (*MenuService, *repository.MenuItemRepository) {
	t.Helper()
	db := testDB(t)
	repo := repository.NewMenuItemRepository(db)
	return NewMenuService(repo), repo
}

func menuRequest(name string, price float64, categories ...string) *MenuItemRequest {
	now := time.Now()
	return &MenuItemRequest{
		Name:       name,
		Quantity:   1,
		Unit:       "plate",
		Price:      price,
		StartDate:  now.AddDate(0, 0, -1),
		EndDate:    now.AddDate(0, 0, 30),
		Categories: categories,
	}
}

func TestCreateMenuItemFansOutPerCategory(t *testing.T) {
	svc, repo := newMenuService(t)

	first, err := svc.CreateMenuItem(menuRequest("Masala Dosa", 40, "breakfast", "lunch", "snacks"), "admin1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Category != "breakfast" {
		t.Errorf("first row category = %q, want breakfast", first.Category)
	}

	rows, err := repo.FindByNameNewestFirst("Masala Dosa")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// Rows created back to back in one request must still get distinct ids.
	seen := make(map[string]bool)
	for _, row := range rows {
		if seen[row.MenuID] {
			t.Errorf("category rows share menu id %q", row.MenuID)
		}
		seen[row.MenuID] = true
	}
}

func TestCreateMenuItemRejectsNoCategories(t *testing.T) {
	svc, _ := newMenuService(t)

	_, err := svc.CreateMenuItem(menuRequest("Masala Dosa", 40), "admin1")
	if !apperr.IsInvalidRequest(err) {
		t.Fatalf("err = %v, want invalid request", err)
	}
}

func TestPriceChangeOpensNewEpochAndPreservesOld(t *testing.T) {
	svc, repo := newMenuService(t)

	first, err := svc.CreateMenuItem(menuRequest("Thali", 80, "lunch"), "admin1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(5 * time.Millisecond) // keep creation timestamps apart for ordered history

	req := menuRequest("Thali", 95, "lunch")
	updated, err := svc.UpdateMenuItem(first.ID, req, "admin2")
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID == first.ID {
		t.Fatal("price change mutated the existing row instead of creating one")
	}
	if updated.MenuID == first.MenuID {
		t.Errorf("new epoch reuses menu id %q", first.MenuID)
	}
	if updated.Price != 95 {
		t.Errorf("new row price = %v, want 95", updated.Price)
	}
	if updated.CreatedBy != "admin1" || updated.UpdatedBy != "admin2" {
		t.Errorf("audit = createdBy %q updatedBy %q, want admin1/admin2", updated.CreatedBy, updated.UpdatedBy)
	}

	old, err := repo.FindByID(first.ID)
	if err != nil {
		t.Fatalf("old row gone: %v", err)
	}
	if old.Price != 80 {
		t.Errorf("old row price = %v, want 80 untouched", old.Price)
	}
}

func TestNonPriceUpdateMutatesInPlace(t *testing.T) {
	svc, repo := newMenuService(t)

	first, err := svc.CreateMenuItem(menuRequest("Thali", 80, "lunch"), "admin1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := menuRequest("Thali", 80, "lunch")
	req.Description = "with papad"
	updated, err := svc.UpdateMenuItem(first.ID, req, "admin2")
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != first.ID {
		t.Fatal("same-price update created a new row")
	}
	rows, _ := repo.FindByNameNewestFirst("Thali")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Description != "with papad" {
		t.Errorf("description = %q", rows[0].Description)
	}
}

func TestPriceHistoryNewestFirstWithCategoryFilter(t *testing.T) {
	svc, _ := newMenuService(t)

	first, err := svc.CreateMenuItem(menuRequest("Coffee", 15, "beverages", "snacks"), "admin1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := svc.UpdateMenuItem(first.ID, menuRequest("Coffee", 18, "beverages"), "admin1"); err != nil {
		t.Fatalf("update: %v", err)
	}

	entries, err := svc.GetPriceHistory("Coffee", "beverages")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d beverages entries, want 2", len(entries))
	}
	if entries[0].Price != 18 || entries[1].Price != 15 {
		t.Errorf("order = %v then %v, want newest (18) first", entries[0].Price, entries[1].Price)
	}
	for _, e := range entries {
		if len(e.AllCategories) != 2 {
			t.Errorf("AllCategories = %v, want both categories", e.AllCategories)
		}
	}
}

func TestDeleteMenuItemRemovesOnlyThatEpoch(t *testing.T) {
	svc, repo := newMenuService(t)

	first, err := svc.CreateMenuItem(menuRequest("Tea", 10, "beverages"), "admin1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := svc.UpdateMenuItem(first.ID, menuRequest("Tea", 12, "beverages"), "admin1")
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := svc.DeleteMenuItem(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rows, _ := repo.FindByNameNewestFirst("Tea")
	if len(rows) != 1 || rows[0].ID != second.ID {
		t.Fatalf("surviving rows = %v, want only the second epoch", rows)
	}

	if err := svc.DeleteMenuItem(first.ID); !apperr.IsNotFound(err) {
		t.Errorf("second delete err = %v, want not found", err)
	}
}

func TestIsActiveComputedFromWindow(t *testing.T) {
	svc, _ := newMenuService(t)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

	req := &MenuItemRequest{
		Name:       "Seasonal Special",
		Quantity:   1,
		Unit:       "plate",
		Price:      60,
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Categories: []string{"lunch"},
	}
	item, err := svc.CreateMenuItem(req, "admin1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.IsActive {
		t.Error("item active outside its window")
	}

	svc.now = func() time.Time { return time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC) }
	items, err := svc.GetAllMenuItems()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || !items[0].IsActive {
		t.Error("item inactive inside its window")
	}
}
