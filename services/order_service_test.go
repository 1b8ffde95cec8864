package services

import (
	"testing"
	"time"

	"canteen/entity"
	"canteen/pkg/apperr"
	"canteen/repository"

	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuItemRepository(db),
		repository.NewEmployeeRepository(db),
	)
	return svc, db
}

func TestPlaceOrderSnapshotsPrice(t *testing.T) {
	svc, db := newOrderService(t)
	emp := seedEmployee(t, db, "EMP001")
	item := seedMenuItem(t, db, "Thali", 80)

	order, err := svc.PlaceOrder(&PlaceOrderRequest{
		EmployeeID: emp.EmployeeID,
		MenuID:     item.MenuID,
		Quantity:   3,
	}, emp.EmployeeID)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if order.PriceAtOrder != 80 {
		t.Errorf("priceAtOrder = %v, want 80", order.PriceAtOrder)
	}
	if order.TotalPrice != 240 {
		t.Errorf("totalPrice = %v, want 240", order.TotalPrice)
	}
	if order.Status != entity.OrderPending {
		t.Errorf("status = %v, want PENDING", order.Status)
	}

	// A later price change on the menu row must not touch the order.
	if err := db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).Update("price", 999).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}
	stored, err := svc.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.PriceAtOrder != 80 || stored.TotalPrice != 240 {
		t.Errorf("snapshot drifted: price %v total %v", stored.PriceAtOrder, stored.TotalPrice)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, db := newOrderService(t)
	emp := seedEmployee(t, db, "EMP001")
	item := seedMenuItem(t, db, "Thali", 80)

	_, err := svc.PlaceOrder(&PlaceOrderRequest{EmployeeID: emp.EmployeeID, MenuID: item.MenuID, Quantity: 0}, emp.EmployeeID)
	if !apperr.IsInvalidRequest(err) {
		t.Errorf("zero quantity err = %v, want invalid request", err)
	}

	_, err = svc.PlaceOrder(&PlaceOrderRequest{EmployeeID: "NOPE", MenuID: item.MenuID, Quantity: 1}, "NOPE")
	if !apperr.IsNotFound(err) {
		t.Errorf("unknown employee err = %v, want not found", err)
	}

	_, err = svc.PlaceOrder(&PlaceOrderRequest{EmployeeID: emp.EmployeeID, MenuID: "missing-1", Quantity: 1}, emp.EmployeeID)
	if !apperr.IsNotFound(err) {
		t.Errorf("unknown menu err = %v, want not found", err)
	}
}

func TestFastOrderingDeliversImmediately(t *testing.T) {
	svc, db := newOrderService(t)
	emp := seedEmployee(t, db, "EMP001")
	item := seedMenuItem(t, db, "Coffee", 15)

	order, err := svc.PlaceOrder(&PlaceOrderRequest{
		EmployeeID: emp.EmployeeID,
		MenuID:     item.MenuID,
		Quantity:   1,
		Status:     string(entity.OrderDelivered),
	}, emp.EmployeeID)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if order.Status != entity.OrderDelivered {
		t.Errorf("status = %v, want DELIVERED", order.Status)
	}
}

func TestUpdateStatusEnforcesTransitions(t *testing.T) {
	svc, db := newOrderService(t)
	emp := seedEmployee(t, db, "EMP001")
	item := seedMenuItem(t, db, "Thali", 80)

	order, err := svc.PlaceOrder(&PlaceOrderRequest{EmployeeID: emp.EmployeeID, MenuID: item.MenuID, Quantity: 1}, emp.EmployeeID)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if _, err := svc.UpdateStatus(order.ID, "SHIPPED", ""); !apperr.IsInvalidRequest(err) {
		t.Errorf("unknown status err = %v, want invalid request", err)
	}

	delivered, err := svc.UpdateStatus(order.ID, string(entity.OrderDelivered), "served at counter 2")
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if delivered.Remarks != "served at counter 2" {
		t.Errorf("remarks = %q", delivered.Remarks)
	}

	// Terminal states admit no further moves.
	if _, err := svc.UpdateStatus(order.ID, string(entity.OrderCancelled), ""); !apperr.IsPolicyViolation(err) {
		t.Errorf("delivered->cancelled err = %v, want policy violation", err)
	}
	if _, err := svc.UpdateStatus(order.ID, string(entity.OrderPending), ""); !apperr.IsPolicyViolation(err) {
		t.Errorf("delivered->pending err = %v, want policy violation", err)
	}
}

func TestCancelOrderWindow(t *testing.T) {
	svc, db := newOrderService(t)
	emp := seedEmployee(t, db, "EMP001")
	item := seedMenuItem(t, db, "Thali", 80)

	placedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return placedAt }

	order, err := svc.PlaceOrder(&PlaceOrderRequest{EmployeeID: emp.EmployeeID, MenuID: item.MenuID, Quantity: 1}, emp.EmployeeID)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	// 4:59 after placing: still inside the window.
	svc.now = func() time.Time { return placedAt.Add(4*time.Minute + 59*time.Second) }
	if err := svc.CancelOrder(order.ID, emp.EmployeeID); err != nil {
		t.Fatalf("cancel inside window: %v", err)
	}
	got, _ := svc.GetOrder(order.ID)
	if got.Status != entity.OrderCancelled {
		t.Errorf("status = %v, want CANCELLED", got.Status)
	}

	// 5:01 after placing: window closed. The clock is rewound so the second
	// order's orderTime is placedAt as well.
	svc.now = func() time.Time { return placedAt }
	late, err := svc.PlaceOrder(&PlaceOrderRequest{EmployeeID: emp.EmployeeID, MenuID: item.MenuID, Quantity: 1}, emp.EmployeeID)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	svc.now = func() time.Time { return placedAt.Add(5*time.Minute + 1*time.Second) }
	if err := svc.CancelOrder(late.ID, emp.EmployeeID); !apperr.IsPolicyViolation(err) {
		t.Errorf("cancel after window err = %v, want policy violation", err)
	}

	// Exactly 5:00 is still inside the window.
	svc.now = func() time.Time { return placedAt.Add(CancelWindow) }
	if err := svc.CancelOrder(late.ID, emp.EmployeeID); err != nil {
		t.Errorf("cancel at the boundary: %v", err)
	}
}

func TestDefaultDeliveryDateIsLocalCalendarDay(t *testing.T) {
	svc, db := newOrderService(t)
	emp := seedEmployee(t, db, "EMP001")
	item := seedMenuItem(t, db, "Thali", 80)

	// Shortly after midnight east of UTC; the UTC day is still yesterday.
	ist := time.FixedZone("IST", 5*3600+1800)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 1, 30, 0, 0, ist) }

	order, err := svc.PlaceOrder(&PlaceOrderRequest{EmployeeID: emp.EmployeeID, MenuID: item.MenuID, Quantity: 1}, emp.EmployeeID)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	y, m, d := order.ExpectedDeliveryDate.In(ist).Date()
	if y != 2026 || m != time.March || d != 10 {
		t.Errorf("delivery date = %v, want the local day 2026-03-10", order.ExpectedDeliveryDate)
	}
}

func TestCancelOrderOwnershipAndStatus(t *testing.T) {
	svc, db := newOrderService(t)
	owner := seedEmployee(t, db, "EMP001")
	other := seedEmployee(t, db, "EMP002")
	item := seedMenuItem(t, db, "Thali", 80)

	order, err := svc.PlaceOrder(&PlaceOrderRequest{EmployeeID: owner.EmployeeID, MenuID: item.MenuID, Quantity: 1}, owner.EmployeeID)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if err := svc.CancelOrder(order.ID, other.EmployeeID); !apperr.IsUnauthorized(err) {
		t.Errorf("foreign cancel err = %v, want unauthorized", err)
	}

	if _, err := svc.UpdateStatus(order.ID, string(entity.OrderDelivered), ""); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if err := svc.CancelOrder(order.ID, owner.EmployeeID); !apperr.IsPolicyViolation(err) {
		t.Errorf("cancel delivered err = %v, want policy violation", err)
	}
}

func TestGetOrderHistoryExcludesPending(t *testing.T) {
	svc, db := newOrderService(t)
	emp := seedEmployee(t, db, "EMP001")
	item := seedMenuItem(t, db, "Thali", 80)

	pending, _ := svc.PlaceOrder(&PlaceOrderRequest{EmployeeID: emp.EmployeeID, MenuID: item.MenuID, Quantity: 1}, emp.EmployeeID)
	done, _ := svc.PlaceOrder(&PlaceOrderRequest{EmployeeID: emp.EmployeeID, MenuID: item.MenuID, Quantity: 1}, emp.EmployeeID)
	if _, err := svc.UpdateStatus(done.ID, string(entity.OrderDelivered), ""); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	history, err := svc.GetOrderHistory(repository.OrderHistoryFilter{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != done.ID {
		t.Fatalf("history = %d rows, want only the delivered order", len(history))
	}
	_ = pending
}
