package services

import (
	"errors"
	"time"

	"canteen/entity"
	"canteen/pkg/apperr"
	"canteen/repository"

	"gorm.io/gorm"
)

// CancelWindow is how long an employee has to withdraw their own order,
// measured from orderTime.
const CancelWindow = 5 * time.Minute

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	MenuRepo     *repository.MenuItemRepository
	EmployeeRepo *repository.EmployeeRepository

	now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuItemRepository,
	employeeRepo *repository.EmployeeRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, EmployeeRepo: employeeRepo, now: time.Now}
}

type PlaceOrderRequest struct {
	EmployeeID           string     `json:"employeeId" binding:"required"`
	MenuID               string     `json:"menuId" binding:"required"`
	Quantity             int        `json:"quantity" binding:"required"`
	Remarks              string     `json:"remarks"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate"`
	Status               string     `json:"status"` // empty means PENDING; fast ordering passes DELIVERED
}

// PlaceOrder resolves both business ids, snapshots the row's current price
// into the order and stores the line. The snapshot is taken even when the
// row's validity window has already closed; whatever price the row carries
// is what the order records forever.
func (s *OrderService) PlaceOrder(req *PlaceOrderRequest, actor string) (*entity.Order, error) {
	if req.Quantity < 1 {
		return nil, apperr.InvalidRequest("quantity must be at least 1")
	}

	status := entity.OrderPending
	if req.Status != "" {
		status = entity.OrderStatus(req.Status)
		if !status.Valid() {
			return nil, apperr.InvalidRequest("unknown order status: " + req.Status)
		}
	}

	employee, err := s.EmployeeRepo.FindByEmployeeID(req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("employee")
		}
		return nil, err
	}

	menuItem, err := s.MenuRepo.FindByMenuID(req.MenuID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item")
		}
		return nil, err
	}

	now := s.now()
	// Default to the calendar day in the clock's own zone, not the UTC day.
	y, m, d := now.Date()
	deliveryDate := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if req.ExpectedDeliveryDate != nil {
		deliveryDate = *req.ExpectedDeliveryDate
	}

	order := &entity.Order{
		EmployeeID:           employee.ID,
		MenuItemID:           menuItem.ID,
		Quantity:             req.Quantity,
		PriceAtOrder:         menuItem.Price,
		TotalPrice:           menuItem.Price * float64(req.Quantity),
		OrderTime:            now,
		ExpectedDeliveryDate: deliveryDate,
		Status:               status,
		Remarks:              req.Remarks,
		CreatedBy:            actor,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	order.Employee = *employee
	order.MenuItem = *menuItem
	order.MenuItem.RefreshActive(now)
	return order, nil
}

// UpdateStatus is the admin override. The value must belong to the closed
// status set and the move must be allowed by the transition table.
func (s *OrderService) UpdateStatus(orderID uint, newStatus, remarks string) (*entity.Order, error) {
	status := entity.OrderStatus(newStatus)
	if !status.Valid() {
		return nil, apperr.InvalidRequest("unknown order status: " + newStatus)
	}

	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order")
		}
		return nil, err
	}

	if status != order.Status && !order.Status.CanTransitionTo(status) {
		return nil, apperr.PolicyViolation("illegal order status transition " + string(order.Status) + " -> " + string(status))
	}

	order.Status = status
	if remarks != "" {
		order.Remarks = remarks
	}
	if err := s.Repo.Save(s.DB, order); err != nil {
		return nil, err
	}
	return order, nil
}

// CancelOrder lets the owning employee withdraw a pending order within
// CancelWindow of placing it.
func (s *OrderService) CancelOrder(orderID uint, employeeID string) error {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order")
		}
		return err
	}

	if order.Employee.EmployeeID != employeeID {
		return apperr.Unauthorized("not authorized to cancel this order")
	}
	if s.now().Sub(order.OrderTime) > CancelWindow {
		return apperr.PolicyViolation("cancellation window expired (5 minutes)")
	}
	if order.Status != entity.OrderPending {
		return apperr.PolicyViolation("only pending orders can be cancelled")
	}

	order.Status = entity.OrderCancelled
	return s.Repo.Save(s.DB, order)
}

func (s *OrderService) GetOrder(orderID uint) (*entity.Order, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order")
		}
		return nil, err
	}
	order.MenuItem.RefreshActive(s.now())
	return order, nil
}

func (s *OrderService) GetEmployeeOrders(employeeID string) ([]entity.Order, error) {
	employee, err := s.EmployeeRepo.FindByEmployeeID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("employee")
		}
		return nil, err
	}
	orders, err := s.Repo.FindByEmployee(employee.ID)
	if err != nil {
		return nil, err
	}
	s.refreshAll(orders)
	return orders, nil
}

func (s *OrderService) GetEmployeeOrdersByStatus(employeeID, status string) ([]entity.Order, error) {
	st := entity.OrderStatus(status)
	if !st.Valid() {
		return nil, apperr.InvalidRequest("unknown order status: " + status)
	}
	employee, err := s.EmployeeRepo.FindByEmployeeID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("employee")
		}
		return nil, err
	}
	orders, err := s.Repo.FindByEmployeeAndStatus(employee.ID, st)
	if err != nil {
		return nil, err
	}
	s.refreshAll(orders)
	return orders, nil
}

func (s *OrderService) GetOrdersByStatus(status string) ([]entity.Order, error) {
	st := entity.OrderStatus(status)
	if !st.Valid() {
		return nil, apperr.InvalidRequest("unknown order status: " + status)
	}
	orders, err := s.Repo.FindByStatus(st)
	if err != nil {
		return nil, err
	}
	s.refreshAll(orders)
	return orders, nil
}

func (s *OrderService) GetOrdersBetweenDates(start, end time.Time) ([]entity.Order, error) {
	orders, err := s.Repo.FindByDeliveryDateBetween(start, end)
	if err != nil {
		return nil, err
	}
	s.refreshAll(orders)
	return orders, nil
}

func (s *OrderService) SearchOrders(term string) ([]entity.OrderSummary, error) {
	return s.Repo.Search(term)
}

// GetOrderHistory returns delivered and cancelled orders within the
// optional date/department/category filters.
func (s *OrderService) GetOrderHistory(f repository.OrderHistoryFilter) ([]entity.Order, error) {
	orders, err := s.Repo.FindHistory(f)
	if err != nil {
		return nil, err
	}
	s.refreshAll(orders)
	return orders, nil
}

func (s *OrderService) refreshAll(orders []entity.Order) {
	now := s.now()
	for i := range orders {
		orders[i].MenuItem.RefreshActive(now)
	}
}
