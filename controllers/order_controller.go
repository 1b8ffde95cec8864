package controllers

import (
	"strconv"
	"time"

	"canteen/pkg/resp"
	"canteen/repository"
	"canteen/services"
	"canteen/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /orders
func (ctl *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	actor := utils.CurrentEmployeeID(c)
	// Employees order for themselves; only admins may order on behalf of
	// someone else.
	if req.EmployeeID != actor && !utils.IsAdminRole(utils.CurrentRole(c)) {
		resp.Forbidden(c, "cannot place orders for another employee")
		return
	}

	order, err := ctl.Service.PlaceOrder(&req, actor)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Service.GetOrder(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status  string `json:"status" binding:"required"`
		Remarks string `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.UpdateStatus(uint(id), req.Status, req.Remarks)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/cancel
func (ctl *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.CancelOrder(uint(id), utils.CurrentEmployeeID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order cancelled"})
}

// GET /orders/my?status=
func (ctl *OrderController) MyOrders(c *gin.Context) {
	employeeID := utils.CurrentEmployeeID(c)

	var err error
	var orders any
	if status := c.Query("status"); status != "" {
		orders, err = ctl.Service.GetEmployeeOrdersByStatus(employeeID, status)
	} else {
		orders, err = ctl.Service.GetEmployeeOrders(employeeID)
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/employee/:employeeId
func (ctl *OrderController) EmployeeOrders(c *gin.Context) {
	orders, err := ctl.Service.GetEmployeeOrders(c.Param("employeeId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/status/:status
func (ctl *OrderController) ByStatus(c *gin.Context) {
	orders, err := ctl.Service.GetOrdersByStatus(c.Param("status"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/between?start=2026-01-01&end=2026-01-31
func (ctl *OrderController) BetweenDates(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		resp.BadRequest(c, "invalid start, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		resp.BadRequest(c, "invalid end, expected YYYY-MM-DD")
		return
	}

	orders, err := ctl.Service.GetOrdersBetweenDates(start, end)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/search?q=
func (ctl *OrderController) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		resp.BadRequest(c, "q is required")
		return
	}

	rows, err := ctl.Service.SearchOrders(term)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /orders/history?startDate=&endDate=&department=&category=
func (ctl *OrderController) History(c *gin.Context) {
	var f repository.OrderHistoryFilter
	f.Department = c.Query("department")
	f.Category = c.Query("category")

	if d := c.Query("startDate"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			resp.BadRequest(c, "invalid startDate, expected YYYY-MM-DD")
			return
		}
		f.StartDate = &parsed
	}
	if d := c.Query("endDate"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			resp.BadRequest(c, "invalid endDate, expected YYYY-MM-DD")
			return
		}
		f.EndDate = &parsed
	}

	orders, err := ctl.Service.GetOrderHistory(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}
