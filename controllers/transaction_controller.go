package controllers

import (
	"strconv"

	"canteen/pkg/resp"
	"canteen/services"
	"canteen/utils"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	Service *services.TransactionService
}

func NewTransactionController(service *services.TransactionService) *TransactionController {
	return &TransactionController{Service: service}
}

// POST /transactions/sync
func (ctl *TransactionController) Sync(c *gin.Context) {
	created, err := ctl.Service.SyncFromOrders(services.SystemActor)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"created": created})
}

// GET /transactions
func (ctl *TransactionController) List(c *gin.Context) {
	txns, err := ctl.Service.GetAllTransactions()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, txns)
}

// GET /transactions/:id
func (ctl *TransactionController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	t, err := ctl.Service.GetTransaction(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// GET /transactions/menu/:menuId
func (ctl *TransactionController) ByMenu(c *gin.Context) {
	txns, err := ctl.Service.GetByMenuBusinessID(c.Param("menuId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, txns)
}

// GET /transactions/employee/:employeeId
func (ctl *TransactionController) ByEmployee(c *gin.Context) {
	txns, err := ctl.Service.GetByEmployeeBusinessID(c.Param("employeeId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, txns)
}

// PATCH /transactions/:id/status
func (ctl *TransactionController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t, err := ctl.Service.UpdateStatus(uint(id), req.Status, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// POST /transactions/:id/remarks
func (ctl *TransactionController) AddRemark(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Remark string `json:"remark" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t, err := ctl.Service.AddRemark(uint(id), req.Remark, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// POST /transactions/:id/responses
func (ctl *TransactionController) AddResponse(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Response string `json:"response" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t, err := ctl.Service.AddResponse(uint(id), req.Response, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// GET /transactions/billed-employees
func (ctl *TransactionController) BilledEmployees(c *gin.Context) {
	rows, err := ctl.Service.ListBilledEmployees()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}
