package controllers

import (
	"strconv"

	"canteen/pkg/resp"
	"canteen/services"
	"canteen/utils"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	Service *services.BillingService
}

func NewBillingController(service *services.BillingService) *BillingController {
	return &BillingController{Service: service}
}

// month/year default to 0, which means no filter on that component.
func billingPeriod(c *gin.Context) (int, int, bool) {
	month, err := strconv.Atoi(c.DefaultQuery("month", "0"))
	if err != nil || month < 0 || month > 12 {
		resp.BadRequest(c, "month must be between 1 and 12, or 0 for all")
		return 0, 0, false
	}
	year, err := strconv.Atoi(c.DefaultQuery("year", "0"))
	if err != nil || year < 0 {
		resp.BadRequest(c, "invalid year")
		return 0, 0, false
	}
	return month, year, true
}

// GET /billing/:employeeId?month=&year=
func (ctl *BillingController) GetBillable(c *gin.Context) {
	month, year, ok := billingPeriod(c)
	if !ok {
		return
	}

	bill, err := ctl.Service.GetBillable(c.Param("employeeId"), month, year)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, bill)
}

// POST /billing/:employeeId/generate?month=&year=
func (ctl *BillingController) Generate(c *gin.Context) {
	month, year, ok := billingPeriod(c)
	if !ok {
		return
	}

	bill, err := ctl.Service.GenerateBill(c.Param("employeeId"), month, year, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, bill)
}

// GET /billing/:employeeId/generated?month=&year=
func (ctl *BillingController) HasGenerated(c *gin.Context) {
	month, year, ok := billingPeriod(c)
	if !ok {
		return
	}

	has, err := ctl.Service.HasGeneratedBill(c.Param("employeeId"), month, year)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"generated": has})
}
