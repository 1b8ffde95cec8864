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

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// POST /menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.CreateMenuItem(&req, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.UpdateMenuItem(uint(id), &req, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /menu/history?name=...&category=...
func (ctl *MenuController) PriceHistory(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		resp.BadRequest(c, "name is required")
		return
	}

	entries, err := ctl.Service.GetPriceHistory(name, c.Query("category"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, entries)
}

// GET /menu/active?date=2026-01-15&category=LUNCH
func (ctl *MenuController) Active(c *gin.Context) {
	asOf := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			resp.BadRequest(c, "invalid date, expected YYYY-MM-DD")
			return
		}
		asOf = parsed
	}

	items, err := ctl.Service.GetActiveMenuItems(asOf, c.Query("category"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu?name=&category=&startDate=&endDate=&activeOnly=
func (ctl *MenuController) List(c *gin.Context) {
	var f repository.MenuItemFilter
	f.Name = c.Query("name")
	f.Category = c.Query("category")
	f.ActiveOnly = c.Query("activeOnly") == "true"

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

	items, err := ctl.Service.GetMenuItemsWithFilters(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// PATCH /menu/:id/availability
func (ctl *MenuController) UpdateAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		AvailableStatus bool `json:"availableStatus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.UpdateAvailability(uint(id), req.AvailableStatus, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.DeleteMenuItem(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
