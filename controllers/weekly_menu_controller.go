package controllers

import (
	"strconv"
	"time"

	"canteen/pkg/resp"
	"canteen/services"
	"canteen/utils"

	"github.com/gin-gonic/gin"
)

type WeeklyMenuController struct {
	Service *services.WeeklyMenuService
}

func NewWeeklyMenuController(service *services.WeeklyMenuService) *WeeklyMenuController {
	return &WeeklyMenuController{Service: service}
}

// POST /weekly-menu
func (ctl *WeeklyMenuController) Create(c *gin.Context) {
	var req services.WeeklyMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	wm, err := ctl.Service.Create(&req, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, wm)
}

// GET /weekly-menu?date=&dayOfWeek=&category=
func (ctl *WeeklyMenuController) ForDay(c *gin.Context) {
	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			resp.BadRequest(c, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	items, err := ctl.Service.ForDay(date, c.Query("dayOfWeek"), c.Query("category"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /weekly-menu/range?start=&end=
func (ctl *WeeklyMenuController) Between(c *gin.Context) {
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

	items, err := ctl.Service.Between(start, end)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /weekly-menu/copy-previous?weekStart=
func (ctl *WeeklyMenuController) CopyPrevious(c *gin.Context) {
	weekStart, err := time.Parse("2006-01-02", c.Query("weekStart"))
	if err != nil {
		resp.BadRequest(c, "invalid weekStart, expected YYYY-MM-DD")
		return
	}

	copies, err := ctl.Service.CopyPreviousWeek(weekStart, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, copies)
}

// DELETE /weekly-menu/:id
func (ctl *WeeklyMenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "schedule entry deleted"})
}
