package controllers

import (
	"canteen/pkg/resp"
	"canteen/services"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	Service *services.AuthService
}

func NewEmployeeController(service *services.AuthService) *EmployeeController {
	return &EmployeeController{Service: service}
}

// GET /employees
func (ctl *EmployeeController) List(c *gin.Context) {
	employees, err := ctl.Service.ListEmployees()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, employees)
}

// PATCH /employees/:employeeId/active
func (ctl *EmployeeController) SetActive(c *gin.Context) {
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	employee, err := ctl.Service.SetActive(c.Param("employeeId"), *req.Active)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, employee)
}
