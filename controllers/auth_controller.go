package controllers

import (
	"canteen/pkg/resp"
	"canteen/services"
	"canteen/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

// POST /auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	employee, err := ctl.Service.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, employee)
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := ctl.Service.Login(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, result)
}

// POST /auth/password-reset/request
func (ctl *AuthController) RequestPasswordReset(c *gin.Context) {
	var req struct {
		EmployeeID string `json:"employeeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// The code goes out through the delivery channel, not the response.
	if _, err := ctl.Service.RequestPasswordReset(c.Request.Context(), req.EmployeeID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "reset code issued"})
}

// POST /auth/password-reset/confirm
func (ctl *AuthController) ResetPassword(c *gin.Context) {
	var req struct {
		EmployeeID  string `json:"employeeId" binding:"required"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.ResetPassword(c.Request.Context(), req.EmployeeID, req.Code, req.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password updated"})
}

// GET /auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	employee, err := ctl.Service.GetProfile(utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, employee)
}
