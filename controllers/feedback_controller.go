package controllers

import (
	"strconv"

	"canteen/pkg/resp"
	"canteen/services"
	"canteen/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Service *services.FeedbackService
}

func NewFeedbackController(service *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Service: service}
}

// POST /feedback/notifications
func (ctl *FeedbackController) CreateNotification(c *gin.Context) {
	var req services.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	created, err := ctl.Service.CreateNotification(&req, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, created)
}

// GET /feedback/notifications
func (ctl *FeedbackController) MyNotifications(c *gin.Context) {
	items, err := ctl.Service.MyNotifications(
		utils.CurrentEmployeeID(c),
		utils.IsAdminRole(utils.CurrentRole(c)),
	)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// PATCH /feedback/notifications/:id/read
func (ctl *FeedbackController) MarkRead(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	f, err := ctl.Service.MarkRead(uint(id), utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, f)
}

// POST /feedback/suggestions
func (ctl *FeedbackController) CreateSuggestion(c *gin.Context) {
	var req services.IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	f, err := ctl.Service.CreateSuggestion(&req, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, f)
}

// POST /feedback/complaints
func (ctl *FeedbackController) CreateComplaint(c *gin.Context) {
	var req services.IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	f, err := ctl.Service.CreateComplaint(&req, utils.CurrentEmployeeID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, f)
}

// GET /feedback/issues?pending=true
func (ctl *FeedbackController) ListIssues(c *gin.Context) {
	items, err := ctl.Service.ListIssues(c.Query("pending") == "true")
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /feedback/issues/:id/respond
func (ctl *FeedbackController) Respond(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Response string `json:"response" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	f, err := ctl.Service.Respond(uint(id), req.Response)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, f)
}
