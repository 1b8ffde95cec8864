package routes

import (
	"canteen/configs"
	"canteen/controllers"
	"canteen/middlewares"
	"canteen/pkg/otp"
	"canteen/repository"
	"canteen/services"
	"canteen/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, otpStore *otp.Store, hub *ws.NotifyHub) {
	r.Use(middlewares.CORSMiddleware(cfg.AllowOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	weeklyRepo := repository.NewWeeklyMenuRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Services
	authSvc := services.NewAuthService(employeeRepo, otpStore, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, employeeRepo)
	txnSvc := services.NewTransactionService(db, txnRepo, orderRepo)
	billingSvc := services.NewBillingService(db, txnRepo)
	weeklySvc := services.NewWeeklyMenuService(weeklyRepo, menuRepo)
	feedbackSvc := services.NewFeedbackService(feedbackRepo, employeeRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	txnCtrl := controllers.NewTransactionController(txnSvc)
	billingCtrl := controllers.NewBillingController(billingSvc)
	weeklyCtrl := controllers.NewWeeklyMenuController(weeklySvc)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)
	employeeCtrl := controllers.NewEmployeeController(authSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "superadmin")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/password-reset/request", authCtrl.RequestPasswordReset)
		a.POST("/password-reset/confirm", authCtrl.ResetPassword)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Employee directory (admin only)
	employees := r.Group("/employees", adminOnly)
	{
		employees.GET("", employeeCtrl.List)
		employees.PATCH("/:employeeId/active", employeeCtrl.SetActive)
	}

	// Menu: reads for everyone logged in, writes admin only
	menu := r.Group("/menu", auth)
	{
		menu.GET("", menuCtrl.List)
		menu.GET("/active", menuCtrl.Active)
		menu.GET("/history", menuCtrl.PriceHistory)
	}
	menuAdmin := r.Group("/menu", adminOnly)
	{
		menuAdmin.POST("", menuCtrl.Create)
		menuAdmin.PUT("/:id", menuCtrl.Update)
		menuAdmin.PATCH("/:id/availability", menuCtrl.UpdateAvailability)
		menuAdmin.DELETE("/:id", menuCtrl.Delete)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Place)
		orders.GET("/my", orderCtrl.MyOrders)
		orders.GET("/:id", orderCtrl.Get)
		orders.POST("/:id/cancel", orderCtrl.Cancel)
	}
	ordersAdmin := r.Group("/orders", adminOnly)
	{
		ordersAdmin.PATCH("/:id/status", orderCtrl.UpdateStatus)
		ordersAdmin.GET("/employee/:employeeId", orderCtrl.EmployeeOrders)
		ordersAdmin.GET("/status/:status", orderCtrl.ByStatus)
		ordersAdmin.GET("/between", orderCtrl.BetweenDates)
		ordersAdmin.GET("/search", orderCtrl.Search)
		ordersAdmin.GET("/history", orderCtrl.History)
	}

	// Transactions (admin only)
	txn := r.Group("/transactions", adminOnly)
	{
		txn.POST("/sync", txnCtrl.Sync)
		txn.GET("", txnCtrl.List)
		txn.GET("/billed-employees", txnCtrl.BilledEmployees)
		txn.GET("/menu/:menuId", txnCtrl.ByMenu)
		txn.GET("/employee/:employeeId", txnCtrl.ByEmployee)
		txn.GET("/:id", txnCtrl.Get)
		txn.PATCH("/:id/status", txnCtrl.UpdateStatus)
		txn.POST("/:id/remarks", txnCtrl.AddRemark)
		txn.POST("/:id/responses", txnCtrl.AddResponse)
	}

	// Billing (admin only)
	billing := r.Group("/billing", adminOnly)
	{
		billing.GET("/:employeeId", billingCtrl.GetBillable)
		billing.POST("/:employeeId/generate", billingCtrl.Generate)
		billing.GET("/:employeeId/generated", billingCtrl.HasGenerated)
	}

	// Weekly menu: reads for everyone, writes admin only
	weekly := r.Group("/weekly-menu", auth)
	{
		weekly.GET("", weeklyCtrl.ForDay)
		weekly.GET("/range", weeklyCtrl.Between)
	}
	weeklyAdmin := r.Group("/weekly-menu", adminOnly)
	{
		weeklyAdmin.POST("", weeklyCtrl.Create)
		weeklyAdmin.POST("/copy-previous", weeklyCtrl.CopyPrevious)
		weeklyAdmin.DELETE("/:id", weeklyCtrl.Delete)
	}

	// Feedback
	feedback := r.Group("/feedback", auth)
	{
		feedback.GET("/notifications", feedbackCtrl.MyNotifications)
		feedback.PATCH("/notifications/:id/read", feedbackCtrl.MarkRead)
		feedback.POST("/suggestions", feedbackCtrl.CreateSuggestion)
		feedback.POST("/complaints", feedbackCtrl.CreateComplaint)
	}
	feedbackAdmin := r.Group("/feedback", adminOnly)
	{
		feedbackAdmin.POST("/notifications", feedbackCtrl.CreateNotification)
		feedbackAdmin.GET("/issues", feedbackCtrl.ListIssues)
		feedbackAdmin.POST("/issues/:id/respond", feedbackCtrl.Respond)
	}

	// Live notification push
	r.GET("/ws/notifications", auth, hub.HandleWebSocket)
}
