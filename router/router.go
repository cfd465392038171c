package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/controllers"
	"github.com/sreekln/HotelOrderingSystem-sub000/middlewares"
	"github.com/sreekln/HotelOrderingSystem-sub000/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	sessionCtrl := controllers.NewSessionController(db)
	partOrderCtrl := controllers.NewPartOrderController(db)
	orderCtrl := controllers.NewOrderController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	receiptCtrl := controllers.NewReceiptController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Catalog is readable without auth (menu boards, QR menus).
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/by-category", menuCtrl.GetMenuByCategory)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	api.GET("/profile", userCtrl.GetProfile)
	api.POST("/logout", userCtrl.Logout)

	// Kitchen display websocket.
	api.GET("/kds/ws", controllers.KDSHandler)

	// TABLE SESSIONS (servers open tables and take orders)
	serverOps := api.Group("/")
	serverOps.Use(middlewares.RequireRole(models.RoleServer))
	{
		serverOps.POST("/sessions", sessionCtrl.OpenSession)
		serverOps.POST("/sessions/:session_id/part-orders", sessionCtrl.AttachPartOrder)
		serverOps.PATCH("/sessions/:session_id/items/:item_id", sessionCtrl.EditLineItem)
		serverOps.PUT("/sessions/:session_id/discount", sessionCtrl.SetDiscount)
		serverOps.POST("/sessions/:session_id/ready", sessionCtrl.MarkReadyToClose)
		serverOps.POST("/sessions/:session_id/close", sessionCtrl.CloseSession)
		serverOps.POST("/sessions/:session_id/charge", paymentCtrl.ChargeSession)
	}

	api.GET("/sessions", sessionCtrl.GetAllSessions)
	api.GET("/sessions/:session_id", sessionCtrl.GetSession)
	api.GET("/sessions/:session_id/totals", sessionCtrl.GetSessionTotals)
	api.GET("/sessions/:session_id/payments", paymentCtrl.GetSessionPayments)
	api.GET("/sessions/:session_id/receipt", receiptCtrl.GetSessionReceipt)

	// PART ORDERS (status moves are authorized per role inside the
	// service, not here: the permission table is the single check)
	api.GET("/part-orders/:part_order_id", partOrderCtrl.GetPartOrder)
	api.PATCH("/part-orders/:part_order_id/status", partOrderCtrl.UpdateStatus)
	api.POST("/part-orders/:part_order_id/print", partOrderCtrl.MarkPrinted)

	kitchen := api.Group("/kitchen")
	kitchen.Use(middlewares.RequireRole(models.RoleKitchen))
	{
		kitchen.GET("/queue", partOrderCtrl.GetKitchenQueue)
	}

	// WHOLE ORDERS (takeaway/delivery path)
	api.GET("/orders", orderCtrl.GetAllOrders)
	api.POST("/orders", orderCtrl.CreateOrder)
	api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	api.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

	api.GET("/receipts/:receipt_id", receiptCtrl.GetReceipt)

	// ADMIN (catalog, tables, users, payment overrides)
	admin := api.Group("/admin")
	admin.Use(middlewares.RequireRole())
	{
		admin.GET("/users", userCtrl.GetAllUsers)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:category_id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

		admin.POST("/menus", menuCtrl.CreateMenu)
		admin.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
		admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

		admin.GET("/tables", tableCtrl.GetAllTables)
		admin.POST("/tables", tableCtrl.CreateTable)
		admin.PATCH("/tables/:table_id", tableCtrl.UpdateTableStatus)

		admin.PATCH("/sessions/:session_id/payment-status", sessionCtrl.SetPaymentStatus)
		admin.POST("/sessions/:session_id/refund", paymentCtrl.RefundSession)
	}

	return r
}
