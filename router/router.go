package router

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/controllers"
	"github.com/vuminhtri/qr-dine/middlewares"
	"github.com/vuminhtri/qr-dine/session"
	"gorm.io/gorm"
)

// SetupRouter merakit seluruh rute HTTP. Rute publik melayani halaman
// customer (tanpa login), grup /admin dilindungi JWT.
func SetupRouter(db *gorm.DB, sessions *session.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	authCtrl := controllers.NewAuthController(db, sessions)
	productCtrl := controllers.NewProductController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	tableCtrl := controllers.NewTableController(db)
	staffCtrl := controllers.NewStaffController(db)
	orderCtrl := controllers.NewOrderController(db, sessions)
	settingsCtrl := controllers.NewSettingsController(db)
	logCtrl := controllers.NewLogController(db)
	statsCtrl := controllers.NewStatsController(db)
	receiptCtrl := controllers.NewReceiptController(db)
	sessionCtrl := controllers.NewSessionController(sessions)
	healthCtrl := controllers.NewHealthController(db)

	registerPages(r)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/health", healthCtrl.Check)

	// Rate limiter ketat khusus login
	loginGroup := r.Group("/")
	loginGroup.Use(middlewares.NewStrictRateLimiter())
	{
		loginGroup.POST("/login", authCtrl.Login)
	}
	r.POST("/logout", authCtrl.Logout)

	// Stream perubahan realtime; topik dipilih lewat query ?topics=
	r.GET("/ws", controllers.HandleWebSocket)
	// Varian dashboard: token wajib lewat query string karena browser tidak
	// bisa mengirim header Authorization saat handshake websocket
	r.GET("/admin/ws", middlewares.WebSocketAuthMiddleware(), controllers.HandleWebSocket)

	// -- CUSTOMER (tanpa auth) --
	r.GET("/menus", productCtrl.GetAllProducts)
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/:table_id/qrcode", tableCtrl.GetTableQRCode)
	r.GET("/settings", settingsCtrl.GetSettings)

	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.GET("/orders/:order_id/receipt", receiptCtrl.GetOrderReceipt)
	r.GET("/tables/:table_id/orders", orderCtrl.GetOrdersByTable)

	// Sesi meja dan nama customer
	r.GET("/tables/:table_id/session", sessionCtrl.GetTableSession)
	r.PUT("/tables/:table_id/session", sessionCtrl.SaveTableSession)
	r.DELETE("/tables/:table_id/session", sessionCtrl.ClearTableSession)
	r.GET("/customers/:client_key/name", sessionCtrl.GetCustomerName)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES (JWT)
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.GET("/profile", authCtrl.GetProfile)

		admin.GET("/products", productCtrl.GetAllProducts)
		admin.POST("/products", productCtrl.SaveProduct)
		admin.DELETE("/products/:product_id", productCtrl.DeleteProduct)

		admin.POST("/categories", categoryCtrl.SaveCategory)
		admin.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

		admin.POST("/tables", tableCtrl.SaveTable)
		admin.PATCH("/tables/:table_id/status", tableCtrl.UpdateTableStatus)
		admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

		admin.GET("/staffs", staffCtrl.GetAllStaffs)
		admin.POST("/staffs", staffCtrl.SaveStaff)
		admin.DELETE("/staffs/:staff_id", staffCtrl.DeleteStaff)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

		admin.POST("/settings", settingsCtrl.SaveSettings)
		admin.GET("/logs", logCtrl.GetLogs)
		admin.GET("/stats", statsCtrl.GetSalesStats)
	}

	return r
}

// registerPages melayani tiga entry point HTML. "/" dengan ?table= membuka
// halaman customer, tanpa parameter membuka landing; "/admin" adalah
// dashboard staff (API-nya di bawah /admin/*).
func registerPages(r *gin.Engine) {
	workDir, _ := os.Getwd()
	webPath := filepath.Join(workDir, "web")
	if _, err := os.Stat(webPath); os.IsNotExist(err) {
		return
	}

	r.Static("/assets", filepath.Join(webPath, "assets"))

	r.GET("/", func(c *gin.Context) {
		if c.Query("table") != "" {
			c.File(filepath.Join(webPath, "customer.html"))
			return
		}
		c.File(filepath.Join(webPath, "landing.html"))
	})
	r.GET("/admin", func(c *gin.Context) {
		c.File(filepath.Join(webPath, "admin.html"))
	})
}
