package router

import (
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/controllers"
	"github.com/rkarthik/hotel-backend/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	roomCtrl := controllers.NewRoomController(db)
	customerCtrl := controllers.NewCustomerController(db)
	bookingCtrl := controllers.NewBookingController(db)
	kitchenCtrl := controllers.NewKitchenController(db)
	billingCtrl := controllers.NewBillingController(db)
	addOnCtrl := controllers.NewAddOnController(db)
	expenseCtrl := controllers.NewExpenseController(db)
	gstCtrl := controllers.NewGSTController(db)
	staffCtrl := controllers.NewStaffController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	dashboardCache := gocache.New(30*time.Second, time.Minute)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/api/auth")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}
	r.GET("/api/auth/staff-list", userCtrl.GetStaffList)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())

	auth.POST("/auth/logout", userCtrl.Logout)
	auth.GET("/auth/profile", userCtrl.GetProfile)
	auth.PUT("/auth/change-password", userCtrl.ChangePassword)

	// ROOMS
	auth.GET("/rooms", roomCtrl.GetAllRooms)
	auth.GET("/rooms/active", roomCtrl.GetActiveRooms)
	auth.GET("/rooms/:room_id", roomCtrl.GetRoomByID)
	auth.POST("/rooms", roomCtrl.CreateRoom)
	auth.PUT("/rooms/:room_id", roomCtrl.UpdateRoom)
	auth.DELETE("/rooms/:room_id", roomCtrl.DeleteRoom)

	// CUSTOMERS
	auth.GET("/customers", customerCtrl.GetAllCustomers)
	auth.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	auth.POST("/customers", customerCtrl.CreateCustomer)
	auth.PUT("/customers/:customer_id", customerCtrl.UpdateCustomer)
	auth.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)

	// BOOKINGS
	auth.GET("/bookings", bookingCtrl.GetAllBookings)
	auth.GET("/bookings/:booking_id", bookingCtrl.GetBookingByID)
	auth.POST("/bookings", bookingCtrl.CreateBooking)
	auth.PUT("/bookings/:booking_id", bookingCtrl.UpdateBooking)
	auth.DELETE("/bookings/:booking_id", bookingCtrl.DeleteBooking)

	// Checkout with its own audit logger
	checkoutGroup := auth.Group("/bookings")
	checkoutGroup.Use(middlewares.CheckoutLoggerMiddleware())
	{
		checkoutGroup.POST("/:booking_id/checkout", bookingCtrl.CheckoutBooking)
	}

	// KITCHEN
	auth.GET("/kitchen/items", kitchenCtrl.GetMenuItems)
	auth.GET("/kitchen/items/:item_id", kitchenCtrl.GetMenuItemByID)
	auth.POST("/kitchen/items", kitchenCtrl.CreateMenuItem)
	auth.PUT("/kitchen/items/:item_id", kitchenCtrl.UpdateMenuItem)
	auth.DELETE("/kitchen/items/:item_id", kitchenCtrl.DeleteMenuItem)
	auth.GET("/kitchen/categories", kitchenCtrl.GetCategories)
	auth.POST("/kitchen/categories", kitchenCtrl.CreateCategory)
	auth.DELETE("/kitchen/categories/:cat_id", kitchenCtrl.DeleteCategory)
	auth.GET("/kitchen/orders", kitchenCtrl.GetKitchenOrders)
	auth.POST("/kitchen/orders", kitchenCtrl.CreateKitchenOrder)
	auth.PUT("/kitchen/orders/:order_id", kitchenCtrl.UpdateKitchenOrderStatus)

	// ADD-ONS CATALOG
	auth.GET("/addons", addOnCtrl.GetAddOns)
	auth.POST("/addons", addOnCtrl.CreateAddOn)
	auth.PUT("/addons/:addon_id", addOnCtrl.UpdateAddOn)
	auth.DELETE("/addons/:addon_id", addOnCtrl.DeleteAddOn)

	// BILLINGS (read-only, written by checkout)
	auth.GET("/billings", billingCtrl.GetAllBillings)
	auth.GET("/billings/profit", middlewares.Cache(dashboardCache, 30*time.Second), dashboardCtrl.GetProfit)
	auth.GET("/billings/:billing_id", billingCtrl.GetBillingByID)

	// EXPENSES
	auth.GET("/expenses", expenseCtrl.GetExpenses)
	auth.POST("/expenses", expenseCtrl.CreateExpense)
	auth.DELETE("/expenses/:expense_id", expenseCtrl.DeleteExpense)

	// DASHBOARD
	auth.GET("/dashboard/summary", middlewares.Cache(dashboardCache, 30*time.Second), dashboardCtrl.GetSummary)

	// GST SETTINGS
	auth.GET("/gst-settings", gstCtrl.GetGSTSettings)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := auth.Group("/")
	admin.Use(middlewares.RequireAdmin())
	{
		admin.GET("/staff", staffCtrl.GetAllStaff)
		admin.POST("/staff", staffCtrl.CreateStaff)
		admin.PUT("/gst-settings", gstCtrl.UpdateGSTSettings)
	}

	// WebSocket endpoint for kitchen/checkout events
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/:role", controllers.KitchenWSHandler)
	}

	return r
}
