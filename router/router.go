package router

import (
	"github.com/gin-gonic/gin"
	"github.com/saveursmaghreb/storefront/controllers"
	"github.com/saveursmaghreb/storefront/livefeed"
	"github.com/saveursmaghreb/storefront/middlewares"
	"github.com/saveursmaghreb/storefront/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	return SetupRouterWith(db, services.GetStripeService(), services.GetMailerService())
}

// SetupRouterWith wires the routes against explicit payment and mail services;
// tests pass mocks here.
func SetupRouterWith(db *gorm.DB, stripe *services.StripeService, mailer controllers.OrderMailer) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	menuController := controllers.NewMenuController()
	cartController := controllers.NewCartController()
	checkoutController := controllers.NewCheckoutController(stripe, cartController)
	webhookController := controllers.NewWebhookController(
		stripe,
		services.NewOrderService(db),
		mailer,
	)
	orderController := controllers.NewOrderController(db, stripe.RestaurantID())
	userController := controllers.NewUserController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Catalog
	r.GET("/menus", menuController.GetAllMenus)
	r.GET("/menus/:menu_id", menuController.GetMenuByID)
	r.GET("/categories", menuController.GetAllCategories)

	// Session cart
	cart := r.Group("/cart")
	{
		cart.GET("", cartController.GetCart)
		cart.POST("/items", cartController.AddItem)
		cart.PATCH("/items/:item_id", cartController.UpdateItem)
		cart.DELETE("/items/:item_id", cartController.RemoveItem)
	}

	// Payment handoff and webhook
	payment := r.Group("/")
	payment.Use(middlewares.PaymentSecurityHeaders())
	payment.Use(middlewares.PaymentRateLimiter())
	payment.Use(middlewares.LogPaymentRequest())
	{
		payment.POST("/create-checkout-session", checkoutController.CreateCheckoutSession)
		payment.POST("/checkout", checkoutController.Checkout)
		payment.POST("/stripe/webhook", webhookController.HandleStripeWebhook)
	}

	// Post-payment confirmation lookup
	r.GET("/order-number", orderController.LookupOrder)

	// Back-office live feed
	r.GET("/orders/ws", livefeed.Handler)

	// Back-office accounts
	strict := middlewares.NewStrictRateLimiter()
	r.POST("/register", strict, userController.Register)
	r.POST("/login", strict, userController.Login)

	// Back-office order views
	authorized := r.Group("/")
	authorized.Use(middlewares.AuthMiddleware())
	{
		authorized.GET("/orders", orderController.GetAllOrders)
		authorized.GET("/orders/:order_id", orderController.GetOrderByID)
	}

	return r
}
