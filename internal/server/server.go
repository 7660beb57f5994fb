package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/veilandvest/backoffice/config"
	"github.com/veilandvest/backoffice/internal/handlers"
	"github.com/veilandvest/backoffice/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		productPublic := public.Group("/products")
		{
			productPublic.GET("", handlers.ListProductItems)
			productPublic.GET("/:id", handlers.GetProductItem)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		userProtected := protected.Group("/users")
		{
			userProtected.GET("", handlers.ListUsers)
			userProtected.GET("/:id", handlers.GetUser)
			userProtected.PUT("/:id", handlers.UpdateUser)
			userProtected.POST("/:id/activate", handlers.ActivateUser)
		}
		protected.GET("/user-lookup", handlers.GetUserByEmail)

		eventProtected := protected.Group("/events")
		{
			eventProtected.GET("", handlers.ListEvents)
			eventProtected.GET("/:id", handlers.GetEvent)
			eventProtected.POST("", handlers.CreateEvent)
			eventProtected.PUT("/:id", handlers.UpdateEvent)
			eventProtected.DELETE("/:id", handlers.DeactivateEvent)
		}

		attendeeProtected := protected.Group("/attendees")
		{
			attendeeProtected.GET("", handlers.ListAttendees)
			attendeeProtected.GET("/:id", handlers.GetAttendee)
			attendeeProtected.POST("", handlers.CreateAttendee)
			attendeeProtected.PUT("/:id", handlers.UpdateAttendee)
		}

		lookProtected := protected.Group("/looks")
		{
			lookProtected.GET("", handlers.ListLooks)
			lookProtected.GET("/:id", handlers.GetLook)
			lookProtected.POST("", handlers.CreateLook)
			lookProtected.PUT("/:id", handlers.UpdateLook)
			lookProtected.DELETE("/:id", handlers.DeactivateLook)
		}

		orderProtected := protected.Group("/orders")
		{
			orderProtected.GET("", handlers.ListOrders)
			orderProtected.GET("/:id", handlers.GetOrder)
			orderProtected.POST("", handlers.CreateOrder)
			orderProtected.PUT("/:id", handlers.UpdateOrder)
			orderProtected.POST("/:id/items", handlers.CreateOrderItem)
		}
		protected.PUT("/order-items/:id", handlers.UpdateOrderItem)

		discountProtected := protected.Group("/discounts")
		{
			discountProtected.GET("", handlers.ListDiscounts)
			discountProtected.GET("/:id", handlers.GetDiscount)
			discountProtected.POST("", handlers.CreateDiscount)
			discountProtected.POST("/:id/redeem", handlers.RedeemDiscount)
		}

		rmaProtected := protected.Group("/rmas")
		{
			rmaProtected.GET("", handlers.ListRMAs)
			rmaProtected.GET("/:id", handlers.GetRMA)
			rmaProtected.POST("", handlers.CreateRMA)
			rmaProtected.PUT("/:id", handlers.UpdateRMA)
			rmaProtected.POST("/:id/items", handlers.CreateRMAItem)
		}
		protected.PUT("/rma-items/:id", handlers.UpdateRMAItem)

		productProtected := protected.Group("/products")
		{
			productProtected.POST("", handlers.CreateProductItem)
			productProtected.PUT("/:id", handlers.UpdateProductItem)
			productProtected.DELETE("/:id", handlers.DeactivateProductItem)
		}
	}
}
