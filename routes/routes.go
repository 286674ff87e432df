package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rafaslide/carddz/handlers"
	"github.com/rafaslide/carddz/middleware"
	"github.com/rafaslide/carddz/models"
)

func SetupRoutes(r *gin.Engine, cartAPI *handlers.CartAPI) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog browsing (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/categories", handlers.ListCategories)
		public.GET("/restaurants/:id/products", handlers.ListProducts)

		// Status enumeration (docs/Postman)
		public.GET("/order-statuses", handlers.GetOrderStatuses)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		// Cart
		customer.GET("/cart", cartAPI.GetCart)
		customer.POST("/cart/items", cartAPI.AddItem)
		customer.PUT("/cart/items/:productId", cartAPI.UpdateItemQuantity)
		customer.DELETE("/cart/items/:productId", cartAPI.RemoveItem)
		customer.DELETE("/cart", cartAPI.ClearCart)

		// Orders
		customer.POST("/orders", cartAPI.Checkout)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
		customer.GET("/orders/:id/whatsapp", handlers.GetOrderWhatsAppLink)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		// Profile
		restaurant.GET("/", handlers.GetMyRestaurant)
		restaurant.PUT("/", handlers.UpdateMyRestaurant)

		// Categories
		restaurant.POST("/categories", handlers.CreateCategory)
		restaurant.PUT("/categories/:categoryId", handlers.UpdateCategory)
		restaurant.DELETE("/categories/:categoryId", handlers.DeleteCategory)

		// Products
		restaurant.POST("/products", handlers.CreateProduct)
		restaurant.PUT("/products/:productId", handlers.UpdateProduct)
		restaurant.DELETE("/products/:productId", handlers.DeleteProduct)

		// Customization options and items
		restaurant.POST("/products/:productId/options", handlers.CreateCustomizationOption)
		restaurant.PUT("/options/:optionId", handlers.UpdateCustomizationOption)
		restaurant.DELETE("/options/:optionId", handlers.DeleteCustomizationOption)
		restaurant.POST("/options/:optionId/items", handlers.CreateCustomizationItem)
		restaurant.PUT("/option-items/:itemId", handlers.UpdateCustomizationItem)
		restaurant.DELETE("/option-items/:itemId", handlers.DeleteCustomizationItem)

		// Order board
		restaurant.GET("/orders", handlers.GetRestaurantOrders)
		restaurant.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/restaurants", handlers.AdminCreateRestaurant)
		admin.PUT("/restaurants/:id", handlers.AdminUpdateRestaurant)
		admin.DELETE("/restaurants/:id", handlers.AdminDeleteRestaurant)
		admin.GET("/restaurants", handlers.AdminGetAllRestaurants)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/orders", handlers.AdminGetAllOrders)
	}
}
