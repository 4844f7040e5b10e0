package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/handlers"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	catalogHandler   *handlers.CatalogHandler
	orderHandler     *handlers.OrderHandler
	vendorHandler    *handlers.VendorHandler
	adminHandler     *handlers.AdminHandler
	reviewHandler    *handlers.ReviewHandler
	flashSaleHandler *handlers.FlashSaleHandler
	messageHandler   *handlers.MessageHandler
	authMiddleware   gin.HandlerFunc
}

func registerRootRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to SamiShops API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", d.authHandler.Register)
	r.POST("/login", d.authHandler.Login)
	r.POST("/logout", d.authHandler.Logout)
	r.GET("/me", d.authMiddleware, d.authHandler.Me)
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Catalog routes (public)
		v1.GET("/categories", d.catalogHandler.ListCategories)
		v1.GET("/products", d.catalogHandler.ListProducts)
		v1.GET("/products/:id", d.catalogHandler.GetProduct)
		v1.GET("/products/:id/reviews", d.reviewHandler.ListReviews)
		v1.GET("/search", d.catalogHandler.SearchProducts)
		v1.GET("/flash-sales/active", d.flashSaleHandler.ListActive)

		// Product management (vendor role, public paths)
		products := v1.Group("/products")
		products.Use(d.authMiddleware, middleware.RequireVendor())
		{
			products.POST("", d.vendorHandler.CreateProduct)
			products.PATCH("/:id", d.vendorHandler.UpdateProduct)
			products.DELETE("/:id", d.vendorHandler.DeleteProduct)
		}

		// Review routes (protected)
		reviews := v1.Group("")
		reviews.Use(d.authMiddleware)
		{
			reviews.POST("/products/:id/reviews", d.reviewHandler.CreateReview)
			reviews.PATCH("/reviews/:id", d.reviewHandler.UpdateReview)
			reviews.DELETE("/reviews/:id", d.reviewHandler.DeleteReview)
		}

		// Order routes (protected)
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.POST("", middleware.IdempotencyMiddleware(), d.orderHandler.CreateOrder)
			orders.GET("", d.orderHandler.ListMyOrders)
			orders.GET("/:id", d.orderHandler.GetOrder)
			orders.GET("/:id/history", d.orderHandler.ListStatusHistory)
			orders.PATCH("/:id/status", d.orderHandler.UpdateStatus)
		}

		// Message routes (protected)
		messages := v1.Group("/messages")
		messages.Use(d.authMiddleware)
		{
			messages.POST("", d.messageHandler.SendMessage)
			messages.GET("", d.messageHandler.ListMessages)
			messages.PATCH("/:id/read", d.messageHandler.MarkRead)
		}

		// Vendor routes (vendor role)
		vendor := v1.Group("/vendor")
		vendor.Use(d.authMiddleware, middleware.RequireVendor())
		{
			vendor.POST("/store", d.vendorHandler.CreateStore)
			vendor.GET("/store", d.vendorHandler.GetStore)
			vendor.GET("/products", d.vendorHandler.ListProducts)
			vendor.GET("/orders", d.vendorHandler.ListOrders)
			vendor.GET("/earnings", d.vendorHandler.ListEarnings)
			vendor.GET("/earnings/summary", d.vendorHandler.EarningsSummary)
			vendor.POST("/payouts", d.vendorHandler.RequestPayout)
			vendor.GET("/payouts", d.vendorHandler.ListPayouts)
			vendor.GET("/reports", d.vendorHandler.SalesReport)
		}

		// Admin routes (admin role)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PUT("/users/:id", d.adminHandler.UpdateUser)
			admin.PUT("/users/:id/role", d.adminHandler.UpdateUserRole)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)

			admin.POST("/categories", d.catalogHandler.CreateCategory)
			admin.DELETE("/categories/:id", d.catalogHandler.DeleteCategory)

			admin.GET("/payouts", d.adminHandler.ListPayouts)
			admin.PUT("/payouts/:id/status", d.adminHandler.UpdatePayoutStatus)

			admin.POST("/commissions", d.adminHandler.CreateCommission)
			admin.GET("/commissions", d.adminHandler.ListCommissions)
			admin.PUT("/commissions/:id/default", d.adminHandler.SetDefaultCommission)
			admin.DELETE("/commissions/:id", d.adminHandler.DeleteCommission)

			admin.POST("/flash-sales", d.flashSaleHandler.CreateFlashSale)
			admin.GET("/flash-sales", d.flashSaleHandler.ListFlashSales)
			admin.GET("/flash-sales/:id", d.flashSaleHandler.GetFlashSale)
			admin.PATCH("/flash-sales/:id", d.flashSaleHandler.UpdateFlashSale)
			admin.DELETE("/flash-sales/:id", d.flashSaleHandler.DeleteFlashSale)
		}
	}
}
