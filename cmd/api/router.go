package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafepos-backend/internal/shared/middleware"
	"cafepos-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupCouponRoutes(v1, c)
		setupMenuRoutes(v1, c)
		setupInventoryRoutes(v1, c)
		setupOrderRoutes(v1, c)
		setupSyncRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}
}

// ========================================
// USER ROUTES (admin only)
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		users.POST("", c.UserHandler.CreateUser)
		users.GET("", c.UserHandler.ListUsers)
		users.DELETE("/:id", c.UserHandler.DeleteUser)
	}
}

// ========================================
// COUPON ROUTES
// ========================================
func setupCouponRoutes(v1 *gin.RouterGroup, c *container.Container) {
	coupons := v1.Group("/coupons")
	coupons.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		coupons.POST("", c.CouponHandler.CreateCoupon)
		coupons.GET("", c.CouponHandler.ListCoupons)
		coupons.GET("/:id", c.CouponHandler.GetCoupon)
		coupons.POST("/:id/use", c.CouponHandler.UseCoupon)
		coupons.POST("/redeem", c.CouponHandler.UseMultipleCoupons)
		coupons.POST("/:id/refund", c.CouponHandler.RefundCoupon)
		coupons.DELETE("/:id", middleware.AdminMiddleware(), c.CouponHandler.DeleteCoupon)
	}
}

// ========================================
// MENU ROUTES
// ========================================
func setupMenuRoutes(v1 *gin.RouterGroup, c *container.Container) {
	menu := v1.Group("/menu")
	menu.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		menu.POST("", c.MenuHandler.CreateMenuItem)
		menu.GET("", c.MenuHandler.ListMenuItems)
		menu.GET("/export", c.MenuHandler.ExportMenu)
		menu.POST("/import", c.MenuHandler.ImportMenu)
		menu.GET("/:id", c.MenuHandler.GetMenuItem)
		menu.PATCH("/:id", c.MenuHandler.UpdateMenuItem)
		menu.POST("/:id/sold-out", c.MenuHandler.SetSoldOut)
		menu.DELETE("/:id", middleware.AdminMiddleware(), c.MenuHandler.DeleteMenuItem)
	}
}

// ========================================
// INVENTORY ROUTES
// ========================================
func setupInventoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	inventory := v1.Group("/inventory")
	inventory.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		inventory.POST("", c.InventoryHandler.CreateItem)
		inventory.GET("", c.InventoryHandler.ListItems)
		inventory.GET("/low-stock", c.InventoryHandler.ListLowStock)
		inventory.GET("/:id", c.InventoryHandler.GetItem)
		inventory.PATCH("/:id", c.InventoryHandler.UpdateItem)
		inventory.POST("/:id/adjust", c.InventoryHandler.AdjustQuantity)
		inventory.DELETE("/:id", middleware.AdminMiddleware(), c.InventoryHandler.DeleteItem)
	}
}

// ========================================
// ORDER ROUTES
// ========================================
func setupOrderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	orders := v1.Group("/orders")
	orders.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		orders.POST("", c.OrderHandler.CreateOrder)
		orders.GET("", c.OrderHandler.ListOrders)
		orders.GET("/export", c.OrderHandler.ExportOrders)
		orders.GET("/:id", c.OrderHandler.GetOrder)
		orders.POST("/:id/cancel", c.OrderHandler.CancelOrder)
	}
}

// ========================================
// SYNC ROUTES
// ========================================
func setupSyncRoutes(v1 *gin.RouterGroup, c *container.Container) {
	sync := v1.Group("/sync")
	sync.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		sync.POST("", c.SyncHandler.TriggerSync)
		sync.GET("/status", c.SyncHandler.SyncStatus)
		sync.PUT("/credential", c.SyncHandler.SetCredential)
	}
}

// healthCheckHandler trả trạng thái service
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"app":     c.Config.App.Name,
			"version": c.Config.App.Version,
			"offline": c.AuthGate.Offline(),
		})
	}
}
