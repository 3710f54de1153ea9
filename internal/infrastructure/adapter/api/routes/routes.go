package routes

import (
	coreport "github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/handler"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	tokens *auth.TokenService,
	userHandler *handler.UserHandler,
	stationHandler *handler.StationHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
) {
	authRequired := middleware.Auth(tokens)

	v1 := router.Group("/v1")

	// User routes
	userRoutes := v1.Group("/user")
	{
		userRoutes.POST("/register", userHandler.Register)
		userRoutes.POST("/login", userHandler.Login)
		userRoutes.POST("/verify", userHandler.Verify)
		userRoutes.GET("/profile", authRequired, userHandler.Profile)
		userRoutes.GET("/wallet", authRequired, userHandler.Wallet)
		userRoutes.POST("/vehicle", authRequired, userHandler.RegisterVehicle)
		userRoutes.GET("/users", userHandler.ListUsers)
		userRoutes.DELETE("/users/:id", userHandler.DeleteUser)
	}

	// Station routes
	stationRoutes := v1.Group("/station")
	{
		stationRoutes.POST("/station-login", stationHandler.Login)
		stationRoutes.POST("/worker-login", stationHandler.WorkerLogin)
		stationRoutes.POST("/worker-register", authRequired, stationHandler.RegisterWorker)
		stationRoutes.PATCH("/availability", authRequired, stationHandler.SetAvailability)
		stationRoutes.PATCH("/price", authRequired, stationHandler.SetPrice)
		stationRoutes.GET("/stations", stationHandler.ListStations)
	}

	// Order routes
	orderRoutes := v1.Group("/order")
	{
		orderRoutes.POST("/create", authRequired, orderHandler.CreateOrder)
		orderRoutes.GET("/user-orders", authRequired, orderHandler.UserOrders)
		orderRoutes.GET("/station-orders", authRequired, orderHandler.StationOrders)
		orderRoutes.GET("/slots", orderHandler.Slots)
	}

	// Admin routes
	adminRoutes := v1.Group("/admin")
	{
		adminRoutes.POST("/admin-register", adminHandler.Register)
		adminRoutes.POST("/admin-login", adminHandler.Login)
		adminRoutes.POST("/station-register", authRequired, adminHandler.RegisterStation)
		adminRoutes.GET("/get-users", userHandler.ListUsers)
		adminRoutes.DELETE("/delete-users/:id", userHandler.DeleteUser)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
