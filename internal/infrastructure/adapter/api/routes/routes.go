package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cacheport "github.com/rsvtravel/booking-engine/internal/domain/port/cache"
	coreport "github.com/rsvtravel/booking-engine/internal/domain/port/core"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/api/handler"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	bookingHandler *handler.BookingHandler,
	auctionHandler *handler.AuctionHandler,
	store cacheport.KeyValueStore,
) {
	// Booking routes
	bookingRoutes := router.Group("/bookings")
	{
		bookingRoutes.POST("", bookingHandler.CreateBooking)
		bookingRoutes.GET("/:id", bookingHandler.GetBooking)
		bookingRoutes.PATCH("/:id", bookingHandler.UpdateBooking)
		bookingRoutes.POST("/:id/confirm", bookingHandler.ConfirmBooking)
		bookingRoutes.POST("/:id/cancel", bookingHandler.CancelBooking)
	}

	// GET /availability?propertyId=&checkIn=&checkOut=
	router.GET("/availability", bookingHandler.CheckAvailability)

	// Auction routes
	auctionRoutes := router.Group("/auctions")
	{
		auctionRoutes.POST("", auctionHandler.CreateAuction)
		auctionRoutes.GET("/:id", auctionHandler.GetAuction)
		auctionRoutes.POST("/:id/bids", auctionHandler.PlaceBid)
		auctionRoutes.GET("/:id/bids", auctionHandler.GetBids)
	}

	// Booking telemetry
	router.GET("/metrics/bookings", bookingHandler.GetMetrics)
	router.POST("/metrics/bookings/reset", bookingHandler.ResetMetrics)

	// Health check; degraded cache does not fail the process, only reports
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		cacheStatus := "ok"
		if err := store.Ping(c.Request.Context()); err != nil {
			status = "degraded"
			cacheStatus = "unavailable"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"cache":  cacheStatus,
		})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
