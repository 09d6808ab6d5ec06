package api

import (
	"log"
	stdhttp "net/http"

	intconfig "bookingapi/internal/config"
	h "bookingapi/internal/http/handlers"
	"bookingapi/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, handlers *h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// original single endpoint
	mountBookings(r.Group("/book"), handlers)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/db-check", handlers.DBCheck)
		api.GET("/routes", handlers.Routes)

		bookings := api.Group("/bookings")
		mountBookings(bookings, handlers)
		bookings.GET("/:id/confirmation", handlers.GetBookingConfirmation)
	}

	handlers.SetRoutes(r.Routes)
	return r
}

func mountBookings(g *gin.RouterGroup, handlers *h.Handlers) {
	g.GET("", handlers.LookupBookings)
	g.POST("", handlers.CreateBooking)
	g.PUT("", handlers.UpdateBooking)
}
