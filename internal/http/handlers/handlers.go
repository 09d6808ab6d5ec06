package handlers

import (
	"database/sql"

	intdb "bookingapi/internal/db"
	"bookingapi/internal/http/middleware"
	"bookingapi/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers holds what request handlers need to reach the store. Only the
// pool is shared; each request borrows its own connection through the
// services layer.
type Handlers struct {
	DB      *sql.DB
	Dialect intdb.Dialect

	routes func() gin.RoutesInfo
}

func New(db *sql.DB, dialect intdb.Dialect) *Handlers {
	return &Handlers{DB: db, Dialect: dialect}
}

// SetRoutes registers the source for /api/routes.
func (h *Handlers) SetRoutes(fn func() gin.RoutesInfo) {
	h.routes = fn
}

func (h *Handlers) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{
		DB:        h.DB,
		Dialect:   h.Dialect,
		RequestID: middleware.GetRequestID(c),
	}
}
