package handlers

import (
	"net/http"
	"strconv"

	"bookingapi/internal/http/middleware"
	"bookingapi/internal/services"

	"github.com/gin-gonic/gin"
)

// GetBookingConfirmation returns the booking confirmation PDF (inline).
func (h *Handlers) GetBookingConfirmation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "id: must be a positive integer")
		return
	}

	svc := services.ConfirmationService{
		Loader:    h.bookings(c).Get,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.Generate(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
