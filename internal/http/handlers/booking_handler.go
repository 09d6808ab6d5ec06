package handlers

import (
	"net/http"

	"bookingapi/internal/domain"
	"bookingapi/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type bookingEnvelope struct {
	Data *models.BookingInput `json:"data"`
}

type lookupEnvelope struct {
	Data *models.BookingFilter `json:"data"`
}

// LookupBookings handles GET /book. The filter comes from the
// {"data": {...}} body, or from ?firstname=&lastname= when no body is sent.
func (h *Handlers) LookupBookings(c *gin.Context) {
	var filter models.BookingFilter
	if hasBody(c) {
		var env lookupEnvelope
		if err := bindEnvelope(c, &env); err != nil {
			RespondDomainError(c, err)
			return
		}
		if env.Data == nil {
			RespondDomainError(c, domain.ValidationError{Field: "data", Msg: "is required"})
			return
		}
		filter = *env.Data
	} else if err := c.ShouldBindQuery(&filter); err != nil {
		RespondDomainError(c, domain.ValidationError{Msg: "invalid query parameters", Err: err})
		return
	}

	list, err := h.bookings(c).Lookup(c.Request.Context(), filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// CreateBooking handles POST /book.
func (h *Handlers) CreateBooking(c *gin.Context) {
	in, err := bindBookingInput(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	b, err := h.bookings(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": b,
	})
}

// UpdateBooking handles PUT /book. The target is found by firstname and
// lastname; only num_people and booking_datetime change.
func (h *Handlers) UpdateBooking(c *gin.Context) {
	in, err := bindBookingInput(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	b, err := h.bookings(c).Update(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated successfully",
		"booking": b,
	})
}

func bindBookingInput(c *gin.Context) (models.BookingInput, error) {
	var env bookingEnvelope
	if err := bindEnvelope(c, &env); err != nil {
		return models.BookingInput{}, err
	}
	if env.Data == nil {
		return models.BookingInput{}, domain.ValidationError{Field: "data", Msg: "is required"}
	}
	return *env.Data, nil
}
