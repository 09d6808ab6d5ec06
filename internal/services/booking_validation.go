package services

import (
	"strings"

	"bookingapi/internal/domain"
	"bookingapi/internal/domain/models"
)

// ValidateBookingInput checks presence and shape of every field. Values are
// returned as given; booking_datetime is not parsed.
func ValidateBookingInput(in models.BookingInput) (models.BookingFields, error) {
	var out models.BookingFields

	if in.Firstname == nil {
		return out, domain.ValidationError{Field: "firstname", Msg: "is required"}
	}
	if strings.TrimSpace(*in.Firstname) == "" {
		return out, domain.ValidationError{Field: "firstname", Msg: "must not be empty"}
	}
	if in.Lastname == nil {
		return out, domain.ValidationError{Field: "lastname", Msg: "is required"}
	}
	if strings.TrimSpace(*in.Lastname) == "" {
		return out, domain.ValidationError{Field: "lastname", Msg: "must not be empty"}
	}
	if in.NumPeople == nil {
		return out, domain.ValidationError{Field: "num_people", Msg: "is required"}
	}
	if *in.NumPeople <= 0 {
		return out, domain.ValidationError{Field: "num_people", Msg: "must be a positive integer"}
	}
	if in.BookingDatetime == nil {
		return out, domain.ValidationError{Field: "booking_datetime", Msg: "is required"}
	}
	if strings.TrimSpace(*in.BookingDatetime) == "" {
		return out, domain.ValidationError{Field: "booking_datetime", Msg: "must not be empty"}
	}

	out.Firstname = *in.Firstname
	out.Lastname = *in.Lastname
	out.NumPeople = *in.NumPeople
	out.BookingDatetime = *in.BookingDatetime
	return out, nil
}
