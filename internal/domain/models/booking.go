package models

// Booking is a stored reservation. BookingDatetime is kept verbatim
// ("YYYY-MM-DD HH:MM:SS" by convention) and never parsed.
type Booking struct {
	ID              int64  `json:"id"`
	Firstname       string `json:"firstname"`
	Lastname        string `json:"lastname"`
	NumPeople       int    `json:"num_people"`
	BookingDatetime string `json:"booking_datetime"`
}

// BookingInput carries the fields of a create or update request. Pointer
// fields distinguish an absent key from a zero value.
type BookingInput struct {
	Firstname       *string `json:"firstname"`
	Lastname        *string `json:"lastname"`
	NumPeople       *int    `json:"num_people"`
	BookingDatetime *string `json:"booking_datetime"`
}

// BookingFields is a validated BookingInput.
type BookingFields struct {
	Firstname       string
	Lastname        string
	NumPeople       int
	BookingDatetime string
}

// BookingFilter selects bookings by exact name match. Empty fields match
// everything.
type BookingFilter struct {
	Firstname string `json:"firstname" form:"firstname"`
	Lastname  string `json:"lastname" form:"lastname"`
}
