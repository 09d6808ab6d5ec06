package services

import (
	"context"
	"database/sql"
	"fmt"

	intdb "bookingapi/internal/db"
	"bookingapi/internal/domain"
	"bookingapi/internal/domain/models"
	"bookingapi/internal/repositories"
	"bookingapi/internal/utils"
)

// BookingService validates booking requests and runs each one against its
// own connection borrowed from DB.
type BookingService struct {
	DB        *sql.DB
	Dialect   intdb.Dialect
	RequestID string
}

// withRepo borrows a connection for the duration of fn and always returns it
// to the pool, including on error paths.
func (s BookingService) withRepo(ctx context.Context, fn func(repositories.BookingRepository) error) error {
	if s.DB == nil {
		return domain.StorageError{Op: "acquire connection", Err: fmt.Errorf("database not configured")}
	}
	conn, err := s.DB.Conn(ctx)
	if err != nil {
		return domain.StorageError{Op: "acquire connection", Err: err}
	}
	defer conn.Close()

	return fn(repositories.BookingRepository{DB: conn, Dialect: s.Dialect})
}

// Create validates in and stores it as a new booking.
func (s BookingService) Create(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	fields, err := ValidateBookingInput(in)
	if err != nil {
		return models.Booking{}, err
	}

	var out models.Booking
	err = s.withRepo(ctx, func(repo repositories.BookingRepository) error {
		out, err = repo.Insert(ctx, fields)
		return err
	})
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("id=%d num_people=%d", out.ID, out.NumPeople))
	return out, nil
}

// Lookup returns the bookings matching filter. No match is an empty slice.
func (s BookingService) Lookup(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	var out []models.Booking
	err := s.withRepo(ctx, func(repo repositories.BookingRepository) error {
		var err error
		out, err = repo.Find(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "booking", "lookup", fmt.Sprintf("matched=%d", len(out)))
	return out, nil
}

// Update changes num_people and booking_datetime of the newest booking with
// the given name pair. domain.NotFoundError is returned when none exists.
func (s BookingService) Update(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	fields, err := ValidateBookingInput(in)
	if err != nil {
		return models.Booking{}, err
	}

	var out models.Booking
	err = s.withRepo(ctx, func(repo repositories.BookingRepository) error {
		out, err = repo.Update(ctx, fields)
		return err
	})
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "update", fmt.Sprintf("id=%d num_people=%d", out.ID, out.NumPeople))
	return out, nil
}

// Get fetches a booking by id.
func (s BookingService) Get(ctx context.Context, id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	var out models.Booking
	err := s.withRepo(ctx, func(repo repositories.BookingRepository) error {
		var err error
		out, err = repo.GetByID(ctx, id)
		return err
	})
	return out, err
}

// Count reports how many bookings are stored.
func (s BookingService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.withRepo(ctx, func(repo repositories.BookingRepository) error {
		var err error
		n, err = repo.Count(ctx)
		return err
	})
	return n, err
}
