package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intdb "bookingapi/internal/db"
	"bookingapi/internal/domain"
	"bookingapi/internal/domain/models"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxQuerier is a Querier that can also open transactions (*sql.DB, *sql.Conn).
type TxQuerier interface {
	Querier
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

const bookingColumns = "id, firstname, lastname, num_people, booking_datetime"

// BookingRepository is the bookings store. It runs every statement on DB,
// which is normally a connection borrowed for a single request.
type BookingRepository struct {
	DB      TxQuerier
	Dialect intdb.Dialect
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.Firstname, &b.Lastname, &b.NumPeople, &b.BookingDatetime)
	return b, err
}

func notFound(err error) error {
	return domain.NotFoundError{Resource: "Booking", Err: err}
}

// Insert stores a new booking and returns it with the id assigned by the
// store's auto-increment.
func (r BookingRepository) Insert(ctx context.Context, f models.BookingFields) (models.Booking, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO bookings (firstname, lastname, num_people, booking_datetime)
		VALUES (?, ?, ?, ?)
	`, f.Firstname, f.Lastname, f.NumPeople, f.BookingDatetime)
	if err != nil {
		return models.Booking{}, domain.StorageError{Op: "insert booking", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, domain.StorageError{Op: "insert booking", Err: err}
	}
	return r.getByID(ctx, r.DB, id)
}

// GetByID fetches one booking by id.
func (r BookingRepository) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	return r.getByID(ctx, r.DB, id)
}

func (r BookingRepository) getByID(ctx context.Context, q Querier, id int64) (models.Booking, error) {
	row := q.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, notFound(err)
		}
		return models.Booking{}, domain.StorageError{Op: "get booking", Err: err}
	}
	return b, nil
}

// Find returns every booking matching the filter, oldest first. An empty
// filter field matches all values.
func (r BookingRepository) Find(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	where := []string{}
	args := []any{}
	if f.Firstname != "" {
		where = append(where, r.Dialect.NameEquals("firstname"))
		args = append(args, f.Firstname)
	}
	if f.Lastname != "" {
		where = append(where, r.Dialect.NameEquals("lastname"))
		args = append(args, f.Lastname)
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageError{Op: "find bookings", Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.StorageError{Op: "find bookings", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "find bookings", Err: err}
	}
	return out, nil
}

// FindOneByName returns the most recently created booking for the name pair.
func (r BookingRepository) FindOneByName(ctx context.Context, firstname, lastname string) (models.Booking, error) {
	return r.findOneByName(ctx, r.DB, firstname, lastname, false)
}

func (r BookingRepository) findOneByName(ctx context.Context, q Querier, firstname, lastname string, lock bool) (models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` +
		r.Dialect.NameEquals("firstname") + ` AND ` + r.Dialect.NameEquals("lastname") +
		` ORDER BY id DESC LIMIT 1`
	if lock {
		query += r.Dialect.LockClause
	}
	b, err := scanBooking(q.QueryRowContext(ctx, query, firstname, lastname))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, notFound(err)
		}
		return models.Booking{}, domain.StorageError{Op: "find booking by name", Err: err}
	}
	return b, nil
}

// Update overwrites num_people and booking_datetime on the booking chosen by
// FindOneByName. Lookup, write and re-read share one transaction with the
// target row locked, so both fields change together or not at all.
func (r BookingRepository) Update(ctx context.Context, f models.BookingFields) (updated models.Booking, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, domain.StorageError{Op: "begin update", Err: err}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	target, err := r.findOneByName(ctx, tx, f.Firstname, f.Lastname, true)
	if err != nil {
		return models.Booking{}, err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE bookings
		SET num_people = ?, booking_datetime = ?
		WHERE id = ?
	`, f.NumPeople, f.BookingDatetime, target.ID); err != nil {
		return models.Booking{}, domain.StorageError{Op: "update booking", Err: err}
	}

	updated, err = r.getByID(ctx, tx, target.ID)
	if err != nil {
		return models.Booking{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, domain.StorageError{Op: "commit update", Err: err}
	}
	return updated, nil
}

// Count returns the number of stored bookings.
func (r BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&n); err != nil {
		return 0, domain.StorageError{Op: "count bookings", Err: err}
	}
	return n, nil
}
