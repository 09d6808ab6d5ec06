package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	intdb "bookingapi/internal/db"
	"bookingapi/internal/domain"
	"bookingapi/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var cols = []string{"id", "firstname", "lastname", "num_people", "booking_datetime"}

func newMockRepo(t *testing.T) (BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return BookingRepository{DB: db, Dialect: intdb.MySQL}, mock
}

func TestInsertReturnsStoredRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("John", "Doe", 2, "2025-01-01 10:00:00").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("FROM bookings WHERE id = \\?").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(7, "John", "Doe", 2, "2025-01-01 10:00:00"))

	got, err := repo.Insert(context.Background(), models.BookingFields{
		Firstname: "John", Lastname: "Doe", NumPeople: 2, BookingDatetime: "2025-01-01 10:00:00",
	})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	want := models.Booking{ID: 7, Firstname: "John", Lastname: "Doe", NumPeople: 2, BookingDatetime: "2025-01-01 10:00:00"}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertWrapsDriverFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO bookings").WillReturnError(errors.New("disk full"))

	_, err := repo.Insert(context.Background(), models.BookingFields{
		Firstname: "John", Lastname: "Doe", NumPeople: 2, BookingDatetime: "2025-01-01 10:00:00",
	})
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestFindBuildsFilter(t *testing.T) {
	cases := []struct {
		name   string
		filter models.BookingFilter
		query  string
		args   []driver.Value
	}{
		{"no filter", models.BookingFilter{}, "FROM bookings ORDER BY id$", nil},
		{"firstname", models.BookingFilter{Firstname: "John"}, "WHERE BINARY firstname = \\? ORDER BY id$", []driver.Value{"John"}},
		{"lastname", models.BookingFilter{Lastname: "Doe"}, "WHERE BINARY lastname = \\? ORDER BY id$", []driver.Value{"Doe"}},
		{"both", models.BookingFilter{Firstname: "John", Lastname: "Doe"},
			"WHERE BINARY firstname = \\? AND BINARY lastname = \\? ORDER BY id$", []driver.Value{"John", "Doe"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			exp := mock.ExpectQuery(tc.query)
			if len(tc.args) > 0 {
				exp = exp.WithArgs(tc.args...)
			}
			exp.WillReturnRows(sqlmock.NewRows(cols).AddRow(1, "John", "Doe", 2, "2025-01-01 10:00:00"))

			got, err := repo.Find(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("find error: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("expected 1 booking, got %d", len(got))
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestFindEmptyResultIsNotNil(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows(cols))

	got, err := repo.Find(context.Background(), models.BookingFilter{Firstname: "Nobody"})
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestUpdateLocksNewestMatchAndWritesBothFields(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("WHERE BINARY firstname = \\? AND BINARY lastname = \\? ORDER BY id DESC LIMIT 1 FOR UPDATE").
		WithArgs("John", "Doe").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(3, "John", "Doe", 2, "2025-01-01 10:00:00"))
	mock.ExpectExec("UPDATE bookings\\s+SET num_people = \\?, booking_datetime = \\?\\s+WHERE id = \\?").
		WithArgs(5, "2025-01-02 11:00:00", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM bookings WHERE id = \\?").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(3, "John", "Doe", 5, "2025-01-02 11:00:00"))
	mock.ExpectCommit()

	got, err := repo.Update(context.Background(), models.BookingFields{
		Firstname: "John", Lastname: "Doe", NumPeople: 5, BookingDatetime: "2025-01-02 11:00:00",
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if got.ID != 3 || got.NumPeople != 5 || got.BookingDatetime != "2025-01-02 11:00:00" {
		t.Fatalf("unexpected updated booking %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateMissingTargetRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("ORDER BY id DESC LIMIT 1 FOR UPDATE").
		WithArgs("Nonexistent", "Person").
		WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), models.BookingFields{
		Firstname: "Nonexistent", Lastname: "Person", NumPeople: 1, BookingDatetime: "2025-01-01 10:00:00",
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Booking not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateFailedWriteRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(3, "John", "Doe", 2, "2025-01-01 10:00:00"))
	mock.ExpectExec("UPDATE bookings").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), models.BookingFields{
		Firstname: "John", Lastname: "Doe", NumPeople: 5, BookingDatetime: "2025-01-02 11:00:00",
	})
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLiteDialectHasNoLockClause(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := BookingRepository{DB: db, Dialect: intdb.SQLite}

	mock.ExpectQuery("WHERE firstname = \\? AND lastname = \\? ORDER BY id DESC LIMIT 1$").
		WithArgs("Jane", "Doe").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(9, "Jane", "Doe", 4, "2025-03-03 19:30:00"))

	got, err := repo.FindOneByName(context.Background(), "Jane", "Doe")
	if err != nil {
		t.Fatalf("find one error: %v", err)
	}
	if got.ID != 9 {
		t.Fatalf("expected id 9, got %d", got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
