package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Dialect captures the SQL differences between the supported drivers.
type Dialect struct {
	Name string
	// CreateBookings is the DDL for the bookings table.
	CreateBookings string
	// NameEquals compares a text column case-sensitively.
	NameEquals func(col string) string
	// LockClause is appended to a SELECT inside a transaction to lock the row.
	LockClause string
}

// Text columns are TEXT on both dialects so values come back exactly as
// stored; the name index uses a prefix since TEXT cannot be indexed whole.
var MySQL = Dialect{
	Name: "mysql",
	CreateBookings: `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	firstname TEXT NOT NULL,
	lastname TEXT NOT NULL,
	num_people INT NOT NULL,
	booking_datetime TEXT NOT NULL,
	KEY idx_bookings_name (lastname(191), firstname(191))
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`,
	NameEquals: func(col string) string { return "BINARY " + col + " = ?" },
	LockClause: " FOR UPDATE",
}

var SQLite = Dialect{
	Name: "sqlite",
	CreateBookings: `
CREATE TABLE IF NOT EXISTS bookings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	firstname TEXT NOT NULL,
	lastname TEXT NOT NULL,
	num_people INTEGER NOT NULL,
	booking_datetime TEXT NOT NULL
);
`,
	NameEquals: func(col string) string { return col + " = ?" },
}

// DialectFor returns the dialect registered for a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case MySQL.Name:
		return MySQL, nil
	case SQLite.Name:
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("no dialect for driver %q", driver)
	}
}

// EnsureSchema creates the bookings table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	if _, err := db.ExecContext(ctx, d.CreateBookings); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}
	return nil
}
