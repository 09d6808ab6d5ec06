package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// OpenDB opens the connection pool for the configured driver and verifies it
// with a ping. The pool is owned by the caller; requests borrow connections
// from it and never keep one beyond a single operation.
func OpenDB(env Env) (*sql.DB, error) {
	var dsn string
	switch env.DBDriver {
	case DriverMySQL:
		dsn = env.DBDSN
	case DriverSQLite:
		dsn = sqliteDSN(env.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}

	db, err := sql.Open(env.DBDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if env.DBDriver == DriverSQLite {
		// sqlite allows a single writer; one pooled connection keeps
		// concurrent requests queued in database/sql instead of SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(10 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	log.Printf("connected to %s database", env.DBDriver)
	return db, nil
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
