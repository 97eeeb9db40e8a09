package db

import (
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Opt applies a connection pool setting to an established sqlx.DB.
type Opt func(*sqlx.DB)

// New connects to the database and applies any given options. Both the pgx
// and the sqlite drivers are registered.
func New(driver string, dsn string, opts ...Opt) (*sqlx.DB, error) {
	conn, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(conn)
	}
	return conn, nil
}

// WithMaxOpenConns sets the maximum number of open connections to the first
// positive value.
func WithMaxOpenConns(values ...int) Opt {
	return func(conn *sqlx.DB) {
		for _, v := range values {
			if v > 0 {
				conn.SetMaxOpenConns(v)
				break
			}
		}
	}
}

// WithMaxIdleConns sets the maximum number of idle connections to the first
// positive value.
func WithMaxIdleConns(values ...int) Opt {
	return func(conn *sqlx.DB) {
		for _, v := range values {
			if v > 0 {
				conn.SetMaxIdleConns(v)
				break
			}
		}
	}
}

// WithConnMaxLifetime sets the maximum connection lifetime to the first
// non-zero value.
func WithConnMaxLifetime(values ...time.Duration) Opt {
	return func(conn *sqlx.DB) {
		for _, v := range values {
			if v != 0 {
				conn.SetConnMaxLifetime(v)
				break
			}
		}
	}
}
