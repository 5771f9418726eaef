// Package storage hands out database connections with an explicit scope:
// Acquire returns a dedicated connection and the func that releases it.
// Callers defer the release so the connection is returned on every path.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// Store is the connection factory of one database.
type Store struct {
	name string
	db   *sql.DB
}

// Open prepares a pgx-backed Store for dsn without connecting. A malformed
// dsn is reported here rather than on the first request. maxIdle is the
// number of idle connections kept around; with zero every released
// connection is closed, so each Acquire dials the server afresh.
func Open(name, dsn string, maxIdle int) (*Store, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: db open error: %w", name, err)
	}
	db := stdlib.OpenDB(*cfg)
	db.SetMaxIdleConns(maxIdle)
	return New(name, db), nil
}

// New wraps an existing handle.
func New(name string, db *sql.DB) *Store {
	return &Store{name: name, db: db}
}

// Name identifies the database in logs and errors.
func (s *Store) Name() string {
	return s.name
}

// DB exposes the underlying handle for migrations.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Acquire returns a connection owned by the caller until release is called.
// release is safe to call more than once.
func (s *Store) Acquire(ctx context.Context) (*sql.Conn, func(), error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: acquire connection: %w", s.name, err)
	}
	release := func() { _ = conn.Close() }
	return conn, release, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
